// Package cleaner post-processes generated post pages in place: it strips
// editorial category prefixes from titles and simplifies inline emphasis
// markup when no images are present. Edits are positional text surgery so
// that untouched regions stay byte-identical and unchanged files are never
// rewritten.
package cleaner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	headingPattern  = regexp.MustCompile(`(?s)<h1>(.*?)</h1>`)
	titleTagPattern = regexp.MustCompile(`<title>(.*?)</title>`)

	// A leading bracketed segment like "[Paper Review - NLP] ", non-greedy
	// to the first closing bracket.
	bracketPrefixPattern = regexp.MustCompile(`^\[.*?\]\s*`)

	// Paired emphasis tags, shortest span, across line breaks.
	emphasisPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<strong>(.*?)</strong>`),
		regexp.MustCompile(`(?s)<em>(.*?)</em>`),
		regexp.MustCompile(`(?s)<b>(.*?)</b>`),
		regexp.MustCompile(`(?s)<i>(.*?)</i>`),
	}
)

// skipFiles are category and listing pages that live next to the posts but
// lack the post structure being edited.
var skipFiles = map[string]struct{}{
	"paper-review.html":       {},
	"book-summary.html":       {},
	"book-review.html":        {},
	"speech-technology.html":  {},
	"algorithm.html":          {},
	"aesthetics.html":         {},
	"nlp.html":                {},
	"phonology.html":          {},
	"psycholinguistics.html":  {},
	"graduate-research.html":  {},
	"information-theory.html": {},
	"python-code.html":        {},
	"nlp-code.html":           {},
	"philosophy.html":         {},
	"bash-code.html":          {},
	"ctdsi.html":              {},
	"data.html":               {},
	"leetcode.html":           {},
	"mac-os.html":             {},
	"nlu.html":                {},
	"perl-code.html":          {},
	"phonetics.html":          {},
}

type Cleaner struct {
	dir string
}

func NewCleaner(dir string) *Cleaner {
	return &Cleaner{dir: dir}
}

// Run processes every post page in the directory and returns the number of
// files that were actually modified. Files whose content does not change are
// left untouched, keeping their original timestamps.
func (c *Cleaner) Run() (int, error) {
	files, err := filepath.Glob(filepath.Join(c.dir, "*.html"))
	if err != nil {
		return 0, fmt.Errorf("failed to list post files: %w", err)
	}

	modified := 0
	for _, file := range files {
		if _, ok := skipFiles[filepath.Base(file)]; ok {
			continue
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return modified, fmt.Errorf("failed to read %s: %w", file, err)
		}

		cleaned := c.Process(string(data))
		if cleaned == string(data) {
			continue
		}

		if err := os.WriteFile(file, []byte(cleaned), 0o644); err != nil {
			return modified, fmt.Errorf("failed to write %s: %w", file, err)
		}

		modified++
		fmt.Printf("Cleaned %s\n", filepath.Base(file))
	}

	return modified, nil
}

// Process applies the title cleanup and formatting simplification to a single
// document and returns the result. The title step is skipped when no heading
// matches; formatting simplification applies independently.
func (c *Cleaner) Process(content string) string {
	content = c.cleanTitle(content)
	return c.simplifyFormatting(content)
}

func (c *Cleaner) cleanTitle(content string) string {
	match := headingPattern.FindStringSubmatch(content)
	if match == nil {
		return content
	}

	oldTitle := strings.TrimSpace(match[1])
	newTitle := strings.TrimSpace(bracketPrefixPattern.ReplaceAllString(oldTitle, ""))
	if newTitle == oldTitle {
		return content
	}

	slog.Debug("Stripping title prefix", "old", oldTitle, "new", newTitle)

	content = strings.ReplaceAll(content,
		"<h1>"+oldTitle+"</h1>",
		"<h1>"+newTitle+"</h1>")

	// Update the page title by literal substring replacement within the
	// matched <title> element. Occurrences of the old title text elsewhere
	// in the document are left alone.
	if titleMatch := titleTagPattern.FindStringSubmatch(content); titleMatch != nil {
		oldPageTitle := titleMatch[1]
		newPageTitle := strings.ReplaceAll(oldPageTitle, oldTitle, newTitle)
		if newPageTitle != oldPageTitle {
			content = strings.ReplaceAll(content,
				"<title>"+oldPageTitle+"</title>",
				"<title>"+newPageTitle+"</title>")
		}
	}

	return content
}

// simplifyFormatting strips paired emphasis tags while preserving their inner
// text. Any image or figure anywhere in the document disables the whole step
// for that file.
func (c *Cleaner) simplifyFormatting(content string) string {
	if strings.Contains(content, "<img") || strings.Contains(content, "<figure") {
		return content
	}

	for _, pattern := range emphasisPatterns {
		content = pattern.ReplaceAllString(content, "$1")
	}

	return content
}
