package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ckjeong/blogforge/app/config"
	"github.com/ckjeong/blogforge/app/feed"
)

// DisplayDateFormat is the human-readable date written into post pages.
const DisplayDateFormat = "January 02, 2006"

// bloggerBlockPattern removes Blogger-injected wrapper blocks from post
// bodies: case-insensitive, shortest span, across line breaks.
var bloggerBlockPattern = regexp.MustCompile(`(?is)<div[^>]*blogger[^>]*>.*?</div>`)

const previewLength = 200

// Summary is the per-post entry of the category breakdown reported after a
// run. It is a console report, not a grouping used for file placement.
type Summary struct {
	Title       string
	Filename    string
	PublishedAt time.Time
	Preview     string
}

type Generator struct {
	siteConfig *config.SiteConfig
	outDir     string
}

func NewGenerator(siteConfig *config.SiteConfig, outDir string) *Generator {
	return &Generator{
		siteConfig: siteConfig,
		outDir:     outDir,
	}
}

// Run renders one standalone HTML page per post into the output directory,
// creating it if needed. Existing files with the same derived name are
// overwritten. Returns the generated file paths and the per-category
// summaries for the operator report.
func (g *Generator) Run(posts []feed.Post) ([]string, map[string][]Summary, error) {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Posts arrive newest first; the newest date stamps the footer so that
	// re-runs on an unchanged export stay byte-identical.
	siteUpdated := time.Now()
	if len(posts) > 0 {
		siteUpdated = posts[0].PublishedAt
	}

	categoryPosts := make(map[string][]Summary)
	generated := make([]string, 0, len(posts))

	for _, post := range posts {
		filename := CleanFilename(post.Title) + ".html"
		path := filepath.Join(g.outDir, filename)

		category := MainCategory(post.Labels, g.siteConfig.CategoryMapping)
		categoryPosts[category] = append(categoryPosts[category], Summary{
			Title:       post.Title,
			Filename:    filename,
			PublishedAt: post.PublishedAt,
			Preview:     truncate(post.Content, previewLength),
		})

		page, err := g.renderPost(post, siteUpdated)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to render %s: %w", filename, err)
		}

		if err := os.WriteFile(path, page, 0o644); err != nil {
			return nil, nil, fmt.Errorf("failed to write %s: %w", path, err)
		}

		generated = append(generated, path)
		fmt.Printf("Generated: %s\n", path)
	}

	return generated, categoryPosts, nil
}

func (g *Generator) renderPost(post feed.Post, siteUpdated time.Time) ([]byte, error) {
	content := bloggerBlockPattern.ReplaceAllString(post.Content, "")

	page := postPage{
		Title:       post.Title,
		Author:      g.siteConfig.Author,
		Date:        post.PublishedAt.Format(DisplayDateFormat),
		Content:     template.HTML(content),
		Categories:  strings.Join(post.Labels, ", "),
		OriginalURL: post.OriginalURL,
		Year:        siteUpdated.Year(),
		Updated:     siteUpdated.Format("January 2006"),
	}

	var buf bytes.Buffer
	if err := postTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
