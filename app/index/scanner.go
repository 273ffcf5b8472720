package index

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DisplayDateFormat parses the human-formatted dates found in post pages.
// The single-digit day verb accepts both padded and unpadded day numbers.
const DisplayDateFormat = "January 2, 2006"

const previewLength = 200

// titleCategoryPattern recognizes editorial tags still embedded in titles,
// e.g. "[Paper Review - NLP]".
var titleCategoryPattern = regexp.MustCompile(`(?i)\[(Paper Review|Book Summary|Book Review|Algorithm|Speech Technology|NLP|Psycholinguistics)[^\]]*\]`)

// listingFiles are pre-existing listing pages living inside the posts
// directory; they are not posts and are never scanned.
var listingFiles = map[string]struct{}{
	"book-summaries.html":    {},
	"paper-reviews.html":     {},
	"speech-technology.html": {},
}

// Post is the metadata re-derived from one generated page. The rendered file
// is the source of truth at this stage; the date is the display string, not a
// machine timestamp.
type Post struct {
	Filename string
	Title    string
	Date     string
	Preview  string
}

type Scanner struct {
	dir string
}

func NewScanner(dir string) *Scanner {
	return &Scanner{dir: dir}
}

// Run scans the posts directory and returns the flat post list plus the
// per-category buckets, both sorted newest first by display date. A post
// joins every category bucket it declares or derives (multi-membership).
// Extraction is best-effort and independent per file: a marker miss defaults
// the field and never aborts the scan of other files.
func (s *Scanner) Run() ([]Post, map[string][]Post, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, "*.html"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list post files: %w", err)
	}

	allPosts := make([]Post, 0, len(files))
	postsByCategory := make(map[string][]Post)

	for _, file := range files {
		if _, ok := listingFiles[filepath.Base(file)]; ok {
			continue
		}

		data, err := os.ReadFile(file)
		if err != nil {
			slog.Error("Skipping unreadable file", "file", file, "error", err)
			continue
		}

		title, date, categories, preview := extractMetadata(string(data))

		post := Post{
			Filename: filepath.Base(file),
			Title:    title,
			Date:     date,
			Preview:  preview,
		}
		allPosts = append(allPosts, post)

		for _, category := range categories {
			key := Slugify(category)
			if key == "" {
				continue
			}
			postsByCategory[key] = append(postsByCategory[key], post)
		}
	}

	sortByDate(allPosts)
	for _, posts := range postsByCategory {
		sortByDate(posts)
	}

	return allPosts, postsByCategory, nil
}

// Slugify normalizes a category name into its grouping key and filename stem.
func Slugify(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "-")
}

// sortByDate orders posts newest first. A date string that does not parse in
// the exact display format sorts as the earliest possible value, pushing the
// post to the end rather than failing.
func sortByDate(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return parseDisplayDate(posts[i].Date).After(parseDisplayDate(posts[j].Date))
	})
}

func parseDisplayDate(value string) time.Time {
	t, err := time.Parse(DisplayDateFormat, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// extractMetadata re-derives title, display date, categories and preview from
// a rendered page by locating the structural markers the importer emits.
func extractMetadata(content string) (title, date string, categories []string, preview string) {
	title = "Untitled"

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		slog.Error("Failed to parse post page", "error", err)
		return title, "", nil, ""
	}

	if heading := strings.TrimSpace(doc.Find("h1").First().Text()); heading != "" {
		title = heading
	}

	date = strings.TrimSpace(doc.Find("p.post-date").First().Text())

	categories = extractCategories(doc, title)
	preview = extractPreview(doc)

	return title, date, categories, preview
}

// extractCategories reads the "Categories:" metadata paragraph and adds any
// categories still encoded in a bracketed title tag. The paragraph is matched
// on its text so pages survive the post-processor stripping the label's
// emphasis markup.
func extractCategories(doc *goquery.Document, title string) []string {
	var categories []string

	doc.Find("p.post-meta").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if !strings.HasPrefix(text, "Categories:") {
			return true
		}

		for _, category := range strings.Split(strings.TrimPrefix(text, "Categories:"), ",") {
			if category = strings.TrimSpace(category); category != "" {
				categories = append(categories, category)
			}
		}
		return false
	})

	for _, match := range titleCategoryPattern.FindAllStringSubmatch(title, -1) {
		category := match[1]
		if idx := strings.Index(category, "-"); idx >= 0 {
			category = strings.TrimSpace(category[:idx])
		}
		if !slices.Contains(categories, category) {
			categories = append(categories, category)
		}
	}

	return categories
}

// extractPreview collects the plain text between the date paragraph and the
// first metadata paragraph, truncated with an ellipsis when it exceeds the
// preview length.
func extractPreview(doc *goquery.Document) string {
	article := doc.Find("article.blog-post")
	if article.Length() == 0 {
		return ""
	}

	var builder strings.Builder
	inBody := false
	for node := article.Get(0).FirstChild; node != nil; node = node.NextSibling {
		if node.Type == html.ElementNode && node.Data == "p" {
			if hasClass(node, "post-date") {
				inBody = true
				continue
			}
			if hasClass(node, "post-meta") {
				break
			}
		}
		if inBody {
			builder.WriteString(nodeText(node))
		}
	}

	text := strings.TrimSpace(builder.String())
	if runes := []rune(text); len(runes) > previewLength {
		return strings.TrimSpace(string(runes[:previewLength])) + "..."
	}
	return text
}

func nodeText(node *html.Node) string {
	if node.Type == html.TextNode {
		return node.Data
	}

	var builder strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		builder.WriteString(nodeText(child))
	}
	return builder.String()
}

func hasClass(node *html.Node, name string) bool {
	for _, attr := range node.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(attr.Val) {
			if class == name {
				return true
			}
		}
	}
	return false
}
