package index

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ckjeong/blogforge/app/config"
)

var titleCaser = cases.Title(language.English)

type Builder struct {
	siteConfig  *config.SiteConfig
	outDir      string
	siteUpdated time.Time
}

// latestDisplayDate picks the newest parsable display date so the rendered
// footer stays deterministic for an unchanged set of posts.
func latestDisplayDate(allPosts []Post) time.Time {
	updated := time.Time{}
	for _, post := range allPosts {
		if t := parseDisplayDate(post.Date); t.After(updated) {
			updated = t
		}
	}
	if updated.IsZero() {
		return time.Now()
	}
	return updated
}

func NewBuilder(siteConfig *config.SiteConfig, outDir string) *Builder {
	return &Builder{
		siteConfig: siteConfig,
		outDir:     outDir,
	}
}

// Run renders the top-level index next to the posts directory and one
// listing page per category inside it, overwriting existing files.
func (b *Builder) Run(allPosts []Post, postsByCategory map[string][]Post) error {
	dirName := filepath.Base(b.outDir)
	b.siteUpdated = latestDisplayDate(allPosts)

	indexPath := filepath.Join(filepath.Dir(b.outDir), dirName+".html")
	page, err := b.renderIndex(dirName, allPosts)
	if err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	if err := os.WriteFile(indexPath, page, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", indexPath, err)
	}
	fmt.Printf("Created %s\n", indexPath)

	categories := make([]string, 0, len(postsByCategory))
	for category := range postsByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		posts := postsByCategory[category]
		path := filepath.Join(b.outDir, category+".html")

		page, err := b.renderCategory(dirName, category, posts)
		if err != nil {
			return fmt.Errorf("failed to render category %s: %w", category, err)
		}
		if err := os.WriteFile(path, page, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("Created %s (%d posts)\n", path, len(posts))
	}

	return nil
}

func (b *Builder) renderIndex(dirName string, allPosts []Post) ([]byte, error) {
	quickLinks := make([]quickLink, 0, len(b.siteConfig.QuickLinks))
	for _, slug := range b.siteConfig.QuickLinks {
		quickLinks = append(quickLinks, quickLink{
			Href: dirName + "/" + slug + ".html",
			Name: DisplayName(slug),
		})
	}

	entries := make([]postEntry, 0, len(allPosts))
	for _, post := range allPosts {
		entries = append(entries, postEntry{
			Href:    dirName + "/" + post.Filename,
			Title:   post.Title,
			Date:    post.Date,
			Preview: post.Preview,
		})
	}

	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, indexPage{
		Author:     b.siteConfig.Author,
		QuickLinks: quickLinks,
		Posts:      entries,
		Year:       b.siteUpdated.Year(),
		Updated:    b.siteUpdated.Format("January 2006"),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Builder) renderCategory(dirName, category string, posts []Post) ([]byte, error) {
	entries := make([]postEntry, 0, len(posts))
	for _, post := range posts {
		entries = append(entries, postEntry{
			Href:    post.Filename,
			Title:   post.Title,
			Date:    post.Date,
			Preview: post.Preview,
		})
	}

	var buf bytes.Buffer
	err := categoryTemplate.Execute(&buf, categoryPage{
		Author:   b.siteConfig.Author,
		Title:    DisplayName(category),
		BackHref: "../" + dirName + ".html",
		Posts:    entries,
		Year:     b.siteUpdated.Year(),
		Updated:  b.siteUpdated.Format("January 2006"),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DisplayName turns a category slug into a human-readable heading.
func DisplayName(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}
