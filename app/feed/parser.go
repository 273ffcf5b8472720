package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"
)

// Blogger export marker values. Entries carrying anything else (pages,
// comments, templates, drafts) never become posts.
const (
	entryTypePost   = "POST"
	entryStatusLive = "LIVE"
)

// bloggerNS is the namespace the export binds to the blogger prefix.
const bloggerNS = "http://schemas.google.com/blogger/2018"

type Parser struct {
	gofeedParser *gofeed.Parser
	originalHost string
}

func NewParser(originalHost string) *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
		originalHost: originalHost,
	}
}

// Run parses a Blogger Atom export and returns the published posts,
// newest first. Ties keep the export's entry order.
func (p *Parser) Run(data []byte) ([]Post, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}

	posts := make([]Post, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if p.extensionValue(item, "type") != entryTypePost {
			continue
		}
		if p.extensionValue(item, "status") != entryStatusLive {
			slog.Debug("Skipping non-live entry", "title", item.Title)
			continue
		}

		posts = append(posts, p.normalizeItem(item))
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})

	return posts, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Post {
	post := Post{
		Title:   cmp.Or(item.Title, "Untitled"),
		Content: item.Content,
	}

	if item.PublishedParsed != nil {
		post.PublishedAt = *item.PublishedParsed
	} else {
		// Non-deterministic across runs, documented limitation
		post.PublishedAt = time.Now()
	}

	if item.Categories != nil {
		post.Labels = item.Categories
	}

	if hint := p.extensionValue(item, "filename"); hint != "" {
		post.OriginalURL = "https://" + p.originalHost + hint
	}

	return post
}

// extensionValue reads a blogger extension element from an entry. Depending
// on the parser version the extension map is keyed by the document prefix or
// by the namespace URI, so both are tried.
func (p *Parser) extensionValue(item *gofeed.Item, name string) string {
	for _, key := range []string{"blogger", bloggerNS} {
		ns, ok := item.Extensions[key]
		if !ok {
			continue
		}
		if values, ok := ns[name]; ok && len(values) > 0 {
			return values[0].Value
		}
	}
	return ""
}
