package feed

import (
	"log/slog"
	"strings"
)

// Filterer drops posts whose labels match an excluded category substring.
// Excluded posts leave no trace: no file is written for them anywhere.
type Filterer struct {
	excludedLabels []string
}

func NewFilterer(excludedLabels []string) *Filterer {
	return &Filterer{excludedLabels: excludedLabels}
}

func (f *Filterer) Run(posts []Post) []Post {
	if len(f.excludedLabels) == 0 {
		return posts
	}

	filtered := make([]Post, 0, len(posts))
	for _, post := range posts {
		if f.isExcluded(post.Labels) {
			slog.Debug("Excluding post by label", "title", post.Title)
			continue
		}
		filtered = append(filtered, post)
	}

	return filtered
}

func (f *Filterer) isExcluded(labels []string) bool {
	for _, label := range labels {
		value := strings.ToLower(label)
		for _, excluded := range f.excludedLabels {
			if strings.Contains(value, strings.ToLower(excluded)) {
				return true
			}
		}
	}
	return false
}
