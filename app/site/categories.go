package site

import (
	"strings"

	"github.com/ckjeong/blogforge/app/config"
)

// MainCategory resolves the single grouping slug for a post's labels.
// Precedence is label-outer, table-inner: for each label in feed order the
// mapping table is scanned in declaration order, and the first hit wins.
func MainCategory(labels []string, mapping []config.CategoryMapping) string {
	for _, label := range labels {
		value := strings.ToLower(label)
		for _, entry := range mapping {
			if strings.Contains(value, strings.ToLower(entry.Label)) {
				return entry.Slug
			}
		}
	}

	return "general"
}
