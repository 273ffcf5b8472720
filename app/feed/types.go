package feed

import (
	"time"
)

// Blogger export processing types

type Post struct {
	Title       string
	PublishedAt time.Time // Never zero: missing source timestamps default to now
	Content     string    // Raw body markup, embedded verbatim downstream
	Labels      []string
	OriginalURL string
}
