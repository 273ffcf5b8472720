package site

import (
	"strings"
	"testing"
)

func TestCleanFilename(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "Hello, World!", "hello-world"},
		{"empty title", "", ""},
		{"only excluded characters", "!!!???", ""},
		{"bracketed prefix", "[Paper Review - NLP] Understanding Transformers", "paper-review-nlp-understanding-transformers"},
		{"underscores kept", "snake_case title", "snake_case-title"},
		{"whitespace runs collapsed", "a  lot   of space", "a-lot-of-space"},
		{"already hyphenated", "pre-trained models", "pre-trained-models"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanFilename(tt.title); got != tt.expected {
				t.Errorf("CleanFilename(%q) = %q, expected %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestCleanFilename_Truncation(t *testing.T) {
	title := strings.Repeat("a", 150)

	got := CleanFilename(title)

	if len(got) != 100 {
		t.Errorf("Expected filename truncated to 100 characters, got %d", len(got))
	}
}
