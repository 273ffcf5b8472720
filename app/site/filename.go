package site

import (
	"regexp"
	"strings"
)

var (
	invalidFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	filenameSeparators   = regexp.MustCompile(`[\s-]+`)
)

// maxFilenameLength bounds the derived filename stem, not the full path.
const maxFilenameLength = 100

// CleanFilename converts a post title into a filename-safe stem: lowercase,
// letters/digits/underscores/hyphens only, whitespace and hyphen runs
// collapsed to a single hyphen. Distinct titles can collapse to the same
// stem; the later post overwrites the earlier file.
func CleanFilename(title string) string {
	name := invalidFilenameChars.ReplaceAllString(strings.ToLower(title), "")
	name = filenameSeparators.ReplaceAllString(name, "-")

	if runes := []rune(name); len(runes) > maxFilenameLength {
		name = string(runes[:maxFilenameLength])
	}

	return name
}
