package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePostPage(t *testing.T, dir, filename, title, date, categories, body string) {
	t.Helper()

	page := `<!DOCTYPE html>
<html lang="en">
<head>
    <title>` + title + ` - Cheonkam Jeong</title>
</head>
<body>
    <article class="blog-post">
        <h1>` + title + `</h1>
        <p class="post-date">` + date + `</p>

        ` + body + `

        <p class="post-meta">
            <strong>Categories:</strong> ` + categories + `
        </p>

        <p class="post-meta">
            <small>Original post: <a href="" target="_blank"></a></small>
        </p>
    </article>
</body>
</html>
`
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(page), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", filename, err)
	}
}

func TestScanner_Run_ExtractsMetadata(t *testing.T) {
	dir := t.TempDir()
	writePostPage(t, dir, "first-post.html", "First Post", "March 01, 2024", "NLP, Data Science", "<p>Hello world</p>")

	scanner := NewScanner(dir)
	allPosts, postsByCategory, err := scanner.Run()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(allPosts) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(allPosts))
	}

	post := allPosts[0]
	if post.Title != "First Post" {
		t.Errorf("Expected title 'First Post', got %q", post.Title)
	}
	if post.Date != "March 01, 2024" {
		t.Errorf("Expected date 'March 01, 2024', got %q", post.Date)
	}
	if post.Preview != "Hello world" {
		t.Errorf("Expected preview 'Hello world', got %q", post.Preview)
	}

	if len(postsByCategory["nlp"]) != 1 {
		t.Errorf("Expected post in 'nlp' bucket, got %v", postsByCategory)
	}
	if len(postsByCategory["data-science"]) != 1 {
		t.Errorf("Expected post in 'data-science' bucket, got %v", postsByCategory)
	}
}

func TestScanner_Run_TitleDerivedCategories(t *testing.T) {
	dir := t.TempDir()
	writePostPage(t, dir, "transformers.html",
		"[Paper Review - NLP] Understanding Transformers", "March 01, 2024", "Linguistics", "<p>Body</p>")

	scanner := NewScanner(dir)
	_, postsByCategory, err := scanner.Run()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(postsByCategory["paper-review"]) != 1 {
		t.Errorf("Expected title-derived 'paper-review' bucket, got %v", postsByCategory)
	}
	if len(postsByCategory["linguistics"]) != 1 {
		t.Errorf("Expected declared 'linguistics' bucket, got %v", postsByCategory)
	}
}

func TestScanner_Run_CleanedCategoriesParagraph(t *testing.T) {
	dir := t.TempDir()

	// The post-processor strips the <strong> wrapper on image-free pages;
	// extraction must still find the label.
	page := `<html><body><article class="blog-post">
<h1>Cleaned Post</h1>
<p class="post-date">March 01, 2024</p>
<p>Body text</p>
<p class="post-meta">
    Categories: Algorithm
</p>
</article></body></html>`
	if err := os.WriteFile(filepath.Join(dir, "cleaned-post.html"), []byte(page), 0o644); err != nil {
		t.Fatalf("Failed to write page: %v", err)
	}

	scanner := NewScanner(dir)
	_, postsByCategory, err := scanner.Run()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(postsByCategory["algorithm"]) != 1 {
		t.Errorf("Expected 'algorithm' bucket from cleaned page, got %v", postsByCategory)
	}
}

func TestScanner_Run_SortFallback(t *testing.T) {
	dir := t.TempDir()
	writePostPage(t, dir, "first.html", "First", "March 1, 2024", "NLP", "<p>a</p>")
	writePostPage(t, dir, "broken.html", "Broken", "not-a-date", "NLP", "<p>b</p>")
	writePostPage(t, dir, "second.html", "Second", "March 2, 2024", "NLP", "<p>c</p>")

	scanner := NewScanner(dir)
	allPosts, _, err := scanner.Run()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(allPosts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(allPosts))
	}

	expected := []string{"Second", "First", "Broken"}
	for i, title := range expected {
		if allPosts[i].Title != title {
			t.Errorf("Position %d: expected %q, got %q", i, title, allPosts[i].Title)
		}
	}
}

func TestScanner_Run_PreviewTruncation(t *testing.T) {
	dir := t.TempDir()
	long := strings.Repeat("word ", 60) // 300 chars of plain text
	writePostPage(t, dir, "long-post.html", "Long Post", "March 01, 2024", "NLP", "<p>"+long+"</p>")

	scanner := NewScanner(dir)
	allPosts, _, err := scanner.Run()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	preview := allPosts[0].Preview
	if !strings.HasSuffix(preview, "...") {
		t.Errorf("Expected ellipsis on truncated preview, got %q", preview)
	}
	if len([]rune(preview)) > 203 {
		t.Errorf("Expected preview capped at 200 characters plus ellipsis, got %d", len([]rune(preview)))
	}
	if strings.Contains(preview, "<p>") {
		t.Error("Expected tags stripped from preview")
	}
}

func TestScanner_Run_SkipsListingFiles(t *testing.T) {
	dir := t.TempDir()
	writePostPage(t, dir, "real-post.html", "Real Post", "March 01, 2024", "NLP", "<p>a</p>")
	writePostPage(t, dir, "paper-reviews.html", "Paper Reviews", "", "", "")

	scanner := NewScanner(dir)
	allPosts, _, err := scanner.Run()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(allPosts) != 1 {
		t.Fatalf("Expected listing page to be skipped, got %d posts", len(allPosts))
	}
	if allPosts[0].Title != "Real Post" {
		t.Errorf("Expected 'Real Post', got %q", allPosts[0].Title)
	}
}

func TestScanner_Run_MissingMarkersDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bare.html"), []byte("<html><body><p>nothing here</p></body></html>"), 0o644); err != nil {
		t.Fatalf("Failed to write page: %v", err)
	}

	scanner := NewScanner(dir)
	allPosts, postsByCategory, err := scanner.Run()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(allPosts) != 1 {
		t.Fatalf("Expected the bare file to still be scanned, got %d posts", len(allPosts))
	}

	post := allPosts[0]
	if post.Title != "Untitled" {
		t.Errorf("Expected default title 'Untitled', got %q", post.Title)
	}
	if post.Date != "" {
		t.Errorf("Expected empty date, got %q", post.Date)
	}
	if post.Preview != "" {
		t.Errorf("Expected empty preview, got %q", post.Preview)
	}
	if len(postsByCategory) != 0 {
		t.Errorf("Expected no category buckets, got %v", postsByCategory)
	}
}

func TestSlugify(t *testing.T) {
	if got := Slugify("Paper Review"); got != "paper-review" {
		t.Errorf("Expected 'paper-review', got %q", got)
	}
	if got := Slugify("NLP"); got != "nlp" {
		t.Errorf("Expected 'nlp', got %q", got)
	}
}
