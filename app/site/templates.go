package site

import "html/template"

// The post page layout is the contract between pipeline stages: the <h1>,
// the post-date paragraph, the Categories: paragraph and the original post
// link are the structural markers later stages re-extract metadata from.
const postTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.Author}}</title>
    <link rel="stylesheet" href="../css/style.css">
</head>
<body>
    <article class="blog-post">
        <h1>{{.Title}}</h1>
        <p class="post-date">{{.Date}}</p>

        {{.Content}}

        <p class="post-meta">
            <strong>Categories:</strong> {{.Categories}}
        </p>

        <p class="post-meta">
            <small>Original post: <a href="{{.OriginalURL}}" target="_blank">{{.OriginalURL}}</a></small>
        </p>
    </article>

    <!-- Navigation -->
    <nav>
        <ul>
            <li><a href="../index.html">Home</a></li>
            <li><a href="../publications.html">Publications</a></li>
            <li><a href="../blog.html" class="active">Blog</a></li>
        </ul>
    </nav>

    <!-- Footer -->
    <footer>
        <p>&copy; {{.Year}} {{.Author}}. Last updated: {{.Updated}}.</p>
    </footer>
</body>
</html>
`

var postTemplate = template.Must(template.New("post").Parse(postTemplateText))

type postPage struct {
	Title       string
	Author      string
	Date        string
	Content     template.HTML
	Categories  string
	OriginalURL string
	Year        int
	Updated     string
}
