package index

import "html/template"

const indexTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="description" content="Blog posts by {{.Author}}">
    <title>Blog - {{.Author}}</title>
    <link rel="stylesheet" href="css/style.css">
</head>
<body>
    <h1>Blog</h1>

    <!-- Categories -->
    <p style="margin-bottom: 2rem;">
        <strong>Categories:</strong>
        {{- range $i, $link := .QuickLinks}}{{if $i}} |{{end}}
        <a href="{{$link.Href}}">{{$link.Name}}</a>
        {{- end}}
    </p>

    <!-- Blog posts listed in reverse chronological order -->
{{range .Posts}}
    <div class="blog-post">
        <h2><a href="{{.Href}}">{{.Title}}</a></h2>
        <p class="post-date">{{.Date}}</p>
        <p>
            {{.Preview}}
        </p>
    </div>
{{end}}
    <!-- Navigation -->
    <nav>
        <ul>
            <li><a href="index.html">Home</a></li>
            <li><a href="publications.html">Publications</a></li>
            <li><a href="blog.html" class="active">Blog</a></li>
        </ul>
    </nav>

    <!-- Footer -->
    <footer>
        <p>&copy; {{.Year}} {{.Author}}. Last updated: {{.Updated}}.</p>
    </footer>
</body>
</html>
`

const categoryTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.Author}}</title>
    <link rel="stylesheet" href="../css/style.css">
</head>
<body>
    <h1>{{.Title}}</h1>

    <p><a href="{{.BackHref}}">&larr; Back to all posts</a></p>
{{range .Posts}}
    <div class="blog-post">
        <h2><a href="{{.Href}}">{{.Title}}</a></h2>
        <p class="post-date">{{.Date}}</p>
        <p>
            {{.Preview}}
        </p>
    </div>
{{end}}
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

var (
	indexTemplate    = template.Must(template.New("index").Parse(indexTemplateText))
	categoryTemplate = template.Must(template.New("category").Parse(categoryTemplateText))
)

type postEntry struct {
	Href    string
	Title   string
	Date    string
	Preview string
}

type quickLink struct {
	Href string
	Name string
}

type indexPage struct {
	Author     string
	QuickLinks []quickLink
	Posts      []postEntry
	Year       int
	Updated    string
}

type categoryPage struct {
	Author   string
	Title    string
	BackHref string
	Posts    []postEntry
	Year     int
	Updated  string
}
