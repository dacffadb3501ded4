// Package report renders an answered query as a standalone HTML page.
package report

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
h1 { border-bottom: 1px solid #ddd; padding-bottom: .4rem; }
footer { color: #888; font-size: .8rem; margin-top: 2rem; }
</style>
</head>
<body>
<h1>%s</h1>
%s
<h2>Sources</h2>
<ol>
%s</ol>
<footer>Generated by askweb on %s</footer>
</body>
</html>
`

// Render converts a markdown answer plus its source URLs into sanitized HTML.
func Render(question, answer string, sources []string) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(answer))

	htmlFlags := mdhtml.CommonFlags | mdhtml.HrefTargetBlank
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: htmlFlags})
	body := markdown.Render(doc, renderer)

	sanitizer := bluemonday.UGCPolicy()
	body = sanitizer.SanitizeBytes(body)

	var sourceItems strings.Builder
	for _, src := range sources {
		escaped := html.EscapeString(src)
		sourceItems.WriteString(fmt.Sprintf("<li><a href=%q target=\"_blank\" rel=\"nofollow noopener\">%s</a></li>\n", escaped, escaped))
	}

	title := html.EscapeString(question)
	return fmt.Sprintf(pageTemplate, title, title, body, sourceItems.String(),
		time.Now().Format("2006-01-02 15:04"))
}

// Write renders the report and writes it to path.
func Write(path, question, answer string, sources []string) error {
	page := Render(question, answer, sources)
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
