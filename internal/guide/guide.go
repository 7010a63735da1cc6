// Package guide serves the usage guide page, rendered from embedded
// markdown.
package guide

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed guide.md
var guideMarkdown []byte

var (
	renderOnce sync.Once
	renderedOK []byte
	renderErr  error
)

// render converts the embedded markdown into the full guide page. The
// source is compiled in, so rendering happens once and the result is
// reused.
func render() ([]byte, error) {
	renderOnce.Do(func() {
		md := goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		)

		var body bytes.Buffer
		if err := md.Convert(guideMarkdown, &body); err != nil {
			renderErr = fmt.Errorf("rendering guide markdown: %w", err)
			return
		}

		var page bytes.Buffer
		data := struct {
			Title   string
			Content template.HTML
		}{
			Title:   "Sharing wish links",
			Content: template.HTML(body.String()),
		}
		if err := guidePage.Execute(&page, data); err != nil {
			renderErr = fmt.Errorf("executing guide template: %w", err)
			return
		}
		renderedOK = page.Bytes()
	})
	return renderedOK, renderErr
}

// RegisterRoutes mounts the guide page.
func RegisterRoutes(r chi.Router) {
	r.Get("/guide", handleGuide)
}

func handleGuide(w http.ResponseWriter, r *http.Request) {
	page, err := render()
	if err != nil {
		log.Printf("guide: %v", err)
		http.Error(w, "guide unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// guidePage is the Go html/template wrapping the rendered markdown.
var guidePage = template.Must(template.New("guide").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — wishlink</title>
  <style>
    body { font-family: system-ui, -apple-system, "Segoe UI", sans-serif; margin: 0; background: #f8f9fa; color: #212529; }
    main { max-width: 760px; margin: 0 auto; padding: 32px 20px 64px; }
    h1 { font-size: 28px; }
    h2 { margin-top: 36px; border-bottom: 1px solid #dee2e6; padding-bottom: 6px; }
    pre { background: #f1f3f5; border: 1px solid #e9ecef; border-radius: 8px; padding: 14px; overflow: auto; }
    code { background: #f1f3f5; border-radius: 4px; padding: 1px 4px; font-size: 0.95em; }
    pre code { background: none; padding: 0; }
    a.home { display: inline-block; margin-bottom: 16px; color: #228be6; text-decoration: none; }
  </style>
</head>
<body>
  <main>
    <a class="home" href="/">&larr; back to the wish page</a>
    {{.Content}}
  </main>
</body>
</html>`))
