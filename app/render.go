package app

import (
	"embed"
	"html/template"
	"io"

	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats/services"
)

const pageTemplateName = "index.html.tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets/style.css
var styleSheet []byte

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// WritePage renders page as a complete HTML document. Cell values are
// escaped.
func WritePage(w io.Writer, page services.Page) error {
	return pageTemplate.ExecuteTemplate(w, pageTemplateName, page)
}
