package views

import (
	"embed"
	"html/template"
)

// PageTemplate is the template name the page handler renders.
const PageTemplate = "page.html"

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}
