// Package web holds the server-rendered landing page templates.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
)

// LandingTemplate is the template name rendered for GET /.
const LandingTemplate = "landing.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"selected": func(current, option string) bool { return current == option },
		"upper":    strings.ToUpper,
	}).ParseFS(templateFS, "templates/*.html"))
}

// Static returns the stylesheet and other assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
