// Package web holds the HTML pages of the contact form.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page template
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"categoryClass": func(category string) string {
			if category == "success" {
				return "notice notice-success"
			}
			return "notice notice-error"
		},
	}).ParseFS(files, "templates/*.html")
}
