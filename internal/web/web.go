// Package web embeds the HTML templates of the front server.
package web

import (
	"embed"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"ms":    func(d time.Duration) int64 { return d.Milliseconds() },
}

// Templates parses every page and partial. Pages are addressed by file name,
// e.g. "detail.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}
