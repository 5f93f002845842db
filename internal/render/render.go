// Package render turns page view models into HTML.
//
// Templates are embedded in the binary and parsed once by New. A Renderer is
// safe for concurrent use.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/handiism/motogp-nospoiler/internal/page"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutTemplate = "layout"

// Renderer renders view models with the embedded templates.
type Renderer struct {
	templates   map[page.Kind]*template.Template
	siteBaseURL string
}

// pageData is what the templates see.
type pageData struct {
	page.ViewModel
	BaseURL string
}

// New parses the embedded templates. siteBaseURL is prefixed to every
// internal link; it defaults to "/".
func New(siteBaseURL string) (*Renderer, error) {
	if siteBaseURL == "" {
		siteBaseURL = "/"
	}
	if !strings.HasSuffix(siteBaseURL, "/") {
		siteBaseURL += "/"
	}

	r := &Renderer{
		templates:   make(map[page.Kind]*template.Template),
		siteBaseURL: siteBaseURL,
	}

	for _, kind := range []page.Kind{page.KindYear, page.KindEvent} {
		tmpl, err := template.New(layoutTemplate).
			Funcs(r.funcs()).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+kind.String()+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", kind, err)
		}
		r.templates[kind] = tmpl
	}

	return r, nil
}

// Render returns the HTML for vm.
func (r *Renderer) Render(vm page.ViewModel) (string, error) {
	tmpl, ok := r.templates[vm.Kind]
	if !ok {
		return "", fmt.Errorf("no template for page kind %d", vm.Kind)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutTemplate, pageData{ViewModel: vm, BaseURL: r.siteBaseURL}); err != nil {
		return "", fmt.Errorf("render %s page: %w", vm.Kind, err)
	}
	return buf.String(), nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"href": func(rel string) string {
			return r.siteBaseURL + strings.TrimPrefix(rel, "/")
		},
		"siteName": func() string {
			return page.SiteName
		},
		"yearPath":  page.YearPath,
		"eventPath": page.EventPath,
		"date": func(t time.Time) string {
			return t.Format("2 January 2006")
		},
	}
}
