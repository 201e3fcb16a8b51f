package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*
var templatesFS embed.FS

var pageNames = []string{"home", "login", "register", "drinks", "drink", "profile", "error"}

// Renderer serves the HTML page shells. Each page is parsed against the
// shared layout so they can all define a "content" block.
type Renderer struct {
	templates map[string]*template.Template
	logger    *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageNames))

	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %q: %w", name, err)
		}

		templates[name] = tmpl
	}

	return &Renderer{templates: templates, logger: logger}, nil
}

func (r *Renderer) render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, found := r.templates[name]
	if !found {
		r.logger.Error("unknown template", zap.String("name", name))
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		r.logger.Error("error rendering template", zap.String("name", name), zap.Error(err))
	}
}

func (r *Renderer) renderError(w http.ResponseWriter, status int, message string) {
	r.render(w, status, "error", map[string]any{"Title": "Error", "Message": message})
}
