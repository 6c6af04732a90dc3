package post_http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	model "pinstack-blog-service/internal/domain/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

type pageData struct {
	Title   string
	Posts   model.PostCollection
	Post    *model.Post
	Message string
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the page into a buffer first so a template failure never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data pageData) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
