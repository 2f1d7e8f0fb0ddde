// Package web отрисовывает страницы frontend в HTML и хранит токен в cookie браузера.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"

	"Corexus/internal/frontend"
)

//go:embed templates/layout.html
var templatesFS embed.FS

// PageData дополнительные данные для шаблона.
type PageData struct {
	Error string
	Email string
}

type layoutData struct {
	View  *frontend.View
	Body  template.HTML
	Error string
	Email string
}

// Renderer превращает View в HTML: тело из Markdown через goldmark, обвязка: html/template.
type Renderer struct {
	layout *template.Template
	md     goldmark.Markdown
}

// NewRenderer разбирает встроенный шаблон.
func NewRenderer() *Renderer {
	tpl := template.Must(template.ParseFS(templatesFS, "templates/layout.html"))
	return &Renderer{layout: tpl, md: goldmark.New()}
}

// Render пишет страницу в w.
func (r *Renderer) Render(w io.Writer, v *frontend.View, data PageData) error {
	var body bytes.Buffer
	// goldmark по умолчанию экранирует сырой HTML, поэтому результат безопасен
	if err := r.md.Convert([]byte(v.Body), &body); err != nil {
		return fmt.Errorf("render markdown %s: %w", v.Name, err)
	}
	return r.layout.Execute(w, layoutData{
		View:  v,
		Body:  template.HTML(body.String()),
		Error: data.Error,
		Email: data.Email,
	})
}
