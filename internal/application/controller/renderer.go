package controller

import (
	"embed"
	"html/template"
	"io"

	"go-weather/internal/domain/model"

	"github.com/labstack/echo/v4"
)

const widgetTemplate = "widget.html"

//go:embed templates/*.html
var templateFS embed.FS

// PageData is what the widget page is rendered from
type PageData struct {
	BasePath string
	View     model.WidgetView
}

// TemplateRenderer renders the embedded HTML templates for echo
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: templates}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
