// Package render implements echo.Renderer over the embedded HTML templates.
package render

import (
	"html/template"
	"io"
	"io/fs"
	"path"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	templateDir  = "templates"
	baseTemplate = "base.html"
	layoutName   = "base"
)

// View is the value every page template executes against.
type View struct {
	CurrentUser *entity.User
	Page        any
}

// TemplateRenderer renders a page inside the shared base layout.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

// NewTemplateRenderer parses every page of fsys together with the base layout.
func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	files, err := fs.Glob(fsys, path.Join(templateDir, "*.html"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list templates")
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := path.Base(file)
		if name == baseTemplate {
			continue
		}

		tmpl, err := template.New(name).ParseFS(fsys, path.Join(templateDir, baseTemplate), file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse template %s", name)
		}
		pages[name] = tmpl
	}

	return &TemplateRenderer{pages: pages}, nil
}

// Render implements echo.Renderer.
func (r *TemplateRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %s not found", name)
	}

	view := View{Page: data}
	if c != nil {
		view.CurrentUser = deliverycontext.GetCurrentUser(c)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, layoutName, view))
}
