// Package templates renders the site's HTML surfaces.
//
// All markup lives in embedded template files. Handlers pass fully built view
// structs, so templates stay free of lookup or localization logic.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Fragment names a template and the data it renders with.
type Fragment struct {
	Name string
	Data any
}

// Render executes one named template.
func Render(w io.Writer, name string, data any) error {
	if w == nil {
		return fmt.Errorf("writer is required")
	}
	return templates.ExecuteTemplate(w, name, data)
}

// RenderFragment executes a fragment template.
func RenderFragment(w io.Writer, fragment Fragment) error {
	if fragment.Name == "" {
		return fmt.Errorf("fragment name is required")
	}
	return Render(w, fragment.Name, fragment.Data)
}

// RenderShell renders a fragment inside the full page layout.
func RenderShell(w io.Writer, shell Shell, fragment Fragment) error {
	if w == nil {
		return fmt.Errorf("writer is required")
	}
	var content bytes.Buffer
	if err := RenderFragment(&content, fragment); err != nil {
		return fmt.Errorf("render %s fragment: %w", fragment.Name, err)
	}
	shell.Content = template.HTML(content.String())
	return templates.ExecuteTemplate(w, "layout", shell)
}
