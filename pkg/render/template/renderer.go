package template

import "io"

// TemplateRenderer resolves named templates from its configured file system
// and renders inline template content. Rendered output is returned and also
// written to every writer in out.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	GlobalContext(data map[string]any) error
}
