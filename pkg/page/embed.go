package page

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// LayoutTemplate is the default document layout.
const LayoutTemplate = "templates/page.tpl"

// TemplatesFS exposes the embedded layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
