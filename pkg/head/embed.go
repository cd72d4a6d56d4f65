package head

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const headTemplate = "templates/head.tpl"

// TemplatesFS exposes the embedded head template so callers can override it
// through their own template renderer.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
