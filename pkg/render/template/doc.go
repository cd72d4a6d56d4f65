// Package template holds the renderer seam used by head and page markup.
// The gotemplate subpackage provides the pongo2 implementation.
package template
