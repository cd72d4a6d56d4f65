package head

import (
	"fmt"

	"go.uber.org/zap"

	rendertemplate "github.com/goliatone/go-formwidgets/pkg/render/template"
	"github.com/goliatone/go-formwidgets/pkg/render/template/gotemplate"
)

// Option configures a Response.
type Option func(*Response)

// WithLogger attaches a logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Response) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTemplateRenderer replaces the renderer used by Markup. The renderer must
// resolve the "templates/head.tpl" template.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(r *Response) {
		if renderer != nil {
			r.templates = renderer
		}
	}
}

// Response accumulates head items for one page render.
type Response struct {
	items     []Item
	seen      map[string]struct{}
	templates rendertemplate.TemplateRenderer
	logger    *zap.Logger
}

// NewResponse constructs an empty response.
func NewResponse(options ...Option) *Response {
	r := &Response{
		seen:   make(map[string]struct{}),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Render adds items to the response. Items already rendered are skipped and
// reference dependencies are rendered first.
func (r *Response) Render(items ...Item) {
	for _, item := range items {
		r.render(item)
	}
}

func (r *Response) render(item Item) {
	if item.empty() {
		return
	}
	key := item.key()
	if _, exists := r.seen[key]; exists {
		r.logger.Debug("head item already rendered", zap.String("key", key))
		return
	}
	r.seen[key] = struct{}{}

	for _, dep := range item.Reference.Dependencies {
		r.render(Item{Kind: item.Kind, Reference: dep, Dependency: true})
	}
	r.items = append(r.items, item)
}

// Items returns the rendered items in order.
func (r *Response) Items() []Item {
	return append([]Item(nil), r.items...)
}

// Requested returns the URLs of kind rendered directly, leaving out those
// only pulled in as dependencies.
func (r *Response) Requested(kind Kind) []string {
	var out []string
	for _, item := range r.items {
		if item.Kind == kind && !item.Dependency {
			out = append(out, item.Reference.Key())
		}
	}
	return out
}

// Stylesheets returns the stylesheet URLs in render order.
func (r *Response) Stylesheets() []string {
	return r.urls(KindStylesheet)
}

// Scripts returns the script URLs in render order.
func (r *Response) Scripts() []string {
	return r.urls(KindScript)
}

// DomReadyScripts returns the DOM-ready scripts in render order.
func (r *Response) DomReadyScripts() []string {
	var out []string
	for _, item := range r.items {
		if item.Kind == KindDomReady {
			out = append(out, item.Script)
		}
	}
	return out
}

// Markup renders the head fragment.
func (r *Response) Markup() (string, error) {
	if r.templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return "", fmt.Errorf("head: configure template renderer: %w", err)
		}
		r.templates = engine
	}

	out, err := r.templates.RenderTemplate(headTemplate, map[string]any{
		"stylesheets": r.Stylesheets(),
		"scripts":     r.Scripts(),
		"domready":    r.DomReadyScripts(),
	})
	if err != nil {
		return "", fmt.Errorf("head: render template: %w", err)
	}
	return out, nil
}

func (r *Response) urls(kind Kind) []string {
	var out []string
	for _, item := range r.items {
		if item.Kind != kind {
			continue
		}
		url := item.Reference.URL
		if url == "" {
			url = item.Reference.Name
		}
		out = append(out, url)
	}
	return out
}
