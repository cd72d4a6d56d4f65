package page

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formwidgets/pkg/component"
	"github.com/goliatone/go-formwidgets/pkg/head"
	"github.com/goliatone/go-formwidgets/pkg/markup"
	rendertemplate "github.com/goliatone/go-formwidgets/pkg/render/template"
	"github.com/goliatone/go-formwidgets/pkg/render/template/gotemplate"
)

// Bindable is what a page needs from a component. *component.Component and
// types embedding it satisfy it.
type Bindable interface {
	ID() string
	State() component.State
	Attach(tag *markup.Tag) error
	RenderTag() (*markup.Tag, error)
	RenderResources(resp *head.Response) error
}

// Option configures a Page.
type Option func(*Page)

// WithLogger attaches a logger for render debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Page) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSanitizer sanitizes the authored body before binding. The policy must
// keep data-fw-id attributes, see markup.FragmentPolicy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(p *Page) {
		p.sanitizer = policy
	}
}

// WithTemplateRenderer replaces the renderer for the layout and head. It must
// resolve the layout template and "templates/head.tpl".
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(p *Page) {
		if renderer != nil {
			p.templates = renderer
		}
	}
}

// WithLayout selects the layout template name.
func WithLayout(name string) Option {
	return func(p *Page) {
		if name = strings.TrimSpace(name); name != "" {
			p.layout = name
		}
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(p *Page) {
		p.title = title
	}
}

// WithLanguage sets the document lang attribute.
func WithLanguage(lang string) Option {
	return func(p *Page) {
		if lang = strings.TrimSpace(lang); lang != "" {
			p.lang = lang
		}
	}
}

// Page renders an authored body with its bound components.
type Page struct {
	body       string
	title      string
	lang       string
	layout     string
	components []Bindable
	sanitizer  *bluemonday.Policy
	templates  rendertemplate.TemplateRenderer
	layouts    rendertemplate.TemplateRenderer
	logger     *zap.Logger
}

// Parts is the rendered head fragment and body.
type Parts struct {
	Head string
	Body string
}

// New constructs a page for body.
func New(body string, options ...Option) *Page {
	p := &Page{
		body:   body,
		lang:   "en",
		layout: LayoutTemplate,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Add registers components. Resources are rendered in registration order.
func (p *Page) Add(components ...Bindable) *Page {
	for _, c := range components {
		if c != nil {
			p.components = append(p.components, c)
		}
	}
	return p
}

// Render returns the full document.
func (p *Page) Render() (string, error) {
	parts, err := p.RenderParts()
	if err != nil {
		return "", err
	}

	engine, err := p.engine()
	if err != nil {
		return "", err
	}
	out, err := engine.RenderTemplate(p.layout, map[string]any{
		"title": p.title,
		"lang":  p.lang,
		"head":  parts.Head,
		"body":  parts.Body,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryOperation, "render page layout").
			WithTextCode("LAYOUT_RENDER_FAILED").
			WithMetadata(map[string]any{"layout": p.layout})
	}
	return out, nil
}

// RenderParts binds and renders the components and returns the head
// fragment and the rewritten body.
func (p *Page) RenderParts() (Parts, error) {
	byID := make(map[string]Bindable, len(p.components))
	for _, c := range p.components {
		if _, exists := byID[c.ID()]; exists {
			return Parts{}, errors.Wrap(ErrDuplicateComponent, errors.CategoryValidation, "register page component").
				WithTextCode("DUPLICATE_COMPONENT").
				WithMetadata(map[string]any{"component": c.ID()})
		}
		byID[c.ID()] = c
	}

	body := p.body
	if p.sanitizer != nil {
		body = p.sanitizer.Sanitize(body)
	}

	context := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(body), context)
	if err != nil {
		return Parts{}, errors.Wrap(err, errors.CategoryBadInput, "parse page body").
			WithTextCode("INVALID_MARKUP")
	}

	bound := make(map[string]bool, len(byID))
	for _, node := range nodes {
		if err := p.bind(node, byID, bound); err != nil {
			return Parts{}, err
		}
	}
	for _, c := range p.components {
		if !bound[c.ID()] {
			return Parts{}, errors.Wrap(ErrComponentNotInMarkup, errors.CategoryValidation, "bind page component").
				WithTextCode("COMPONENT_NOT_IN_MARKUP").
				WithMetadata(map[string]any{
					"component": c.ID(),
					"attribute": markup.BindingAttr,
				})
		}
	}

	respOptions := []head.Option{head.WithLogger(p.logger)}
	if p.templates != nil {
		respOptions = append(respOptions, head.WithTemplateRenderer(p.templates))
	}
	resp := head.NewResponse(respOptions...)
	for _, c := range p.components {
		if err := c.RenderResources(resp); err != nil {
			return Parts{}, err
		}
	}
	headMarkup, err := resp.Markup()
	if err != nil {
		return Parts{}, errors.Wrap(err, errors.CategoryOperation, "render page head").
			WithTextCode("HEAD_RENDER_FAILED")
	}

	var buf bytes.Buffer
	for _, node := range nodes {
		if err := xhtml.Render(&buf, node); err != nil {
			return Parts{}, fmt.Errorf("page: render body: %w", err)
		}
	}

	p.logger.Debug("page rendered",
		zap.Int("components", len(p.components)),
		zap.Int("head_items", len(resp.Items())),
	)
	return Parts{Head: headMarkup, Body: buf.String()}, nil
}

func (p *Page) bind(node *xhtml.Node, byID map[string]Bindable, bound map[string]bool) error {
	if node.Type == xhtml.ElementNode {
		if id, ok := bindingID(node); ok {
			if err := p.bindElement(node, id, byID, bound); err != nil {
				return err
			}
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if err := p.bind(child, byID, bound); err != nil {
			return err
		}
	}
	return nil
}

func (p *Page) bindElement(node *xhtml.Node, id string, byID map[string]Bindable, bound map[string]bool) error {
	c, ok := byID[id]
	if !ok {
		p.logger.Debug("markup binding without component", zap.String("component", id))
		return nil
	}
	if bound[id] {
		return errors.Wrap(ErrDuplicateComponent, errors.CategoryValidation, "bind page component").
			WithTextCode("COMPONENT_BOUND_TWICE").
			WithMetadata(map[string]any{"component": id})
	}
	bound[id] = true

	tag := markup.TagFromNode(node)
	tag.RemoveAttr(markup.BindingAttr)

	if c.State() == component.StateUnattached {
		if err := c.Attach(tag); err != nil {
			return err
		}
	}
	rendered, err := c.RenderTag()
	if err != nil {
		return err
	}
	rendered.ApplyToNode(node)

	p.logger.Debug("component bound",
		zap.String("component", id),
		zap.String("tag", rendered.Name()),
	)
	return nil
}

func (p *Page) engine() (rendertemplate.TemplateRenderer, error) {
	if p.templates != nil {
		return p.templates, nil
	}
	if p.layouts != nil {
		return p.layouts, nil
	}
	engine, err := gotemplate.New(
		gotemplate.WithFS(TemplatesFS()),
		gotemplate.WithExtension(".tpl"),
	)
	if err != nil {
		return nil, fmt.Errorf("page: configure template renderer: %w", err)
	}
	p.layouts = engine
	return engine, nil
}

func bindingID(node *xhtml.Node) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == markup.BindingAttr {
			id := strings.TrimSpace(attr.Val)
			return id, id != ""
		}
	}
	return "", false
}
