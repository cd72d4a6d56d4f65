package component

import (
	"strings"

	"github.com/goliatone/go-errors"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/pkg/head"
	"github.com/goliatone/go-formwidgets/pkg/markup"
)

// State is the lifecycle position of a component.
type State int

const (
	StateUnattached State = iota
	StateInitialized
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateUnattached:
		return "unattached"
	case StateInitialized:
		return "initialized"
	case StateRendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// Attacher is notified once when the component is attached to its tag.
type Attacher interface {
	OnAttach(c *Component) error
}

// TagModifier adjusts the tag written for the component on every render.
type TagModifier interface {
	OnComponentTag(c *Component, tag *markup.Tag) error
}

// ResourceContributor renders head items on every render.
type ResourceContributor interface {
	OnRenderResources(c *Component, resp *head.Response) error
}

// Option configures a Component.
type Option func(*Component)

// WithMarkupID fixes the markup id instead of deriving it from the tag or the
// component id.
func WithMarkupID(id string) Option {
	return func(c *Component) {
		c.markupID = strings.TrimSpace(id)
	}
}

// WithOutputMarkupID controls whether the markup id is written as the tag id.
func WithOutputMarkupID(enabled bool) Option {
	return func(c *Component) {
		c.outputMarkupID = enabled
	}
}

// WithBehaviors registers behaviors at construction time.
func WithBehaviors(behaviors ...any) Option {
	return func(c *Component) {
		c.Add(behaviors...)
	}
}

// WithLogger attaches a logger for lifecycle debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Component) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Component binds behaviors to one markup element.
type Component struct {
	id             string
	markupID       string
	outputMarkupID bool
	tag            *markup.Tag
	behaviors      []any
	state          State
	logger         *zap.Logger
}

// New constructs an unattached component.
func New(id string, options ...Option) *Component {
	c := &Component{
		id:     strings.TrimSpace(id),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// ID returns the component id used to find its element in markup.
func (c *Component) ID() string {
	return c.id
}

// State returns the lifecycle state.
func (c *Component) State() State {
	return c.state
}

// Tag returns a copy of the tag the component was attached to.
func (c *Component) Tag() *markup.Tag {
	return c.tag.Clone()
}

// SetOutputMarkupID toggles writing the markup id into the tag.
func (c *Component) SetOutputMarkupID(enabled bool) {
	c.outputMarkupID = enabled
}

// OutputMarkupID reports whether the markup id is written into the tag.
func (c *Component) OutputMarkupID() bool {
	return c.outputMarkupID
}

// MarkupID returns the DOM id of the element. An explicit id wins, then the
// id attribute of the attached tag, then the component id.
func (c *Component) MarkupID() string {
	if c.markupID != "" {
		return c.markupID
	}
	if c.tag != nil {
		if id, ok := c.tag.Attr("id"); ok && strings.TrimSpace(id) != "" {
			return strings.TrimSpace(id)
		}
	}
	return sanitizeID(c.id)
}

// Add registers behaviors. Behaviors added while attaching are attached in
// the same pass.
func (c *Component) Add(behaviors ...any) *Component {
	for _, behavior := range behaviors {
		if behavior == nil {
			continue
		}
		c.behaviors = append(c.behaviors, behavior)
	}
	return c
}

// Behaviors returns the registered behaviors in order.
func (c *Component) Behaviors() []any {
	return append([]any(nil), c.behaviors...)
}

// Attach binds the component to tag and runs every Attacher once.
func (c *Component) Attach(tag *markup.Tag) error {
	if c.state != StateUnattached {
		return errors.Wrap(ErrAlreadyAttached, errors.CategoryOperation, "attach component").
			WithTextCode("ALREADY_ATTACHED").
			WithMetadata(map[string]any{"component": c.id})
	}
	if tag == nil {
		return errors.New("component tag is required", errors.CategoryBadInput).
			WithTextCode("MISSING_TAG").
			WithMetadata(map[string]any{"component": c.id})
	}
	c.tag = tag.Clone()

	// behaviors may grow while iterating
	for idx := 0; idx < len(c.behaviors); idx++ {
		attacher, ok := c.behaviors[idx].(Attacher)
		if !ok {
			continue
		}
		if err := attacher.OnAttach(c); err != nil {
			c.tag = nil
			return err
		}
	}

	c.state = StateInitialized
	c.logger.Debug("component attached",
		zap.String("component", c.id),
		zap.String("tag", c.tag.Name()),
		zap.Int("behaviors", len(c.behaviors)),
	)
	return nil
}

// RenderTag returns the tag to write for this render pass. The attached tag is
// never mutated, so every pass starts from the authored markup.
func (c *Component) RenderTag() (*markup.Tag, error) {
	if c.state == StateUnattached {
		return nil, errors.Wrap(ErrNotAttached, errors.CategoryOperation, "render component tag").
			WithTextCode("NOT_ATTACHED").
			WithMetadata(map[string]any{"component": c.id})
	}
	tag := c.tag.Clone()
	if c.outputMarkupID {
		tag.SetAttr("id", c.MarkupID())
	}
	for _, behavior := range c.behaviors {
		modifier, ok := behavior.(TagModifier)
		if !ok {
			continue
		}
		if err := modifier.OnComponentTag(c, tag); err != nil {
			return nil, err
		}
	}
	c.state = StateRendered
	return tag, nil
}

// RenderResources lets every ResourceContributor render into resp.
func (c *Component) RenderResources(resp *head.Response) error {
	if c.state == StateUnattached {
		return errors.Wrap(ErrNotAttached, errors.CategoryOperation, "render component resources").
			WithTextCode("NOT_ATTACHED").
			WithMetadata(map[string]any{"component": c.id})
	}
	if resp == nil {
		return nil
	}
	for _, behavior := range c.behaviors {
		contributor, ok := behavior.(ResourceContributor)
		if !ok {
			continue
		}
		if err := contributor.OnRenderResources(c, resp); err != nil {
			return err
		}
	}
	c.state = StateRendered
	return nil
}

func sanitizeID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
