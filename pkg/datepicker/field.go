package datepicker

import (
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/goliatone/go-formwidgets/pkg/behavior"
	"github.com/goliatone/go-formwidgets/pkg/component"
	"github.com/goliatone/go-formwidgets/pkg/head"
	"github.com/goliatone/go-formwidgets/pkg/jquery"
	"github.com/goliatone/go-formwidgets/pkg/markup"
)

// widgetFunction is the plugin's jQuery entry point.
const widgetFunction = "datepicker"

// Option configures a TextField.
type Option func(*TextField)

// WithPattern fixes the date pattern. It sets the config format after all
// options are applied, so it wins over the format of any WithConfig.
func WithPattern(pattern string) Option {
	return func(f *TextField) {
		f.patternOverride = strings.TrimSpace(pattern)
	}
}

// WithConfig replaces the field's option bag. A WithPattern pattern is kept.
func WithConfig(cfg Config) Option {
	return func(f *TextField) {
		f.config = cfg
	}
}

// WithLocale sets the locale used to pick the short date pattern when no
// format is configured.
func WithLocale(tag language.Tag) Option {
	return func(f *TextField) {
		f.locale = tag
	}
}

// WithReferences overrides the resource URLs.
func WithReferences(refs References) Option {
	return func(f *TextField) {
		f.refs = refs
	}
}

// WithValue sets the initial value written into the input.
func WithValue(value time.Time) Option {
	return func(f *TextField) {
		f.value = value
	}
}

// WithLocation sets the time zone submitted values are parsed in.
func WithLocation(loc *time.Location) Option {
	return func(f *TextField) {
		if loc != nil {
			f.location = loc
		}
	}
}

// WithLogger attaches a logger to the field and its component.
func WithLogger(logger *zap.Logger) Option {
	return func(f *TextField) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithComponentOptions forwards options to the underlying component.
func WithComponentOptions(options ...component.Option) Option {
	return func(f *TextField) {
		f.componentOptions = append(f.componentOptions, options...)
	}
}

// TextField is a text input activated as a bootstrap datepicker.
type TextField struct {
	*component.Component

	config           Config
	locale           language.Tag
	pattern          string
	patternOverride  string
	refs             References
	value            time.Time
	location         *time.Location
	logger           *zap.Logger
	componentOptions []component.Option
	initialized      bool
}

// NewTextField constructs a field bound to the element with component id id.
// Without a pattern the locale's short date pattern is used.
func NewTextField(id string, options ...Option) *TextField {
	f := &TextField{
		config:   NewConfig(),
		refs:     DefaultReferences(""),
		location: time.Local,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.patternOverride != "" {
		f.config = f.config.WithFormat(f.patternOverride)
	}

	if f.locale == language.Und && !f.config.IsDefaultLanguageSet() {
		if tag, err := language.Parse(f.config.Language()); err == nil {
			f.locale = tag
		}
	}
	if f.pattern = f.config.Format(); f.pattern == "" {
		f.pattern = ShortDatePattern(f.locale)
	}

	componentOptions := append([]component.Option{component.WithLogger(f.logger)}, f.componentOptions...)
	f.Component = component.New(id, componentOptions...)
	f.Component.Add(f)
	return f
}

// Config returns the field's option bag.
func (f *TextField) Config() Config {
	return f.config
}

// Pattern returns the date pattern used to format and parse values.
func (f *TextField) Pattern() string {
	return f.pattern
}

// References returns the resource URLs the field renders.
func (f *TextField) References() References {
	return f.refs
}

// Value returns the current value.
func (f *TextField) Value() time.Time {
	return f.value
}

// SetValue replaces the current value.
func (f *TextField) SetValue(value time.Time) {
	f.value = value
}

// OnAttach implements component.Attacher.
func (f *TextField) OnAttach(c *component.Component) error {
	c.SetOutputMarkupID(true)
	if f.initialized {
		return nil
	}
	c.Add(
		behavior.AssertTagName("input"),
		behavior.NewAttributeModifier("type", "text"),
	)
	f.initialized = true
	return nil
}

// OnComponentTag implements component.TagModifier.
func (f *TextField) OnComponentTag(_ *component.Component, tag *markup.Tag) error {
	if f.value.IsZero() {
		return nil
	}
	tag.SetAttr("value", f.FormatValue(f.value))
	return nil
}

// OnRenderResources implements component.ResourceContributor.
func (f *TextField) OnRenderResources(c *component.Component, resp *head.Response) error {
	resp.Render(head.CSS(f.refs.StylesheetReference()))

	if f.config.IsDefaultLanguageSet() {
		resp.Render(head.JS(f.refs.ScriptReference()))
	} else {
		resp.Render(head.JS(f.refs.LanguageScriptReference(f.config.Language())))
	}

	script := f.Script()
	resp.Render(head.OnDomReady(script))

	f.logger.Debug("datepicker resources rendered",
		zap.String("component", c.ID()),
		zap.String("language", f.config.Language()),
		zap.String("script", script),
	)
	return nil
}

// Script returns the activation statement for the field's element. The
// options are passed only when the bag is not empty.
func (f *TextField) Script() string {
	var params []string
	if !f.config.IsEmpty() {
		params = append(params, f.config.JSON())
	}
	return jquery.ByID(f.MarkupID()).Chain(jquery.Call(widgetFunction, params...)).String()
}

// Convert parses submitted input with the field pattern. Blank input is the
// zero time. A two digit year pattern also accepts four digit years.
func (f *TextField) Convert(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, nil
	}
	var firstErr error
	for _, layout := range ParseLayouts(f.pattern) {
		value, err := time.ParseInLocation(layout, input, f.location)
		if err == nil {
			return value, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, errors.Wrap(firstErr, errors.CategoryValidation, "invalid date").
		WithTextCode("INVALID_DATE").
		WithMetadata(map[string]any{
			"component": f.ID(),
			"input":     input,
			"pattern":   f.pattern,
		})
}

// FormatValue formats value with the field pattern.
func (f *TextField) FormatValue(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(GoLayout(f.pattern))
}
