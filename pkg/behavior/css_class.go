package behavior

import (
	"github.com/goliatone/go-formwidgets/pkg/component"
	"github.com/goliatone/go-formwidgets/pkg/markup"
)

const classAttr = "class"

// CssClassNameProvider is implemented by values that know their own class
// names. NewCssClassNameModifier may return nil when the provider has no
// ready-made modifier of its own.
type CssClassNameProvider interface {
	CssClassName() string
	NewCssClassNameModifier() component.TagModifier
}

// CssClassNameModifier owns the class attribute of its tag: on every render it
// replaces the attribute with the resolved class names. When several modifiers
// are attached to one component the last one registered wins.
//
// An empty class set removes the attribute.
type CssClassNameModifier struct {
	names func() []string
}

// NewCssClassNameModifier uses fixed class names. A single value may carry
// several whitespace separated names.
func NewCssClassNameModifier(names ...string) *CssClassNameModifier {
	tokens := SplitClassNames(names...)
	return &CssClassNameModifier{names: func() []string { return tokens }}
}

// NewCssClassNameModifierFunc evaluates fn once per render. The returned value
// may carry several whitespace separated names.
func NewCssClassNameModifierFunc(fn func() string) *CssClassNameModifier {
	return &CssClassNameModifier{names: func() []string {
		if fn == nil {
			return nil
		}
		return SplitClassNames(fn())
	}}
}

// NewCssClassNameModifierFromProvider reads the class names from provider on
// every render. Only CssClassName is consulted: the provider's own
// NewCssClassNameModifier is for callers that attach it directly, and
// providers commonly implement it with this constructor.
func NewCssClassNameModifierFromProvider(provider CssClassNameProvider) *CssClassNameModifier {
	if provider == nil {
		return NewCssClassNameModifier()
	}
	return NewCssClassNameModifierFunc(provider.CssClassName)
}

// ClassNames returns the class names the next render would write.
func (m *CssClassNameModifier) ClassNames() []string {
	return m.names()
}

// OnComponentTag implements component.TagModifier.
func (m *CssClassNameModifier) OnComponentTag(_ *component.Component, tag *markup.Tag) error {
	value := JoinClassNames(m.names()...)
	if value == "" {
		tag.RemoveAttr(classAttr)
		return nil
	}
	tag.SetAttr(classAttr, value)
	return nil
}

// CssClassNameAppender merges its class names into the existing class
// attribute instead of replacing it.
type CssClassNameAppender struct {
	names func() []string
}

// NewCssClassNameAppender appends fixed class names.
func NewCssClassNameAppender(names ...string) *CssClassNameAppender {
	tokens := SplitClassNames(names...)
	return &CssClassNameAppender{names: func() []string { return tokens }}
}

// NewCssClassNameAppenderFunc appends the names returned by fn at render time.
func NewCssClassNameAppenderFunc(fn func() string) *CssClassNameAppender {
	return &CssClassNameAppender{names: func() []string {
		if fn == nil {
			return nil
		}
		return SplitClassNames(fn())
	}}
}

// OnComponentTag implements component.TagModifier.
func (a *CssClassNameAppender) OnComponentTag(_ *component.Component, tag *markup.Tag) error {
	current, _ := tag.Attr(classAttr)
	value := JoinClassNames(append([]string{current}, a.names()...)...)
	if value == "" {
		tag.RemoveAttr(classAttr)
		return nil
	}
	tag.SetAttr(classAttr, value)
	return nil
}
