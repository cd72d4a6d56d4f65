package behavior

import (
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/component"
	"github.com/goliatone/go-formwidgets/pkg/markup"
)

// AttributeMode selects how a modifier combines its value with the existing
// attribute value.
type AttributeMode int

const (
	ModeReplace AttributeMode = iota
	ModeAppend
	ModePrepend
	ModeRemove
)

// AttributeModifier writes one attribute on every render. The value func is
// evaluated once per render.
type AttributeModifier struct {
	name      string
	value     func() string
	mode      AttributeMode
	separator string
}

// NewAttributeModifier replaces attribute name with value.
func NewAttributeModifier(name, value string) *AttributeModifier {
	return &AttributeModifier{name: name, value: constant(value), mode: ModeReplace}
}

// NewAttributeModifierFunc replaces attribute name with the value returned by
// fn at render time.
func NewAttributeModifierFunc(name string, fn func() string) *AttributeModifier {
	return &AttributeModifier{name: name, value: fn, mode: ModeReplace}
}

// NewAttributeAppender appends value to the existing attribute using separator.
func NewAttributeAppender(name, value, separator string) *AttributeModifier {
	return &AttributeModifier{name: name, value: constant(value), mode: ModeAppend, separator: separator}
}

// NewAttributePrepender prepends value to the existing attribute using separator.
func NewAttributePrepender(name, value, separator string) *AttributeModifier {
	return &AttributeModifier{name: name, value: constant(value), mode: ModePrepend, separator: separator}
}

// NewAttributeRemover drops attribute name.
func NewAttributeRemover(name string) *AttributeModifier {
	return &AttributeModifier{name: name, mode: ModeRemove}
}

// OnComponentTag implements component.TagModifier.
func (m *AttributeModifier) OnComponentTag(_ *component.Component, tag *markup.Tag) error {
	if m.mode == ModeRemove {
		tag.RemoveAttr(m.name)
		return nil
	}
	value := ""
	if m.value != nil {
		value = m.value()
	}
	current, _ := tag.Attr(m.name)
	switch m.mode {
	case ModeAppend:
		tag.SetAttr(m.name, join(current, value, m.separator))
	case ModePrepend:
		tag.SetAttr(m.name, join(value, current, m.separator))
	default:
		tag.SetAttr(m.name, value)
	}
	return nil
}

func join(first, second, separator string) string {
	if strings.TrimSpace(first) == "" {
		return second
	}
	if strings.TrimSpace(second) == "" {
		return first
	}
	return first + separator + second
}

func constant(value string) func() string {
	return func() string { return value }
}
