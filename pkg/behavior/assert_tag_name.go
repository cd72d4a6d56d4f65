package behavior

import (
	goerrors "errors"
	"slices"
	"strings"

	"github.com/goliatone/go-errors"

	"github.com/goliatone/go-formwidgets/pkg/component"
)

// ErrTagNameMismatch is the sentinel wrapped by AssertTagName failures.
var ErrTagNameMismatch = goerrors.New("behavior: unexpected tag name")

// TagNameAssertion fails the attach when the component tag is not one of the
// expected names.
type TagNameAssertion struct {
	expected []string
}

// AssertTagName constructs a TagNameAssertion. Names compare case-insensitively.
func AssertTagName(expected ...string) *TagNameAssertion {
	names := make([]string, 0, len(expected))
	for _, name := range expected {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			names = append(names, name)
		}
	}
	return &TagNameAssertion{expected: names}
}

// OnAttach implements component.Attacher.
func (a *TagNameAssertion) OnAttach(c *component.Component) error {
	got := c.Tag().Name()
	if slices.Contains(a.expected, got) {
		return nil
	}
	return errors.Wrap(ErrTagNameMismatch, errors.CategoryValidation, "component is attached to the wrong tag").
		WithTextCode("TAG_NAME_MISMATCH").
		WithMetadata(map[string]any{
			"component": c.ID(),
			"expected":  a.expected,
			"actual":    got,
		})
}
