package behavior

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/component"
	"github.com/goliatone/go-formwidgets/pkg/markup"
)

type staticProvider struct {
	names string
}

func (p staticProvider) CssClassName() string { return p.names }

func (p staticProvider) NewCssClassNameModifier() component.TagModifier { return nil }

func TestCssClassNameModifier(t *testing.T) {
	calls := 0

	tests := []struct {
		name      string
		source    string
		behaviors []any
		want      string
	}{
		{
			name:      "class from provider is added",
			behaviors: []any{NewCssClassNameModifierFromProvider(staticProvider{names: "classX classY classZ"})},
			want:      "classX classY classZ",
		},
		{
			name: "class from func is added",
			behaviors: []any{NewCssClassNameModifierFunc(func() string {
				calls++
				return "classX classY classZ"
			})},
			want: "classX classY classZ",
		},
		{
			name:      "class from strings is added",
			behaviors: []any{NewCssClassNameModifier("classX", "classY", "classZ")},
			want:      "classX classY classZ",
		},
		{
			name:      "class from slice is added",
			behaviors: []any{NewCssClassNameModifier([]string{"classX", "classY", "classZ"}...)},
			want:      "classX classY classZ",
		},
		{
			name: "all class names before will be removed",
			behaviors: []any{
				NewCssClassNameModifier("classX classY classZ"),
				NewCssClassNameModifier("classU classV"),
			},
			want: "classU classV",
		},
		{
			name:      "authored class is replaced",
			source:    `<div data-fw-id="id" class="authored">`,
			behaviors: []any{NewCssClassNameModifier("classU")},
			want:      "classU",
		},
		{
			name:      "duplicates and extra whitespace collapse",
			behaviors: []any{NewCssClassNameModifier("  classX\tclassY ", "classX")},
			want:      "classX classY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			source := tc.source
			if source == "" {
				source = `<div data-fw-id="id">`
			}
			tag := renderTag(t, source, tc.behaviors...)
			got, ok := tag.Attr("class")
			if !ok {
				t.Fatalf("expected class attribute, got %s", tag)
			}
			if got != tc.want {
				t.Fatalf("class mismatch: want %q, got %q", tc.want, got)
			}
		})
	}

	if calls != 1 {
		t.Fatalf("expected dynamic source evaluated once per render, got %d", calls)
	}
}

func TestCssClassNameModifierEmptyRemovesAttribute(t *testing.T) {
	tag := renderTag(t, `<div class="authored">`, NewCssClassNameModifierFunc(func() string { return "   " }))
	if _, ok := tag.Attr("class"); ok {
		t.Fatalf("expected class attribute removed, got %s", tag)
	}
}

func TestCssClassNameModifierNilProvider(t *testing.T) {
	tag := renderTag(t, `<div class="authored">`, NewCssClassNameModifierFromProvider(nil))
	if _, ok := tag.Attr("class"); ok {
		t.Fatalf("expected class attribute removed, got %s", tag)
	}
}

func TestCssClassNameModifierEvaluatesPerRender(t *testing.T) {
	current := "first"
	c := component.New("id", component.WithBehaviors(NewCssClassNameModifierFunc(func() string { return current })))
	if err := c.Attach(markup.NewTag("div")); err != nil {
		t.Fatalf("attach: %v", err)
	}

	for _, want := range []string{"first", "second"} {
		current = want
		tag, err := c.RenderTag()
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if got, _ := tag.Attr("class"); got != want {
			t.Fatalf("class mismatch: want %q, got %q", want, got)
		}
	}
}

func TestCssClassNameAppenderMerges(t *testing.T) {
	tag := renderTag(t, `<div class="btn">`,
		NewCssClassNameAppender("btn-primary btn"),
		NewCssClassNameAppenderFunc(func() string { return "active" }),
	)
	if got, _ := tag.Attr("class"); got != "btn btn-primary active" {
		t.Fatalf("unexpected class: %q", got)
	}
}

func TestCssClassNameModifierClassNames(t *testing.T) {
	mod := NewCssClassNameModifier("a b", "c")
	if diff := cmp.Diff([]string{"a", "b", "c"}, mod.ClassNames()); diff != "" {
		t.Fatalf("class names mismatch (-want +got):\n%s", diff)
	}
}

func renderTag(t *testing.T, source string, behaviors ...any) *markup.Tag {
	t.Helper()

	tag, err := markup.ParseTag(source)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := component.New("id", component.WithBehaviors(behaviors...))
	if err := c.Attach(tag); err != nil {
		t.Fatalf("attach: %v", err)
	}
	rendered, err := c.RenderTag()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return rendered
}

type selfModifyingProvider struct {
	modifierCalls *int
}

func (p selfModifyingProvider) CssClassName() string { return "from-provider" }

func (p selfModifyingProvider) NewCssClassNameModifier() component.TagModifier {
	*p.modifierCalls++
	return NewCssClassNameModifierFromProvider(p)
}

func TestCssClassNameModifierFromProviderReadsOnlyClassName(t *testing.T) {
	calls := 0
	provider := selfModifyingProvider{modifierCalls: &calls}

	modifier := NewCssClassNameModifierFromProvider(provider)
	tag := markup.NewTag("div", markup.Attr{Key: "class", Val: "old"})
	if err := modifier.OnComponentTag(nil, tag); err != nil {
		t.Fatalf("modify tag: %v", err)
	}

	if got, _ := tag.Attr("class"); got != "from-provider" {
		t.Fatalf("expected provider class names, got %q", got)
	}
	if calls != 0 {
		t.Fatalf("expected provider modifier factory to be left alone, called %d times", calls)
	}
	if diff := cmp.Diff([]string{"from-provider"}, modifier.ClassNames()); diff != "" {
		t.Fatalf("class names mismatch (-want +got):\n%s", diff)
	}
}
