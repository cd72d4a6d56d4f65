package template_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formwidgets/pkg/render/template/gotemplate"
)

func TestEngineRenderTemplateWritesOutputs(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if want := "Hello Ada!"; result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
	if buf.String() != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, buf.String())
	}
}

func TestEngineGlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global.tpl", nil)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if want := "env=staging"; result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestEngineGlobalDataOption(t *testing.T) {
	files := fstest.MapFS{"use-global.tpl": {Data: []byte("env={{ settings.env }}")}}
	engine, err := gotemplate.New(
		gotemplate.WithFS(files),
		gotemplate.WithGlobalData(map[string]any{"settings": map[string]any{"env": "prod"}}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if result != "env=prod" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestEngineRenderStringTrimFilter(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderString("{{ value|trim }}", map[string]any{"value": "  padded  "})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "padded" {
		t.Fatalf("expected trimmed value, got %q", result)
	}
}

func TestEngineJSQuoteFilter(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderString("'{{ id|jsquote }}'", map[string]any{"id": "it's</script>"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if want := `'it\'s\u003c/script\u003e'`; result != want {
		t.Fatalf("jsquote mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestEngineRejectsUnsupportedData(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("hello", struct{ Name string }{"Ada"}); err == nil {
		t.Fatalf("expected error for struct data")
	}
}

func TestEngineRequiresFS(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without a template file system")
	}
}

func TestEngineMissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
	}

	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
