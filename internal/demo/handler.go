// Package demo serves a page with a datepicker field and class modifiers.
package demo

import (
	"embed"
	"fmt"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/goliatone/go-formwidgets/pkg/behavior"
	"github.com/goliatone/go-formwidgets/pkg/component"
	"github.com/goliatone/go-formwidgets/pkg/datepicker"
	"github.com/goliatone/go-formwidgets/pkg/markup"
	"github.com/goliatone/go-formwidgets/pkg/page"
	rendertemplate "github.com/goliatone/go-formwidgets/pkg/render/template"
	"github.com/goliatone/go-formwidgets/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

const bodyTemplate = "templates/body.tpl"

// Options configures the demo handler.
type Options struct {
	Title      string
	Language   string
	Config     datepicker.Config
	References datepicker.References
	Sanitize   bool
	Logger     *zap.Logger
}

// Handler renders the demo page and echoes submitted dates.
type Handler struct {
	opts      Options
	templates rendertemplate.TemplateRenderer
	sanitizer *bluemonday.Policy
	logger    *zap.Logger
}

// NewHandler constructs the demo handler.
func NewHandler(opts Options) (*Handler, error) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(templatesFS),
		gotemplate.WithExtension(".tpl"),
	)
	if err != nil {
		return nil, fmt.Errorf("demo: configure templates: %w", err)
	}
	h := &Handler{
		opts:      opts,
		templates: engine,
		logger:    opts.Logger,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if opts.Sanitize {
		h.sanitizer = markup.FragmentPolicy()
	}
	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	field := datepicker.NewTextField("birthday",
		datepicker.WithConfig(h.opts.Config),
		datepicker.WithReferences(h.opts.References),
		datepicker.WithLocale(h.locale()),
		datepicker.WithLogger(h.logger),
	)

	result := submission{}
	if r.Method == http.MethodPost {
		result = h.submit(r, field)
	}

	body, err := h.templates.RenderTemplate(bodyTemplate, map[string]any{
		"action":  r.URL.Path,
		"message": result.message,
	})
	if err != nil {
		h.fail(w, "render body", err)
		return
	}

	container := component.New("container", component.WithBehaviors(
		behavior.NewCssClassNameAppenderFunc(func() string {
			if r.Method == http.MethodPost {
				return "submitted"
			}
			return ""
		}),
	))

	opts := []page.Option{
		page.WithTitle(h.opts.Title),
		page.WithLanguage(h.opts.Language),
		page.WithLogger(h.logger),
	}
	if h.sanitizer != nil {
		opts = append(opts, page.WithSanitizer(h.sanitizer))
	}
	p := page.New(body, opts...).Add(field, container)
	if result.message != "" {
		p.Add(component.New("status", component.WithBehaviors(
			result.NewCssClassNameModifier(),
		)))
	}

	doc, err := p.Render()
	if err != nil {
		h.fail(w, "render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if result.invalid {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	_, _ = w.Write([]byte(doc))
}

func (h *Handler) submit(r *http.Request, field *datepicker.TextField) submission {
	if err := r.ParseForm(); err != nil {
		return submission{message: "could not read the form", invalid: true}
	}
	value, err := field.Convert(r.PostForm.Get("birthday"))
	if err != nil {
		h.logger.Debug("invalid date submitted", zap.Error(err))
		return submission{
			message: fmt.Sprintf("%q does not match %s", r.PostForm.Get("birthday"), field.Pattern()),
			invalid: true,
		}
	}
	if value.IsZero() {
		return submission{message: "no date selected"}
	}
	field.SetValue(value)
	return submission{message: "selected " + value.Format(time.DateOnly)}
}

func (h *Handler) locale() language.Tag {
	tag, err := language.Parse(h.opts.Language)
	if err != nil {
		return language.Und
	}
	return tag
}

func (h *Handler) fail(w http.ResponseWriter, step string, err error) {
	h.logger.Error("demo page failed", zap.String("step", step), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// submission is the outcome of a form post. It provides the class names of
// the status message.
type submission struct {
	message string
	invalid bool
}

func (s submission) CssClassName() string {
	if s.invalid {
		return "alert alert-danger"
	}
	return "alert alert-success"
}

func (s submission) NewCssClassNameModifier() component.TagModifier {
	return behavior.NewCssClassNameModifierFromProvider(s)
}
