package datepicker

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwidgets/pkg/head"
)

// DefaultAssetPrefix is where the plugin assets are served from unless
// configured otherwise.
const DefaultAssetPrefix = "/assets/bootstrap-datepicker"

// Asset keys looked up in theme manifests.
const (
	AssetStylesheet     = "datepicker.stylesheet"
	AssetScript         = "datepicker.script"
	AssetLanguageScript = "datepicker.locale"
	AssetJQuery         = "datepicker.jquery"
)

const (
	defaultStylesheet     = "css/bootstrap-datepicker.css"
	defaultScript         = "js/bootstrap-datepicker.js"
	defaultJQuery         = "js/jquery.min.js"
	defaultLanguageScript = "js/locales/bootstrap-datepicker.{lang}.js"
	languagePlaceholder   = "{lang}"
)

// References holds the resources a datepicker field renders. LanguageScript
// is a URL template where {lang} is replaced by the language code.
type References struct {
	Stylesheet     string
	Script         string
	LanguageScript string
	JQuery         string
}

// DefaultReferences returns the bundled asset layout under prefix. An empty
// prefix uses DefaultAssetPrefix.
func DefaultReferences(prefix string) References {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultAssetPrefix
	}
	return References{
		Stylesheet:     expandAssetURL(prefix, defaultStylesheet),
		Script:         expandAssetURL(prefix, defaultScript),
		LanguageScript: expandAssetURL(prefix, defaultLanguageScript),
		JQuery:         expandAssetURL(prefix, defaultJQuery),
	}
}

// ReferencesFromTheme resolves asset URLs through the theme's asset resolver,
// keeping the defaults for keys the theme does not provide.
func ReferencesFromTheme(cfg *theme.RendererConfig, prefix string) References {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultAssetPrefix
	}
	refs := DefaultReferences(prefix)
	if cfg == nil || cfg.AssetURL == nil {
		return refs
	}
	resolve := func(key string, fallback *string) {
		if resolved := strings.TrimSpace(cfg.AssetURL(key)); resolved != "" {
			*fallback = expandAssetURL(prefix, resolved)
		}
	}
	resolve(AssetStylesheet, &refs.Stylesheet)
	resolve(AssetScript, &refs.Script)
	resolve(AssetLanguageScript, &refs.LanguageScript)
	resolve(AssetJQuery, &refs.JQuery)
	return refs
}

// ThemeRendererConfig builds a renderer config whose asset resolver reads the
// selected manifest, preferring variant assets over the base ones.
func ThemeRendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant, hasVariant := manifest.Variants[selection.Variant]
	return &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  manifest.Tokens,
		AssetURL: func(key string) string {
			if hasVariant {
				if file := variant.Assets.Files[key]; file != "" {
					return expandAssetURL(firstNonEmpty(variant.Assets.Prefix, manifest.Assets.Prefix), file)
				}
			}
			if file := manifest.Assets.Files[key]; file != "" {
				return expandAssetURL(manifest.Assets.Prefix, file)
			}
			return ""
		},
	}
}

// ReferencesFromSelector selects a theme and resolves references from it. A
// nil selector yields the defaults.
func ReferencesFromSelector(selector theme.ThemeSelector, name, variant, prefix string) (References, error) {
	if selector == nil {
		return DefaultReferences(prefix), nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return References{}, err
	}
	return ReferencesFromTheme(ThemeRendererConfig(selection), prefix), nil
}

// StylesheetReference is the plugin stylesheet.
func (r References) StylesheetReference() head.Reference {
	return head.Reference{Name: "bootstrap-datepicker.css", URL: r.Stylesheet}
}

// ScriptReference is the generic plugin script, which depends on jQuery.
func (r References) ScriptReference() head.Reference {
	ref := head.Reference{Name: "bootstrap-datepicker.js", URL: r.Script}
	if strings.TrimSpace(r.JQuery) != "" {
		ref.Dependencies = []head.Reference{{Name: "jquery", URL: r.JQuery}}
	}
	return ref
}

// LanguageScriptReference is the locale bundle for lang. It depends on the
// generic script.
func (r References) LanguageScriptReference(lang string) head.Reference {
	return head.Reference{
		Name:         "bootstrap-datepicker." + lang + ".js",
		URL:          strings.ReplaceAll(r.LanguageScript, languagePlaceholder, lang),
		Dependencies: []head.Reference{r.ScriptReference()},
	}
}

func expandAssetURL(prefix, name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "http://") ||
		strings.HasPrefix(name, "https://") ||
		strings.HasPrefix(name, "//") ||
		strings.HasPrefix(name, "/") {
		return name
	}
	if prefix == "" {
		return name
	}
	p := strings.TrimRight(prefix, "/")
	n := strings.TrimLeft(name, "/")
	if p == "" {
		return n
	}
	return p + "/" + n
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
