// Package appconfig loads the demo server configuration from defaults, an
// optional YAML file and command line flags, in that order of precedence.
package appconfig

import (
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwidgets/pkg/datepicker"
)

// Delimiter separates nested keys in files and flag names.
const Delimiter = "."

// Config is the demo server configuration.
type Config struct {
	Verbose    bool                  `koanf:"verbose"`
	Server     ServerConfig          `koanf:"server"`
	Assets     AssetsConfig          `koanf:"assets"`
	Page       PageConfig            `koanf:"page"`
	Datepicker datepicker.ConfigSpec `koanf:"datepicker"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `koanf:"addr"`
}

// AssetsConfig locates the datepicker assets. Dir is served under Prefix
// when set. Load normalizes Prefix to a rooted path without a trailing slash.
type AssetsConfig struct {
	Prefix string      `koanf:"prefix"`
	Dir    string      `koanf:"dir"`
	Theme  ThemeConfig `koanf:"theme"`
}

// ThemeConfig describes a theme manifest inline. Name selects it; an empty
// name keeps the bundled asset layout.
type ThemeConfig struct {
	Name     string                  `koanf:"name"`
	Variant  string                  `koanf:"variant"`
	Prefix   string                  `koanf:"prefix"`
	Files    ThemeFiles              `koanf:"files"`
	Variants map[string]ThemeVariant `koanf:"variants"`
}

// ThemeVariant overrides the theme prefix and files for one variant.
type ThemeVariant struct {
	Prefix string     `koanf:"prefix"`
	Files  ThemeFiles `koanf:"files"`
}

// ThemeFiles names the datepicker assets of a theme, relative to its prefix.
type ThemeFiles struct {
	Stylesheet string `koanf:"stylesheet"`
	Script     string `koanf:"script"`
	Locale     string `koanf:"locale"`
	JQuery     string `koanf:"jquery"`
}

func (f ThemeFiles) assets() map[string]string {
	files := map[string]string{}
	add := func(key, file string) {
		if file = strings.TrimSpace(file); file != "" {
			files[key] = file
		}
	}
	add(datepicker.AssetStylesheet, f.Stylesheet)
	add(datepicker.AssetScript, f.Script)
	add(datepicker.AssetLanguageScript, f.Locale)
	add(datepicker.AssetJQuery, f.JQuery)
	return files
}

// Manifest builds the theme manifest, or nil when no theme is named.
func (t ThemeConfig) Manifest() *theme.Manifest {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return nil
	}
	manifest := &theme.Manifest{
		Name: name,
		Assets: theme.Assets{
			Prefix: strings.TrimSpace(t.Prefix),
			Files:  t.Files.assets(),
		},
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for key, v := range t.Variants {
			manifest.Variants[key] = theme.Variant{
				Assets: theme.Assets{
					Prefix: strings.TrimSpace(v.Prefix),
					Files:  v.Files.assets(),
				},
			}
		}
	}
	return manifest
}

// Selection returns the configured theme selection, or nil when no theme is
// named.
func (t ThemeConfig) Selection() *theme.Selection {
	manifest := t.Manifest()
	if manifest == nil {
		return nil
	}
	return &theme.Selection{
		Theme:    manifest.Name,
		Variant:  strings.TrimSpace(t.Variant),
		Manifest: manifest,
	}
}

// References resolves the datepicker assets through the configured theme,
// falling back to the bundled layout under Prefix.
func (a AssetsConfig) References() datepicker.References {
	selection := a.Theme.Selection()
	if selection == nil {
		return datepicker.DefaultReferences(a.Prefix)
	}
	return datepicker.ReferencesFromTheme(datepicker.ThemeRendererConfig(selection), a.Prefix)
}

// PageConfig configures the demo page.
type PageConfig struct {
	Title    string `koanf:"title"`
	Language string `koanf:"language"`
	Sanitize bool   `koanf:"sanitize"`
}

// Defaults returns the default values keyed by their flattened path.
func Defaults() map[string]any {
	return map[string]any{
		"verbose":              false,
		"server.addr":          ":8383",
		"assets.prefix":        datepicker.DefaultAssetPrefix,
		"assets.dir":           "",
		"assets.theme.name":    "",
		"assets.theme.variant": "",
		"page.title":           "Datepicker demo",
		"page.language":        "en",
		"page.sanitize":        true,
	}
}

// RegisterFlags adds the flags Load understands to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "path to a YAML config file")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("server.addr", ":8383", "listen address")
	flags.String("assets.prefix", datepicker.DefaultAssetPrefix, "URL prefix of the datepicker assets")
	flags.String("assets.dir", "", "directory served under the asset prefix")
	flags.String("assets.theme.name", "", "theme whose manifest supplies the assets")
	flags.String("assets.theme.variant", "", "theme variant, e.g. dark")
	flags.String("datepicker.format", "", "date pattern, e.g. dd.MM.yyyy")
	flags.String("datepicker.language", "", "datepicker language, e.g. de")
}

// Load merges defaults, the file at path (skipped when empty) and the flags
// the user changed.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(Delimiter)

	if err := k.Load(confmap.Provider(Defaults(), Delimiter), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.CategoryOperation, "failed to load default values").
			WithTextCode("DEFAULT_VALUES_LOAD_FAILED")
	}

	if path = strings.TrimSpace(path); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, errors.Wrap(err, errors.CategoryOperation, "failed to load configuration from file").
				WithTextCode("FILE_LOAD_FAILED").
				WithMetadata(map[string]any{"filepath": path})
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, Delimiter, k), nil); err != nil {
			return Config{}, errors.Wrap(err, errors.CategoryOperation, "failed to load configuration from posix flags").
				WithTextCode("FLAGS_LOAD_FAILED")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.CategoryValidation, "failed to decode configuration").
			WithTextCode("CONFIG_DECODE_FAILED")
	}
	cfg.Assets.Prefix = normalizePrefix(cfg.Assets.Prefix)
	return cfg, nil
}

// normalizePrefix roots prefix and drops trailing slashes. An empty or root
// prefix would shadow the page handler, so it falls back to the default.
func normalizePrefix(prefix string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return datepicker.DefaultAssetPrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
