package datepicker

import (
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/sjson"
	"golang.org/x/text/language"

	"github.com/goliatone/go-formwidgets/components/locales"
)

// Config is the option bag passed to the plugin. The zero value is an empty
// bag. Configs are immutable: every setter returns a new Config.
type Config struct {
	values map[Key]any
}

// NewConfig returns an empty bag.
func NewConfig() Config {
	return Config{}
}

// Set stores value under key. A nil value or the key's default removes the
// key. Known keys expect the types their typed setters store.
func (c Config) Set(key Key, value any) Config {
	next := c.clone()
	if value == nil || isDefault(key, value) {
		delete(next.values, key)
		return next
	}
	next.values[key] = value
	return next
}

// Get returns the stored value for key.
func (c Config) Get(key Key) (any, bool) {
	value, ok := c.values[key]
	return value, ok
}

// IsEmpty reports whether no option differs from its default.
func (c Config) IsEmpty() bool {
	return len(c.values) == 0
}

// Keys returns the set keys in serialization order.
func (c Config) Keys() []Key {
	keys := make([]Key, 0, len(c.values))
	for _, key := range canonicalKeys {
		if _, ok := c.values[key]; ok {
			keys = append(keys, key)
		}
	}
	var extra []Key
	for key := range c.values {
		if _, known := defaults[key]; !known {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}

// WithFormat sets the date pattern (yyyy, MM, dd, ... as in CLDR patterns).
// The pattern is translated to the plugin's syntax when serialized.
func (c Config) WithFormat(pattern string) Config {
	return c.Set(KeyFormat, strings.TrimSpace(pattern))
}

// Format returns the configured date pattern, or "" when unset.
func (c Config) Format() string {
	value, _ := c.values[KeyFormat].(string)
	return value
}

// WithLanguage selects the plugin language bundle serving tag, e.g. de-AT
// selects "de". English without a regional bundle, language.Und and
// languages without a bundle reset to the default language.
func (c Config) WithLanguage(tag language.Tag) Config {
	code, ok := locales.Bundle(tag)
	if !ok || code == "" {
		return c.Set(KeyLanguage, nil)
	}
	return c.Set(KeyLanguage, code)
}

// Language returns the configured language code, DefaultLanguage when unset.
func (c Config) Language() string {
	if value, ok := c.values[KeyLanguage].(string); ok {
		return value
	}
	return DefaultLanguage
}

// IsDefaultLanguageSet reports whether the language was left at the default,
// in which case the generic script is used instead of a language bundle.
func (c Config) IsDefaultLanguageSet() bool {
	_, ok := c.values[KeyLanguage]
	return !ok
}

// WithWeekStart sets the first day of the week.
func (c Config) WithWeekStart(day time.Weekday) Config {
	return c.Set(KeyWeekStart, day)
}

// WithStartDate sets the earliest selectable date. The zero time clears it.
func (c Config) WithStartDate(date time.Time) Config {
	return c.Set(KeyStartDate, date)
}

// WithEndDate sets the latest selectable date. The zero time clears it.
func (c Config) WithEndDate(date time.Time) Config {
	return c.Set(KeyEndDate, date)
}

// AutoClose closes the picker after a date is selected.
func (c Config) AutoClose(enabled bool) Config {
	return c.Set(KeyAutoClose, enabled)
}

// ShowTodayButton configures the "Today" button.
func (c Config) ShowTodayButton(button TodayButton) Config {
	return c.Set(KeyTodayButton, button)
}

// HighlightToday highlights the current date.
func (c Config) HighlightToday(enabled bool) Config {
	return c.Set(KeyTodayHighlight, enabled)
}

// AllowKeyboardNavigation toggles arrow key navigation.
func (c Config) AllowKeyboardNavigation(enabled bool) Config {
	return c.Set(KeyKeyboardNavigation, enabled)
}

// ForceParse makes the plugin rewrite typed input into the configured format.
func (c Config) ForceParse(enabled bool) Config {
	return c.Set(KeyForceParse, enabled)
}

// ClearButton shows a "Clear" button.
func (c Config) ClearButton(enabled bool) Config {
	return c.Set(KeyClearButton, enabled)
}

// CalendarWeeks shows week numbers.
func (c Config) CalendarWeeks(enabled bool) Config {
	return c.Set(KeyCalendarWeeks, enabled)
}

// WithView sets the view the picker opens with.
func (c Config) WithView(view View) Config {
	return c.Set(KeyStartView, view)
}

// WithMinView limits how far down the picker can zoom.
func (c Config) WithMinView(view View) Config {
	return c.Set(KeyMinViewMode, view)
}

// WithOrientation positions the picker ("auto", "top left", ...).
func (c Config) WithOrientation(orientation string) Config {
	return c.Set(KeyOrientation, strings.Join(strings.Fields(orientation), " "))
}

// WithDaysOfWeekDisabled disables selection of the given week days.
func (c Config) WithDaysOfWeekDisabled(days ...time.Weekday) Config {
	if len(days) == 0 {
		return c.Set(KeyDaysOfWeekDisabled, nil)
	}
	sorted := slices.Clone(days)
	slices.Sort(sorted)
	return c.Set(KeyDaysOfWeekDisabled, slices.Compact(sorted))
}

// scriptEscaper keeps serialized options inert inside an inline script
// element. The replaced characters only occur within JSON strings.
var scriptEscaper = strings.NewReplacer(
	"<", `\u003c`,
	">", `\u003e`,
	"&", `\u0026`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// MarshalJSON writes the non-default options as a flat object using the
// plugin option names, in canonical key order. HTML significant characters
// in values are written as \u escapes.
func (c Config) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, key := range c.Keys() {
		var err error
		out, err = sjson.SetBytes(out, escapePath(string(key)), c.wireValue(key))
		if err != nil {
			return nil, err
		}
	}
	return []byte(scriptEscaper.Replace(string(out))), nil
}

// JSON is MarshalJSON as a string. It returns "{}" if a custom value cannot
// be encoded.
func (c Config) JSON() string {
	out, err := c.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(out)
}

func (c Config) wireValue(key Key) any {
	value := c.values[key]
	switch v := value.(type) {
	case time.Weekday:
		return int(v)
	case []time.Weekday:
		days := make([]int, len(v))
		for idx, day := range v {
			days[idx] = int(day)
		}
		return days
	case TodayButton:
		return v.wireValue()
	case View:
		return int(v)
	case time.Time:
		return v.Format(GoLayout(c.datePattern()))
	}
	if key == KeyFormat {
		if pattern, ok := value.(string); ok {
			return ScriptFormat(pattern)
		}
	}
	return value
}

// datePattern is the pattern dates are written in: the configured format or
// the plugin default mm/dd/yyyy.
func (c Config) datePattern() string {
	if format := c.Format(); format != "" {
		return format
	}
	return defaultScriptPattern
}

func (c Config) clone() Config {
	next := Config{values: make(map[Key]any, len(c.values)+1)}
	for key, value := range c.values {
		next.values[key] = value
	}
	return next
}

func isDefault(key Key, value any) bool {
	def, known := defaults[key]
	if !known {
		return false
	}
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return true
		}
	case time.Time:
		return v.IsZero()
	case []time.Weekday:
		return len(v) == 0
	}
	return reflect.DeepEqual(def, value)
}

var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	".", `\.`,
	"*", `\*`,
	"?", `\?`,
	"|", `\|`,
	"#", `\#`,
	"@", `\@`,
	":", `\:`,
)

func escapePath(key string) string {
	return pathEscaper.Replace(key)
}
