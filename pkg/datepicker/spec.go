package datepicker

import (
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formwidgets/components/locales"
)

// isoDate is the layout for dates in declarative configs.
const isoDate = "2006-01-02"

// ConfigSpec is the declarative form of a Config, as found in YAML files or
// application config trees. Unset fields keep the plugin defaults.
type ConfigSpec struct {
	Format             string   `yaml:"format" koanf:"format" json:"format,omitempty"`
	Language           string   `yaml:"language" koanf:"language" json:"language,omitempty"`
	WeekStart          string   `yaml:"week_start" koanf:"week_start" json:"weekStart,omitempty"`
	StartDate          string   `yaml:"start_date" koanf:"start_date" json:"startDate,omitempty"`
	EndDate            string   `yaml:"end_date" koanf:"end_date" json:"endDate,omitempty"`
	AutoClose          *bool    `yaml:"autoclose" koanf:"autoclose" json:"autoclose,omitempty"`
	TodayButton        string   `yaml:"today_button" koanf:"today_button" json:"todayBtn,omitempty"`
	TodayHighlight     *bool    `yaml:"today_highlight" koanf:"today_highlight" json:"todayHighlight,omitempty"`
	KeyboardNavigation *bool    `yaml:"keyboard_navigation" koanf:"keyboard_navigation" json:"keyboardNavigation,omitempty"`
	ForceParse         *bool    `yaml:"force_parse" koanf:"force_parse" json:"forceParse,omitempty"`
	ClearButton        *bool    `yaml:"clear_button" koanf:"clear_button" json:"clearBtn,omitempty"`
	CalendarWeeks      *bool    `yaml:"calendar_weeks" koanf:"calendar_weeks" json:"calendarWeeks,omitempty"`
	StartView          string   `yaml:"start_view" koanf:"start_view" json:"startView,omitempty"`
	MinView            string   `yaml:"min_view" koanf:"min_view" json:"minViewMode,omitempty"`
	Orientation        string   `yaml:"orientation" koanf:"orientation" json:"orientation,omitempty"`
	DaysOfWeekDisabled []string `yaml:"days_of_week_disabled" koanf:"days_of_week_disabled" json:"daysOfWeekDisabled,omitempty"`
}

// Build validates the options and returns the matching Config.
func (s ConfigSpec) Build() (Config, error) {
	cfg := NewConfig().WithFormat(s.Format)

	if value := strings.TrimSpace(s.Language); value != "" {
		tag, err := language.Parse(value)
		if err != nil {
			return Config{}, invalidOption("language", value, err)
		}
		if _, ok := locales.Bundle(tag); !ok {
			return Config{}, invalidOption("language", value, nil)
		}
		cfg = cfg.WithLanguage(tag)
	}

	if value := strings.TrimSpace(s.WeekStart); value != "" {
		day, ok := ParseWeekday(value)
		if !ok {
			return Config{}, invalidOption("week_start", value, nil)
		}
		cfg = cfg.WithWeekStart(day)
	}

	start, err := parseSpecDate("start_date", s.StartDate)
	if err != nil {
		return Config{}, err
	}
	end, err := parseSpecDate("end_date", s.EndDate)
	if err != nil {
		return Config{}, err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return Config{}, errors.New("datepicker end_date is before start_date", errors.CategoryValidation).
			WithTextCode("INVALID_DATE_RANGE").
			WithMetadata(map[string]any{"start_date": s.StartDate, "end_date": s.EndDate})
	}
	cfg = cfg.WithStartDate(start).WithEndDate(end)

	if value := strings.TrimSpace(s.TodayButton); value != "" {
		button, ok := ParseTodayButton(value)
		if !ok {
			return Config{}, invalidOption("today_button", value, nil)
		}
		cfg = cfg.ShowTodayButton(button)
	}

	for _, flag := range []struct {
		value *bool
		apply func(Config, bool) Config
	}{
		{s.AutoClose, Config.AutoClose},
		{s.TodayHighlight, Config.HighlightToday},
		{s.KeyboardNavigation, Config.AllowKeyboardNavigation},
		{s.ForceParse, Config.ForceParse},
		{s.ClearButton, Config.ClearButton},
		{s.CalendarWeeks, Config.CalendarWeeks},
	} {
		if flag.value != nil {
			cfg = flag.apply(cfg, *flag.value)
		}
	}

	if value := strings.TrimSpace(s.StartView); value != "" {
		view, ok := ParseView(value)
		if !ok {
			return Config{}, invalidOption("start_view", value, nil)
		}
		cfg = cfg.WithView(view)
	}
	if value := strings.TrimSpace(s.MinView); value != "" {
		view, ok := ParseView(value)
		if !ok {
			return Config{}, invalidOption("min_view", value, nil)
		}
		cfg = cfg.WithMinView(view)
	}

	cfg = cfg.WithOrientation(s.Orientation)

	days := make([]time.Weekday, 0, len(s.DaysOfWeekDisabled))
	for _, value := range s.DaysOfWeekDisabled {
		day, ok := ParseWeekday(value)
		if !ok {
			return Config{}, invalidOption("days_of_week_disabled", value, nil)
		}
		days = append(days, day)
	}
	return cfg.WithDaysOfWeekDisabled(days...), nil
}

// ParseConfigSpecYAML decodes a ConfigSpec document without validating it.
func ParseConfigSpecYAML(data []byte) (ConfigSpec, error) {
	var spec ConfigSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return ConfigSpec{}, errors.Wrap(err, errors.CategoryBadInput, "decode datepicker config").
			WithTextCode("INVALID_CONFIG")
	}
	return spec, nil
}

// LoadConfigYAML decodes a ConfigSpec document and builds it.
func LoadConfigYAML(data []byte) (Config, error) {
	spec, err := ParseConfigSpecYAML(data)
	if err != nil {
		return Config{}, err
	}
	return spec.Build()
}

func parseSpecDate(option, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(isoDate, value)
	if err != nil {
		return time.Time{}, invalidOption(option, value, err)
	}
	return date, nil
}

func invalidOption(option, value string, cause error) error {
	metadata := map[string]any{"option": option, "value": value}
	if cause == nil {
		return errors.New("invalid datepicker option "+option, errors.CategoryValidation).
			WithTextCode("INVALID_OPTION").
			WithMetadata(metadata)
	}
	return errors.Wrap(cause, errors.CategoryValidation, "invalid datepicker option "+option).
		WithTextCode("INVALID_OPTION").
		WithMetadata(metadata)
}
