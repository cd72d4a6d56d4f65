// Package wizard asks for datepicker options interactively.
package wizard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-formwidgets/components/locales"
	"github.com/goliatone/go-formwidgets/pkg/datepicker"
)

var (
	weekdays     = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	todayButtons = []string{"hidden", "visible", "linked"}
)

// sampleDate checks that a pattern survives a format/parse round trip.
var sampleDate = time.Date(2024, time.November, 28, 0, 0, 0, 0, time.UTC)

// Ask prompts for the common options, using defaults for the initial
// answers.
func Ask(ctx context.Context, driver PromptDriver, defaults datepicker.ConfigSpec) (datepicker.ConfigSpec, error) {
	spec := defaults

	format, err := driver.Input(ctx, InputConfig{
		Message:   "Date pattern",
		Default:   defaults.Format,
		Help:      "Pattern letters: yyyy year, MM month, dd day, EEE weekday. Leave empty for the locale default.",
		Validator: ValidatePattern,
	})
	if err != nil {
		return spec, err
	}
	spec.Format = strings.TrimSpace(format)

	lang, err := driver.Input(ctx, InputConfig{
		Message:   "Language",
		Default:   defaults.Language,
		Help:      "BCP 47 tag of the datepicker locale bundle, e.g. de or pt-BR.",
		Validator: ValidateLanguage,
	})
	if err != nil {
		return spec, err
	}
	spec.Language = strings.TrimSpace(lang)

	weekStart := 0
	if day, ok := datepicker.ParseWeekday(defaults.WeekStart); ok {
		weekStart = int(day)
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "First day of the week",
		Options:      optionLabels(weekdays),
		DefaultIndex: weekStart,
	})
	if err != nil {
		return spec, err
	}
	if idx >= 0 {
		spec.WeekStart = weekdays[idx]
	}

	autoclose, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Close the picker after a date is selected?",
		Default: defaults.AutoClose != nil && *defaults.AutoClose,
	})
	if err != nil {
		return spec, err
	}
	spec.AutoClose = &autoclose

	todayDefault := 0
	if button, ok := datepicker.ParseTodayButton(defaults.TodayButton); ok {
		todayDefault = int(button)
	}
	idx, err = driver.Select(ctx, SelectConfig{
		Message:      "Today button",
		Options:      optionLabels(todayButtons),
		DefaultIndex: todayDefault,
	})
	if err != nil {
		return spec, err
	}
	if idx >= 0 {
		spec.TodayButton = todayButtons[idx]
	}

	var disabledDefaults []int
	for _, value := range defaults.DaysOfWeekDisabled {
		if day, ok := datepicker.ParseWeekday(value); ok {
			disabledDefaults = append(disabledDefaults, int(day))
		}
	}
	disabled, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  "Disabled days of the week",
		Options:  optionLabels(weekdays),
		Defaults: disabledDefaults,
	})
	if err != nil {
		return spec, err
	}
	spec.DaysOfWeekDisabled = nil
	for _, idx := range disabled {
		if idx >= 0 && idx < len(weekdays) {
			spec.DaysOfWeekDisabled = append(spec.DaysOfWeekDisabled, weekdays[idx])
		}
	}

	return spec, nil
}

// ValidatePattern accepts empty input or a pattern whose output parses back.
func ValidatePattern(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	layout := datepicker.GoLayout(value)
	if _, err := time.Parse(layout, sampleDate.Format(layout)); err != nil {
		return fmt.Errorf("pattern %q cannot be parsed back: %w", value, err)
	}
	return nil
}

// ValidateLanguage accepts empty input or a language tag served by a shipped
// datepicker bundle.
func ValidateLanguage(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	tag, err := language.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", value, err)
	}
	if _, ok := locales.Bundle(tag); !ok {
		return fmt.Errorf("no datepicker bundle for language %q", value)
	}
	return nil
}

// optionLabels title-cases the wire values shown in select prompts.
func optionLabels(values []string) []string {
	caser := cases.Title(language.English)
	labels := make([]string, len(values))
	for i, value := range values {
		labels[i] = caser.String(value)
	}
	return labels
}
