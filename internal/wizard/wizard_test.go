package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/datepicker"
)

type stubDriver struct {
	inputs     []string
	selectIdx  []int
	multiIdx   [][]int
	confirm    []bool
	inputPos   int
	selectPos  int
	multiPos   int
	confirmPos int
	messages   []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func TestAskBuildsSpec(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"dd.MM.yyyy", "de"},
		selectIdx: []int{1, 2},
		confirm:   []bool{true},
		multiIdx:  [][]int{{0, 6}},
	}

	spec, err := Ask(context.Background(), driver, datepicker.ConfigSpec{})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}

	cfg, err := spec.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := `{"format":"dd.mm.yyyy","language":"de","weekStart":1,"autoclose":true,"todayBtn":"linked","daysOfWeekDisabled":[0,6]}`
	if diff := cmp.Diff(want, cfg.JSON()); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if len(driver.messages) != 6 {
		t.Fatalf("expected six prompts, got %v", driver.messages)
	}
}

func TestAskKeepsDefaultsWhenUnchanged(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", ""},
		selectIdx: []int{0, 0},
		confirm:   []bool{false},
		multiIdx:  [][]int{nil},
	}

	spec, err := Ask(context.Background(), driver, datepicker.ConfigSpec{Orientation: "bottom"})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	cfg, err := spec.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := cfg.JSON(); got != `{"orientation":"bottom"}` {
		t.Fatalf("unexpected config %s", got)
	}
}

func TestAskPropagatesDriverErrors(t *testing.T) {
	driver := &stubDriver{inputs: []string{"dd.MM.yyyy"}}
	if _, err := Ask(context.Background(), driver, datepicker.ConfigSpec{}); err == nil {
		t.Fatalf("expected error when the driver runs out of answers")
	}

	driver = &stubDriver{inputs: []string{"dd.MM.yyyy", "not a language!"}}
	if _, err := Ask(context.Background(), driver, datepicker.ConfigSpec{}); err == nil {
		t.Fatalf("expected validator error")
	}
}

func TestValidatePattern(t *testing.T) {
	for _, pattern := range []string{"", "dd.MM.yyyy", "M/d/yy", "EEEE, d MMMM yyyy"} {
		if err := ValidatePattern(pattern); err != nil {
			t.Fatalf("expected %q to be valid: %v", pattern, err)
		}
	}
}

func TestValidateLanguage(t *testing.T) {
	for _, value := range []string{"", "de", "pt-BR", "en", "en-US", "de-AT"} {
		if err := ValidateLanguage(value); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", value, err)
		}
	}
	for _, value := range []string{"tlh", "not a tag"} {
		if err := ValidateLanguage(value); err == nil {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}

func TestOptionLabels(t *testing.T) {
	got := optionLabels([]string{"sunday", "linked"})
	if len(got) != 2 || got[0] != "Sunday" || got[1] != "Linked" {
		t.Fatalf("unexpected labels: %v", got)
	}
}
