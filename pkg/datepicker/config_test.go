package datepicker

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
)

func TestNewConfigIsEmpty(t *testing.T) {
	cfg := NewConfig()
	if !cfg.IsEmpty() {
		t.Fatalf("expected fresh config to be empty")
	}
	if got := cfg.JSON(); got != "{}" {
		t.Fatalf("expected empty object, got %s", got)
	}
	if !cfg.IsDefaultLanguageSet() {
		t.Fatalf("expected default language on fresh config")
	}
	if got := cfg.Language(); got != DefaultLanguage {
		t.Fatalf("expected language %q, got %q", DefaultLanguage, got)
	}

	var zero Config
	if !zero.IsEmpty() || zero.JSON() != "{}" {
		t.Fatalf("expected zero value to behave like NewConfig")
	}
}

func TestConfigSettersReturnNewValues(t *testing.T) {
	base := NewConfig()
	withFormat := base.WithFormat("dd.MM.yyyy")

	if !base.IsEmpty() {
		t.Fatalf("setter mutated the receiver")
	}
	if withFormat.IsEmpty() {
		t.Fatalf("expected format to be set")
	}

	other := withFormat.AutoClose(true)
	if _, ok := withFormat.Get(KeyAutoClose); ok {
		t.Fatalf("setter leaked into the previous value")
	}
	if _, ok := other.Get(KeyFormat); !ok {
		t.Fatalf("expected format carried into the new value")
	}
}

func TestConfigDefaultsAreOmitted(t *testing.T) {
	cfg := NewConfig().
		WithFormat("").
		WithLanguage(language.English).
		WithWeekStart(time.Sunday).
		WithStartDate(time.Time{}).
		AutoClose(false).
		ShowTodayButton(TodayButtonHidden).
		AllowKeyboardNavigation(true).
		ForceParse(true).
		WithView(ViewDays).
		WithOrientation("auto").
		WithDaysOfWeekDisabled()

	if !cfg.IsEmpty() {
		t.Fatalf("expected defaults to leave the bag empty, got %s", cfg.JSON())
	}
}

func TestConfigSettingDefaultRemovesKey(t *testing.T) {
	cfg := NewConfig().AutoClose(true)
	if cfg.IsEmpty() {
		t.Fatalf("expected autoclose to be set")
	}

	cfg = cfg.AutoClose(false)
	if !cfg.IsEmpty() {
		t.Fatalf("expected autoclose reset to remove the key, got %s", cfg.JSON())
	}
}

func TestConfigJSONUsesWireNamesInCanonicalOrder(t *testing.T) {
	cfg := NewConfig().
		WithDaysOfWeekDisabled(time.Saturday, time.Sunday, time.Saturday).
		CalendarWeeks(true).
		ShowTodayButton(TodayButtonLinked).
		AutoClose(true).
		WithWeekStart(time.Monday).
		WithLanguage(language.German).
		WithFormat("dd.MM.yyyy")

	want := `{"format":"dd.mm.yyyy","language":"de","weekStart":1,"autoclose":true,"todayBtn":"linked","calendarWeeks":true,"daysOfWeekDisabled":[0,6]}`
	if diff := cmp.Diff(want, cfg.JSON()); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigJSONIncludesEveryExplicitKey(t *testing.T) {
	cfg := NewConfig().
		ShowTodayButton(TodayButtonVisible).
		HighlightToday(true).
		AllowKeyboardNavigation(false).
		ForceParse(false).
		ClearButton(true).
		WithView(ViewYears).
		WithMinView(ViewMonths).
		WithOrientation("  top   left ")

	out := cfg.JSON()
	checks := map[string]any{
		"todayBtn":           true,
		"todayHighlight":     true,
		"keyboardNavigation": false,
		"forceParse":         false,
		"clearBtn":           true,
		"startView":          float64(2),
		"minViewMode":        float64(1),
		"orientation":        "top left",
	}
	for key, want := range checks {
		result := gjson.Get(out, key)
		if !result.Exists() {
			t.Fatalf("expected %s in %s", key, out)
		}
		if diff := cmp.Diff(want, result.Value()); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", key, diff)
		}
	}
	if gjson.Get(out, "format").Exists() || gjson.Get(out, "language").Exists() {
		t.Fatalf("expected unset keys to be omitted, got %s", out)
	}
}

func TestConfigDatesUseConfiguredFormat(t *testing.T) {
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	cfg := NewConfig().WithStartDate(start).WithEndDate(end)
	if got := gjson.Get(cfg.JSON(), "startDate").String(); got != "01/15/2024" {
		t.Fatalf("expected plugin default date format, got %q", got)
	}

	cfg = cfg.WithFormat("dd.MM.yyyy")
	out := cfg.JSON()
	if got := gjson.Get(out, "startDate").String(); got != "15.01.2024" {
		t.Fatalf("unexpected start date %q", got)
	}
	if got := gjson.Get(out, "endDate").String(); got != "31.12.2024" {
		t.Fatalf("unexpected end date %q", got)
	}
}

func TestConfigCustomKeys(t *testing.T) {
	cfg := NewConfig().
		Set("zIndexOffset", 20).
		Set("container", "#modal.body").
		AutoClose(true)

	want := []Key{KeyAutoClose, "container", "zIndexOffset"}
	if diff := cmp.Diff(want, cfg.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	wantJSON := `{"autoclose":true,"container":"#modal.body","zIndexOffset":20}`
	if diff := cmp.Diff(wantJSON, cfg.JSON()); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}

	cfg = cfg.Set("container", nil)
	if _, ok := cfg.Get("container"); ok {
		t.Fatalf("expected nil to remove the key")
	}
}

func TestConfigLanguage(t *testing.T) {
	cfg := NewConfig().WithLanguage(language.MustParse("pt-BR"))
	if cfg.IsDefaultLanguageSet() {
		t.Fatalf("expected explicit language")
	}
	if got := cfg.Language(); got != "pt-BR" {
		t.Fatalf("expected pt-BR, got %q", got)
	}

	cfg = cfg.WithLanguage(language.Und)
	if !cfg.IsDefaultLanguageSet() {
		t.Fatalf("expected language.Und to reset the language")
	}

	cfg = cfg.Set(KeyLanguage, DefaultLanguage)
	if !cfg.IsDefaultLanguageSet() {
		t.Fatalf("expected the default language to count as unset")
	}
}

func TestConfigJSONEscapesMarkupInValues(t *testing.T) {
	payload := "</script><script>alert(1)</script>"
	cfg := NewConfig().
		WithOrientation(payload).
		Set(Key("title"), "a & b")

	out := cfg.JSON()
	for _, raw := range []string{"<", ">", "&"} {
		if strings.Contains(out, raw) {
			t.Fatalf("expected %q to be escaped in %s", raw, out)
		}
	}
	if got := gjson.Get(out, "orientation").String(); got != payload {
		t.Fatalf("expected orientation to decode to %q, got %q", payload, got)
	}
	if got := gjson.Get(out, "title").String(); got != "a & b" {
		t.Fatalf("expected custom value to decode, got %q", got)
	}
}

func TestConfigLanguageResolvesShippedBundles(t *testing.T) {
	cases := []struct {
		tag  language.Tag
		want string
	}{
		{language.AmericanEnglish, DefaultLanguage},
		{language.BritishEnglish, "en-GB"},
		{language.MustParse("de-AT"), "de"},
		{language.MustParse("pt-PT"), "pt"},
		{language.MustParse("tlh"), DefaultLanguage},
	}
	for _, tc := range cases {
		cfg := NewConfig().WithLanguage(tc.tag)
		if got := cfg.Language(); got != tc.want {
			t.Fatalf("WithLanguage(%s): expected %q, got %q", tc.tag, tc.want, got)
		}
		if cfg.IsDefaultLanguageSet() != (tc.want == DefaultLanguage) {
			t.Fatalf("WithLanguage(%s): unexpected default language flag", tc.tag)
		}
	}
}
