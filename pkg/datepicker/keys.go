package datepicker

import (
	"strings"
	"time"
)

// Key is an option name. Key values are the plugin's option names and are
// written verbatim into the activation script.
type Key string

const (
	KeyFormat             Key = "format"
	KeyLanguage           Key = "language"
	KeyWeekStart          Key = "weekStart"
	KeyStartDate          Key = "startDate"
	KeyEndDate            Key = "endDate"
	KeyAutoClose          Key = "autoclose"
	KeyTodayButton        Key = "todayBtn"
	KeyTodayHighlight     Key = "todayHighlight"
	KeyKeyboardNavigation Key = "keyboardNavigation"
	KeyForceParse         Key = "forceParse"
	KeyClearButton        Key = "clearBtn"
	KeyCalendarWeeks      Key = "calendarWeeks"
	KeyStartView          Key = "startView"
	KeyMinViewMode        Key = "minViewMode"
	KeyOrientation        Key = "orientation"
	KeyDaysOfWeekDisabled Key = "daysOfWeekDisabled"
)

// DefaultLanguage is the language the generic plugin script ships with.
const DefaultLanguage = "en"

// canonicalKeys fixes the serialization order of the known options.
var canonicalKeys = []Key{
	KeyFormat,
	KeyLanguage,
	KeyWeekStart,
	KeyStartDate,
	KeyEndDate,
	KeyAutoClose,
	KeyTodayButton,
	KeyTodayHighlight,
	KeyKeyboardNavigation,
	KeyForceParse,
	KeyClearButton,
	KeyCalendarWeeks,
	KeyStartView,
	KeyMinViewMode,
	KeyOrientation,
	KeyDaysOfWeekDisabled,
}

// defaults holds the plugin default for every known key. Setting a key to its
// default removes it from the bag.
var defaults = map[Key]any{
	KeyFormat:             "",
	KeyLanguage:           DefaultLanguage,
	KeyWeekStart:          time.Sunday,
	KeyStartDate:          time.Time{},
	KeyEndDate:            time.Time{},
	KeyAutoClose:          false,
	KeyTodayButton:        TodayButtonHidden,
	KeyTodayHighlight:     false,
	KeyKeyboardNavigation: true,
	KeyForceParse:         true,
	KeyClearButton:        false,
	KeyCalendarWeeks:      false,
	KeyStartView:          ViewDays,
	KeyMinViewMode:        ViewDays,
	KeyOrientation:        "auto",
	KeyDaysOfWeekDisabled: []time.Weekday(nil),
}

// TodayButton controls the "Today" button at the bottom of the picker.
type TodayButton int

const (
	TodayButtonHidden TodayButton = iota
	TodayButtonVisible
	// TodayButtonLinked also selects the current date.
	TodayButtonLinked
)

func (b TodayButton) wireValue() any {
	switch b {
	case TodayButtonVisible:
		return true
	case TodayButtonLinked:
		return "linked"
	default:
		return false
	}
}

// ParseTodayButton accepts "", "false", "true" and "linked".
func ParseTodayButton(value string) (TodayButton, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "hidden", "no":
		return TodayButtonHidden, true
	case "true", "visible", "yes":
		return TodayButtonVisible, true
	case "linked":
		return TodayButtonLinked, true
	default:
		return TodayButtonHidden, false
	}
}

// View is a picker view level.
type View int

const (
	ViewDays View = iota
	ViewMonths
	ViewYears
	ViewDecades
	ViewCenturies
)

var viewNames = map[string]View{
	"days":       ViewDays,
	"month":      ViewDays,
	"months":     ViewMonths,
	"year":       ViewMonths,
	"years":      ViewYears,
	"decade":     ViewYears,
	"decades":    ViewDecades,
	"century":    ViewDecades,
	"centuries":  ViewCenturies,
	"millennium": ViewCenturies,
}

// ParseView accepts the view names used by the plugin documentation.
func ParseView(value string) (View, bool) {
	view, ok := viewNames[strings.ToLower(strings.TrimSpace(value))]
	return view, ok
}

var weekdayNames = map[string]time.Weekday{}

func init() {
	for day := time.Sunday; day <= time.Saturday; day++ {
		name := strings.ToLower(day.String())
		weekdayNames[name] = day
		weekdayNames[name[:3]] = day
		weekdayNames[string(rune('0'+int(day)))] = day
	}
}

// ParseWeekday accepts full or three letter english day names and the
// numbers 0 (Sunday) through 6.
func ParseWeekday(value string) (time.Weekday, bool) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(value))]
	return day, ok
}
