package services

import (
	"time"

	"foodorder/internal/pkg/errs"
)

// TimeWindow selects the reporting period for statistics. Windows are
// calendar-anchored: a window covers everything from the start of the
// current day, ISO week (Monday), month or year up to now.
type TimeWindow int

const (
	WindowUnknown TimeWindow = iota
	WindowDay
	WindowWeek
	WindowMonth
	WindowYear
	WindowAll
)

func getWindowStrings() map[TimeWindow]string {
	return map[TimeWindow]string{
		WindowUnknown: "unknown",
		WindowDay:     "day",
		WindowWeek:    "week",
		WindowMonth:   "month",
		WindowYear:    "year",
		WindowAll:     "all",
	}
}

func getValidWindowStrings() map[string]TimeWindow {
	return map[string]TimeWindow{
		"day":   WindowDay,
		"week":  WindowWeek,
		"month": WindowMonth,
		"year":  WindowYear,
		"all":   WindowAll,
	}
}

// WindowFromString parses a window name. Unrecognized names are rejected.
func WindowFromString(name string) (TimeWindow, error) {
	w, ok := getValidWindowStrings()[name]
	if !ok {
		return WindowUnknown, errs.NewValueIsInvalidError("window")
	}
	return w, nil
}

func (w TimeWindow) Validate() error {
	if _, ok := getWindowStrings()[w]; !ok || w == WindowUnknown {
		return errs.NewValueIsInvalidError("window")
	}
	return nil
}

func (w TimeWindow) String() string {
	return getWindowStrings()[w]
}

// Start returns the inclusive lower bound of the window relative to now.
// WindowAll returns the zero time, which precedes any order date.
func (w TimeWindow) Start(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch w {
	case WindowDay:
		return day
	case WindowWeek:
		// ISO weeks begin on Monday.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case WindowMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case WindowYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}

// Contains reports whether orderDate falls inside the window as of now.
func (w TimeWindow) Contains(orderDate time.Time, now time.Time) bool {
	if orderDate.After(now) {
		return false
	}
	return !orderDate.Before(w.Start(now))
}
