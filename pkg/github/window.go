package github

import (
	"strings"
	"time"

	"github.com/arthur-debert/gitcal/pkg/errors"
)

// Window selects how much history is requested.
type Window int

const (
	// WindowYear covers the year up to now.
	WindowYear Window = iota
	// WindowYTD starts at the first day of the current year.
	WindowYTD
	// WindowMonth starts at the first day of the current month.
	WindowMonth
)

var windowNames = [...]string{
	WindowYear:  "year",
	WindowYTD:   "ytd",
	WindowMonth: "month",
}

func (w Window) String() string {
	if w < WindowYear || w > WindowMonth {
		return "unknown"
	}
	return windowNames[w]
}

// ParseWindow parses a window name; the empty string is WindowYear.
func ParseWindow(name string) (Window, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return WindowYear, nil
	}
	for i, n := range windowNames {
		if n == name {
			return Window(i), nil
		}
	}
	return WindowYear, errors.Newf(errors.ErrInvalidWindow,
		"unknown time window %q (available: year, ytd, month)", name).
		WithDetail("window", name)
}

// SelectWindow turns the mutually exclusive --ytd and --month switches
// into a Window.
func SelectWindow(ytd, month bool) (Window, error) {
	switch {
	case ytd && month:
		return WindowYear, errors.New(errors.ErrConflicting,
			"only one time window may be selected, got ytd, month")
	case ytd:
		return WindowYTD, nil
	case month:
		return WindowMonth, nil
	}
	return WindowYear, nil
}

// Range returns the interval the window covers, ending at now.
func (w Window) Range(now time.Time) (from, to time.Time) {
	switch w {
	case WindowYTD:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case WindowMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		from = now.AddDate(-1, 0, 0)
	}
	return from, now
}
