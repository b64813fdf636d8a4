// Package reporting computes time-windowed sales figures: scalar totals,
// zero-filled graph series, the multi-window summary and product rankings.
// Every function here is a pure fold over immutable inputs; the service
// layer adds store access and caching on top.
package reporting

import (
	"errors"
	"fmt"
	"time"

	"github.com/dairyledger/dairyledger/internal/civil"
)

var (
	// ErrInvalidRange reports a window or range whose start is after its
	// end. Always a caller bug, never recovered.
	ErrInvalidRange = errors.New("window start is after end")
	// ErrOutOfWindow reports a sale handed to the bucketer that falls
	// outside the window; callers must pre-filter by range.
	ErrOutOfWindow = errors.New("sale outside window range")
)

// Kind identifies a reporting window granularity.
type Kind string

const (
	KindDay   Kind = "day"
	KindWeek  Kind = "week"
	KindMonth Kind = "month"
	KindYear  Kind = "year"
)

// Window is one inclusive reporting period derived from an anchor date.
// It has no lifecycle of its own; it is a pure function of (anchor, kind).
type Window struct {
	Kind   Kind       `json:"kind"`
	Anchor civil.Date `json:"anchor"`
	Start  civil.Date `json:"start"`
	End    civil.Date `json:"end"`
}

// Resolve computes the window of the given kind containing the anchor.
// Weeks run Sunday through Saturday as a fixed policy.
func Resolve(anchor civil.Date, kind Kind) (Window, error) {
	w := Window{Kind: kind, Anchor: anchor}
	switch kind {
	case KindDay:
		w.Start, w.End = anchor, anchor
	case KindWeek:
		w.Start = anchor.AddDays(-int(anchor.Weekday()))
		w.End = w.Start.AddDays(6)
	case KindMonth:
		w.Start = civil.Date{Year: anchor.Year, Month: anchor.Month, Day: 1}
		w.End = civil.Date{Year: anchor.Year, Month: anchor.Month, Day: civil.DaysInMonth(anchor.Year, anchor.Month)}
	case KindYear:
		w.Start = civil.Date{Year: anchor.Year, Month: time.January, Day: 1}
		w.End = civil.Date{Year: anchor.Year, Month: time.December, Day: 31}
	default:
		return Window{}, fmt.Errorf("reporting: unknown window kind %q", kind)
	}
	return w, nil
}

// Shift re-anchors the window by whole periods of its own kind. Month
// shifts clamp the day-of-month, so the window after January anchored on
// the 31st starts on Feb 1 rather than an invalid date.
func Shift(w Window, steps int) (Window, error) {
	var anchor civil.Date
	switch w.Kind {
	case KindDay:
		anchor = w.Anchor.AddDays(steps)
	case KindWeek:
		anchor = w.Anchor.AddDays(7 * steps)
	case KindMonth:
		anchor = w.Anchor.AddMonths(steps)
	case KindYear:
		anchor = w.Anchor.AddYears(steps)
	default:
		return Window{}, fmt.Errorf("reporting: unknown window kind %q", w.Kind)
	}
	return Resolve(anchor, w.Kind)
}

// Contains reports whether the date falls inside the window, inclusive.
func (w Window) Contains(d civil.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}
