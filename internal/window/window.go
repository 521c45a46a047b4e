// Package window filters entity sequences by calendar windows relative to an
// injected reference date. The week is pinned to start on Sunday; window
// boundaries are closed and comparisons happen at day granularity.
package window

import (
	"lifetrack/internal/dates"
	"lifetrack/internal/errors"
)

// Window selects one of the four calendar filters.
type Window int

const (
	All Window = iota
	Today
	ThisWeek
	ThisMonth
)

// String returns the CLI-facing name of the window.
func (w Window) String() string {
	switch w {
	case All:
		return "all"
	case Today:
		return "today"
	case ThisWeek:
		return "week"
	case ThisMonth:
		return "month"
	default:
		return "unknown"
	}
}

// Parse maps a filter name to a Window. Both the English names and the
// original app's Indonesian filter values are accepted.
func Parse(s string) (Window, error) {
	switch s {
	case "all", "semua", "":
		return All, nil
	case "today", "hari-ini":
		return Today, nil
	case "week", "minggu-ini":
		return ThisWeek, nil
	case "month", "bulan-ini":
		return ThisMonth, nil
	default:
		return All, errors.NewInvalidInputError("filter", s, "want one of all, today, week, month")
	}
}

// Range returns the closed date interval for the window relative to now.
// ok is false for All, which is unbounded.
func (w Window) Range(now dates.Date) (r dates.Range, ok bool) {
	switch w {
	case Today:
		return dates.Range{From: now, To: now}, true
	case ThisWeek:
		// Sunday-anchored, matching the original app's weekday arithmetic.
		start := now.Add(-int(now.Weekday()))
		return dates.Range{From: start, To: start.Add(6)}, true
	case ThisMonth:
		first := dates.New(now.Year(), now.Month(), 1)
		last := dates.New(now.Year(), now.Month()+1, 0)
		return dates.Range{From: first, To: last}, true
	default:
		return dates.Range{}, false
	}
}

// Contains reports whether the date falls inside the window relative to now.
func (w Window) Contains(d dates.Date, now dates.Date) bool {
	r, ok := w.Range(now)
	if !ok {
		return true
	}
	return r.Contains(d)
}

// Filter returns the subsequence of entities whose reference date falls
// inside the window, preserving relative order. The input is never mutated;
// the result is always a fresh slice.
func Filter[E any](entities []E, ref func(E) dates.Date, w Window, now dates.Date) []E {
	out := make([]E, 0, len(entities))
	for _, e := range entities {
		if w.Contains(ref(e), now) {
			out = append(out, e)
		}
	}
	return out
}
