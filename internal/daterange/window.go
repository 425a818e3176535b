// Package daterange computes inclusive date windows from a named preset
// or explicit bounds and filters transactions against them.
package daterange

import (
	"strings"
	"time"

	"kosh/internal/models"
)

// Range presets
const (
	RangeWeek        = "1w"
	RangeMonth       = "1m"
	RangeThreeMonths = "3m"
	RangeSixMonths   = "6m"
	RangeCustom      = "custom"
)

// Query is the raw range selection from a request. From and To are
// dd/mm/yyyy strings; both are optional.
type Query struct {
	Range string
	From  string
	To    string
}

// Empty reports whether no filtering was requested at all.
func (q Query) Empty() bool {
	return q.Range == "" && q.From == "" && q.To == ""
}

// Window is an inclusive [Start, End] date range. A zero Start matches
// every date.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the window.
func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Compute resolves a query into a concrete window anchored at now.
// End is the last instant of its day. Preset starts are the preset's
// span back from End, advanced one day and floored to midnight, so
// "last N months" includes End's own date.
func (q Query) Compute(now time.Time) Window {
	end := now
	if t := models.ParseDMY(q.To); !t.IsZero() {
		end = t
	}
	end = endOfDay(end)

	var start time.Time
	switch q.Range {
	case RangeWeek:
		start = startOfDay(end.AddDate(0, 0, -7).AddDate(0, 0, 1))
	case RangeMonth:
		start = startOfDay(end.AddDate(0, -1, 0).AddDate(0, 0, 1))
	case RangeThreeMonths:
		start = startOfDay(end.AddDate(0, -3, 0).AddDate(0, 0, 1))
	case RangeSixMonths:
		start = startOfDay(end.AddDate(0, -6, 0).AddDate(0, 0, 1))
	case RangeCustom:
		if t := models.ParseDMY(q.From); !t.IsZero() {
			start = startOfDay(t)
		}
	}
	return Window{Start: start, End: end}
}

// Filter keeps the transactions whose date falls inside the window.
// Records with an unparsable date carry the zero time and only match
// windows with a zero Start.
func Filter(list []models.Transaction, w Window) []models.Transaction {
	out := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		if w.Contains(models.ParseDMY(t.Date)) {
			out = append(out, t)
		}
	}
	return out
}

// Label renders the query as a filename-safe description of the
// selection.
func (q Query) Label() string {
	switch q.Range {
	case RangeWeek:
		return "1_week"
	case RangeMonth:
		return "1_month"
	case RangeThreeMonths:
		return "3_months"
	case RangeSixMonths:
		return "6_months"
	case RangeCustom:
		from, to := q.From, q.To
		if from == "" {
			from = "start"
		}
		if to == "" {
			to = "now"
		}
		return "custom_" + sanitize(from) + "_to_" + sanitize(to)
	}
	return "all"
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, "/", "-")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
