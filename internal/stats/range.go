// Package stats derives aggregate views from a flat list of visit events.
// Every function is pure and rescans its input.
package stats

import (
	"time"

	"github.com/baechuer/visit-service/internal/domain"
)

const DateLayout = "2006-01-02"

// Range is an inclusive pair of calendar days. Both bounds are midnight in
// the same location, which is the zone the days are read in.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange truncates from and to to calendar days in loc.
func NewRange(from, to time.Time, loc *time.Location) Range {
	if loc == nil {
		loc = time.UTC
	}
	return Range{From: Day(from, loc), To: Day(to, loc)}
}

// ParseRange reads two "YYYY-MM-DD" strings as days in loc.
func ParseRange(from, to string, loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.UTC
	}
	f, err := time.ParseInLocation(DateLayout, from, loc)
	if err != nil {
		return Range{}, domain.ErrValidationMeta("invalid date", map[string]string{"from": "must be YYYY-MM-DD"})
	}
	t, err := time.ParseInLocation(DateLayout, to, loc)
	if err != nil {
		return Range{}, domain.ErrValidationMeta("invalid date", map[string]string{"to": "must be YYYY-MM-DD"})
	}
	return Range{From: f, To: t}, nil
}

// Day returns midnight of t's calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func (r Range) Location() *time.Location {
	if r.From.IsZero() {
		return time.UTC
	}
	return r.From.Location()
}

// Empty is true when To is before From.
func (r Range) Empty() bool { return r.To.Before(r.From) }

// Window returns the instants [From 00:00, To+1day 00:00].
func (r Range) Window() (time.Time, time.Time) {
	return r.From, r.To.AddDate(0, 0, 1)
}

// Contains compares inclusively at both ends of the window, so an event at
// exactly midnight after To is counted.
func (r Range) Contains(t time.Time) bool {
	if r.Empty() {
		return false
	}
	start, end := r.Window()
	return !t.Before(start) && !t.After(end)
}

func (r Range) FromString() string { return r.From.Format(DateLayout) }
func (r Range) ToString() string   { return r.To.Format(DateLayout) }

// Filter keeps the events inside r, preserving order.
func Filter(events []domain.Event, r Range) []domain.Event {
	out := make([]domain.Event, 0)
	if r.Empty() {
		return out
	}
	for _, e := range events {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}
