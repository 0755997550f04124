package stats

import (
	"time"

	"github.com/baechuer/visit-service/internal/domain"
)

type PeriodKind string

const (
	PeriodYear     PeriodKind = "year"
	PeriodMonth    PeriodKind = "month"
	PeriodLastDays PeriodKind = "last-days"
)

func (k PeriodKind) Valid() bool {
	return k == PeriodYear || k == PeriodMonth || k == PeriodLastDays
}

// Period names a window of days. Year and Month are used by the calendar
// periods, Days and Anchor by last-days.
type Period struct {
	Kind   PeriodKind
	Year   int
	Month  time.Month
	Days   int
	Anchor time.Time
}

func YearPeriod(year int) Period { return Period{Kind: PeriodYear, Year: year} }

func MonthPeriod(year int, month time.Month) Period {
	return Period{Kind: PeriodMonth, Year: year, Month: month}
}

func LastDaysPeriod(n int, anchor time.Time) Period {
	return Period{Kind: PeriodLastDays, Days: n, Anchor: anchor}
}

// Range resolves p to calendar days in loc.
func (p Period) Range(loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.UTC
	}
	switch p.Kind {
	case PeriodYear:
		from := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, loc)
		to := time.Date(p.Year, time.December, 31, 0, 0, 0, 0, loc)
		return Range{From: from, To: to}, nil
	case PeriodMonth:
		if p.Month < time.January || p.Month > time.December {
			return Range{}, domain.ErrValidationMeta("invalid period", map[string]string{"month": "must be 1..12"})
		}
		from := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
		// day 0 of the next month is the last day of this one
		to := time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, loc)
		return Range{From: from, To: to}, nil
	case PeriodLastDays:
		if p.Days < 1 {
			return Range{}, domain.ErrValidationMeta("invalid period", map[string]string{"days": "must be >= 1"})
		}
		if p.Anchor.IsZero() {
			return Range{}, domain.ErrValidationMeta("invalid period", map[string]string{"anchor": "required"})
		}
		to := Day(p.Anchor, loc)
		return Range{From: to.AddDate(0, 0, -(p.Days - 1)), To: to}, nil
	default:
		return Range{}, domain.ErrValidationMeta("invalid period", map[string]string{
			"period": "must be one of: year, month, last-days",
		})
	}
}
