package visit

import (
	"strings"
	"time"

	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/stats"
)

// RangeQuery selects days either by explicit From/To or by Period.
// Zero Year/Month/Anchor default to the current day in the service zone.
type RangeQuery struct {
	From string
	To   string

	Period string // year | month | last-days
	Year   int
	Month  int
	Days   int
	Anchor string // YYYY-MM-DD
}

func (q *RangeQuery) Normalize() {
	q.From = strings.TrimSpace(q.From)
	q.To = strings.TrimSpace(q.To)
	q.Period = strings.TrimSpace(q.Period)
	q.Anchor = strings.TrimSpace(q.Anchor)
}

// ResolveRange turns q into calendar days in the service zone.
func (s *Service) ResolveRange(q RangeQuery) (stats.Range, error) {
	q.Normalize()

	if q.Period == "" {
		if q.From == "" || q.To == "" {
			return stats.Range{}, domain.ErrValidationMeta("invalid query param", map[string]string{
				"range": "provide from and to, or period",
			})
		}
		return stats.ParseRange(q.From, q.To, s.loc)
	}
	if q.From != "" || q.To != "" {
		return stats.Range{}, domain.ErrValidationMeta("invalid query param", map[string]string{
			"range": "from/to and period are exclusive",
		})
	}

	today := s.Today()
	year := q.Year
	if year == 0 {
		year = today.Year()
	}

	var p stats.Period
	switch stats.PeriodKind(q.Period) {
	case stats.PeriodYear:
		p = stats.YearPeriod(year)
	case stats.PeriodMonth:
		month := q.Month
		if month == 0 {
			month = int(today.Month())
		}
		p = stats.MonthPeriod(year, time.Month(month))
	case stats.PeriodLastDays:
		anchor := today
		if q.Anchor != "" {
			a, err := time.ParseInLocation(stats.DateLayout, q.Anchor, s.loc)
			if err != nil {
				return stats.Range{}, domain.ErrValidationMeta("invalid query param", map[string]string{
					"anchor": "must be YYYY-MM-DD",
				})
			}
			anchor = a
		}
		p = stats.LastDaysPeriod(q.Days, anchor)
	default:
		p = stats.Period{Kind: stats.PeriodKind(q.Period)}
	}
	return p.Range(s.loc)
}
