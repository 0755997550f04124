package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/baechuer/visit-service/internal/application/visit"
	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/stats"
	"github.com/baechuer/visit-service/internal/wizard"
)

// ToEventResp renders e with the city it points at. A zero city means the
// id did not resolve.
func ToEventResp(e domain.Event, c domain.City, loc *time.Location) EventResp {
	name := c.Name
	if c.ID == "" {
		name = domain.UnknownCityName
	}
	return EventResp{
		ID:          e.ID,
		Kind:        string(e.Kind),
		KindLabel:   e.Kind.Label(),
		Gender:      string(e.Gender),
		GenderLabel: e.Gender.Label(),
		Age:         string(e.Age),
		AgeLabel:    e.Age.Label(),
		CityID:      e.CityID,
		CityName:    name,
		PostCode:    c.PostCode,
		Date:        e.Date,
		DisplayDate: domain.FormatDisplayDate(e.Date, loc),
	}
}

func ToCityResp(c domain.City) CityResp {
	return CityResp{ID: c.ID, PostCode: c.PostCode, Name: c.Name}
}

func ToCityResps(cs []domain.City) []CityResp {
	out := make([]CityResp, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCityResp(c))
	}
	return out
}

func (r CityReq) ToDomain() domain.City {
	return domain.City{ID: r.ID, PostCode: r.PostCode, Name: r.Name}
}

func (r CreateEventReq) ToCandidate(now time.Time) domain.Candidate {
	date := now
	if r.Date != nil {
		date = *r.Date
	}
	return domain.NewCandidate(domain.Kind(r.Kind), domain.Gender(r.Gender), domain.AgeBracket(r.Age), r.City, date)
}

func (r EventReq) ToDomain() domain.Event {
	e := domain.Event{
		ID:     r.ID,
		Kind:   domain.Kind(r.Kind),
		Gender: domain.Gender(r.Gender),
		Age:    domain.AgeBracket(r.Age),
		CityID: r.City,
	}
	if r.Date != nil {
		e.Date = *r.Date
	}
	return e
}

// ToCountResp converts a typed breakdown to its wire form. label may be nil.
func ToCountResp[K ~string](counts map[K]int, label func(K) string) CountResp[string] {
	out := CountResp[string]{
		Total:  stats.Total(counts),
		Counts: make(map[string]int, len(counts)),
	}
	for k, v := range counts {
		out.Counts[string(k)] = v
	}
	out.Shares = stats.Shares(out.Counts)
	if label != nil {
		out.Labels = make(map[string]string, len(counts))
		for k := range counts {
			out.Labels[string(k)] = label(k)
		}
	}
	return out
}

// InRange stamps the range on a standalone breakdown.
func (c CountResp[K]) InRange(r stats.Range) CountResp[K] {
	c.From, c.To = r.FromString(), r.ToString()
	return c
}

func ToPerDayResp(r stats.Range, days []stats.DayCount) PerDayResp {
	total := 0
	for _, d := range days {
		total += d.Value
	}
	if days == nil {
		days = []stats.DayCount{}
	}
	return PerDayResp{From: r.FromString(), To: r.ToString(), Total: total, Days: days}
}

// ToTopCityResps shares are taken against total, the number of events in range.
func ToTopCityResps(top []stats.CityCount, total int) []TopCityResp {
	out := make([]TopCityResp, 0, len(top))
	for _, c := range top {
		share := decimal.Zero
		if total > 0 {
			share = decimal.NewFromInt(int64(c.Count)).Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(int64(total))).Round(2)
		}
		out = append(out, TopCityResp{CityID: c.CityID, Name: c.Name, Count: c.Count, Share: share})
	}
	return out
}

func ToDashboardResp(d visit.Dashboard) DashboardResp {
	perDay := d.PerDay
	if perDay == nil {
		perDay = []stats.DayCount{}
	}
	return DashboardResp{
		From:      d.From,
		To:        d.To,
		Total:     d.Total,
		PerDay:    perDay,
		Kind:      ToCountResp(d.Kind, domain.Kind.Label),
		Gender:    ToCountResp(d.Gender, domain.Gender.Label),
		Age:       ToCountResp(d.Age, domain.AgeBracket.Label),
		PostCode:  ToCountResp(d.PostCode, nil),
		TopCities: ToTopCityResps(d.TopCities, d.Total),
	}
}

// ToWizardResp renders a session. ev is the committed event, if any.
func ToWizardResp(s wizard.Session, ev *EventResp, loc *time.Location) WizardResp {
	f := s.Fields
	out := WizardResp{
		ID:        s.ID,
		Step:      string(f.Step),
		Date:      f.Date,
		Summary:   []string{},
		ExpiresAt: s.ExpiresAt,
		Event:     ev,
	}
	if f.Date != nil {
		out.Summary = append(out.Summary, domain.FormatDisplayDate(*f.Date, loc))
	}
	if f.Kind != nil {
		k := string(*f.Kind)
		out.Kind = &k
		out.Summary = append(out.Summary, f.Kind.Label())
	}
	if f.Gender != nil {
		g := string(*f.Gender)
		out.Gender = &g
		out.Summary = append(out.Summary, f.Gender.Label())
	}
	if f.Age != nil {
		a := string(*f.Age)
		out.Age = &a
		out.Summary = append(out.Summary, f.Age.Label())
	}
	return out
}
