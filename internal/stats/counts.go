package stats

import (
	"sort"

	"github.com/baechuer/visit-service/internal/domain"
)

// UnknownPostCode buckets events whose city is unresolved or has no postcode.
const UnknownPostCode = "unknown"

// DayCount is one heatmap cell.
type DayCount struct {
	Day   string `json:"day"`
	Value int    `json:"value"`
}

// CountPerDay groups events in r by calendar day. Days without events are absent.
func CountPerDay(events []domain.Event, r Range) map[string]int {
	out := map[string]int{}
	if r.Empty() {
		return out
	}
	loc := r.Location()
	for _, e := range events {
		if r.Contains(e.Date) {
			out[e.Date.In(loc).Format(DateLayout)]++
		}
	}
	return out
}

// DaySeries flattens a per-day map into points ordered by day.
func DaySeries(perDay map[string]int) []DayCount {
	out := make([]DayCount, 0, len(perDay))
	for d, v := range perDay {
		out = append(out, DayCount{Day: d, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func CountByKind(events []domain.Event, r Range) map[domain.Kind]int {
	out := make(map[domain.Kind]int, len(domain.Kinds))
	for _, k := range domain.Kinds {
		out[k] = 0
	}
	for _, e := range Filter(events, r) {
		if _, ok := out[e.Kind]; ok {
			out[e.Kind]++
		}
	}
	return out
}

func CountByGender(events []domain.Event, r Range) map[domain.Gender]int {
	out := make(map[domain.Gender]int, len(domain.Genders))
	for _, g := range domain.Genders {
		out[g] = 0
	}
	for _, e := range Filter(events, r) {
		if _, ok := out[e.Gender]; ok {
			out[e.Gender]++
		}
	}
	return out
}

func CountByAge(events []domain.Event, r Range) map[domain.AgeBracket]int {
	out := make(map[domain.AgeBracket]int, len(domain.AgeBrackets))
	for _, a := range domain.AgeBrackets {
		out[a] = 0
	}
	for _, e := range Filter(events, r) {
		if _, ok := out[e.Age]; ok {
			out[e.Age]++
		}
	}
	return out
}

// CountByPostCode resolves each event's city through cities. Every known
// postcode and UnknownPostCode are always present.
func CountByPostCode(events []domain.Event, cities []domain.City, r Range) map[string]int {
	byID := make(map[string]domain.City, len(cities))
	out := map[string]int{UnknownPostCode: 0}
	for _, c := range cities {
		byID[c.ID] = c
		if c.HasPostCode() {
			out[c.PostCode] = 0
		}
	}
	for _, e := range Filter(events, r) {
		c, ok := byID[e.CityID]
		if !ok || !c.HasPostCode() {
			out[UnknownPostCode]++
			continue
		}
		out[c.PostCode]++
	}
	return out
}

// Total sums the values of a count map.
func Total[K comparable](counts map[K]int) int {
	n := 0
	for _, v := range counts {
		n += v
	}
	return n
}
