package stats

import (
	"sort"

	"github.com/baechuer/visit-service/internal/domain"
)

const DefaultTopLimit = 5

type CityCount struct {
	CityID string `json:"city_id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// TopCitiesByCount ranks resolved cities by event count, highest first.
// Equal counts are ordered by city id. limit <= 0 means DefaultTopLimit.
func TopCitiesByCount(events []domain.Event, cities []domain.City, r Range, limit int) []CityCount {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	byID := make(map[string]domain.City, len(cities))
	for _, c := range cities {
		byID[c.ID] = c
	}

	counts := map[string]int{}
	for _, e := range Filter(events, r) {
		if _, ok := byID[e.CityID]; ok {
			counts[e.CityID]++
		}
	}

	out := make([]CityCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, CityCount{CityID: id, Name: byID[id].Name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].CityID < out[j].CityID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
