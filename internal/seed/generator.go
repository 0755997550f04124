// Package seed produces the demo city directory and a plausible history of
// visit events, and loads them into the stores at startup.
package seed

import (
	"context"
	"math/rand"
	"time"

	"github.com/baechuer/visit-service/internal/domain"
)

var (
	kindWeights   = []int{65, 15, 20}
	kindChoices   = []domain.Kind{domain.KindInPerson, domain.KindMail, domain.KindPhone}
	genderWeights = []int{49, 50, 1}
	genderChoices = []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther}
)

// Generator is deterministic for a given seed. Not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
	loc *time.Location
}

// NewGenerator seeds from the clock when seed is 0. Days are laid out in loc.
func NewGenerator(seed int64, loc *time.Location) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), loc: loc}
}

func (g *Generator) Cities() []domain.City { return DemoCities(g.rng) }

// ListCities serves Cities as a CitySource, so a fixed seed also fixes the
// city ids.
func (g *Generator) ListCities(ctx context.Context) ([]domain.City, error) {
	return g.Cities(), nil
}

// Events fills every day from January 1 of the previous year through now,
// Sundays excepted. Summer and Wednesdays are quieter. Visits fall between
// 8h and 18h and never after now.
func (g *Generator) Events(cityIDs []string, now time.Time) []domain.Event {
	events := make([]domain.Event, 0)
	if len(cityIDs) == 0 {
		return events
	}
	now = now.In(g.loc)

	ageWeights := make([]int, len(domain.AgeBrackets))
	for i := range ageWeights {
		ageWeights[i] = g.rng.Intn(16) + 5
	}

	dt := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, g.loc)
	for dt.Weekday() == time.Sunday {
		dt = dt.AddDate(0, 0, 1)
	}
	for !dt.After(now) {
		adjust := 20
		if dt.Month() == time.July || dt.Month() == time.August {
			adjust -= 20
		}
		if dt.Weekday() == time.Wednesday {
			adjust -= 10
		}
		nb := g.rng.Intn(25) + adjust
		for i := 0; i < nb; i++ {
			hour := g.rng.Intn(11) + 8
			minute := g.rng.Intn(59)
			second := g.rng.Intn(59)
			d := time.Date(dt.Year(), dt.Month(), dt.Day(), hour, minute, second, 0, g.loc)
			if d.After(now) {
				continue
			}
			events = append(events, domain.Event{
				ID:     newID(g.rng),
				Kind:   kindChoices[g.weighted(kindWeights)],
				Gender: genderChoices[g.weighted(genderWeights)],
				Age:    domain.AgeBrackets[g.weighted(ageWeights)],
				CityID: cityIDs[g.rng.Intn(len(cityIDs))],
				Date:   d.UTC(),
			})
		}
		dt = dt.AddDate(0, 0, 1)
		if dt.Weekday() == time.Sunday {
			dt = dt.AddDate(0, 0, 1)
		}
	}
	return events
}

// weighted picks an index with probability proportional to its weight.
func (g *Generator) weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := g.rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}
