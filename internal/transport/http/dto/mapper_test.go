package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/visit-service/internal/application/visit"
	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/stats"
	"github.com/baechuer/visit-service/internal/wizard"
)

func TestToEventResp(t *testing.T) {
	e := domain.Event{
		ID: "e1", Kind: domain.KindPhone, Gender: domain.GenderOther, Age: domain.Age75AndOver,
		CityID: "c1", Date: time.Date(2021, 6, 29, 8, 5, 0, 0, time.UTC),
	}

	t.Run("resolved_city", func(t *testing.T) {
		got := ToEventResp(e, domain.City{ID: "c1", PostCode: "12140", Name: "Le Fel"}, time.UTC)
		assert.Equal(t, "Téléphone", got.KindLabel)
		assert.Equal(t, "Autre", got.GenderLabel)
		assert.Equal(t, "75 ans et plus", got.AgeLabel)
		assert.Equal(t, "Le Fel", got.CityName)
		assert.Equal(t, "12140", got.PostCode)
		assert.Equal(t, "2021-06-29 08:05", got.DisplayDate)
	})

	t.Run("unknown_city_reads_question_mark", func(t *testing.T) {
		got := ToEventResp(e, domain.City{}, time.UTC)
		assert.Equal(t, "?", got.CityName)
		assert.Equal(t, "c1", got.CityID)
	})
}

func TestCreateEventReq_ToCandidate(t *testing.T) {
	now := time.Date(2021, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("defaults_date_to_now", func(t *testing.T) {
		c := CreateEventReq{Kind: "mail", Gender: "male", Age: "0-14", City: "c1"}.ToCandidate(now)
		require.True(t, c.Complete())
		assert.Equal(t, now, *c.Date)
	})

	t.Run("keeps_given_date", func(t *testing.T) {
		d := now.Add(-time.Hour)
		c := CreateEventReq{Kind: "mail", Gender: "male", Age: "0-14", City: "c1", Date: &d}.ToCandidate(now)
		assert.Equal(t, d, *c.Date)
	})
}

func TestToCountResp(t *testing.T) {
	t.Run("shares_and_labels", func(t *testing.T) {
		got := ToCountResp(map[domain.Kind]int{
			domain.KindInPerson: 1, domain.KindPhone: 1, domain.KindMail: 1,
		}, domain.Kind.Label)

		assert.Equal(t, 3, got.Total)
		assert.True(t, decimal.RequireFromString("33.33").Equal(got.Shares["phone"]))
		assert.Equal(t, "Passage", got.Labels["in-person"])
	})

	t.Run("zero_total_has_zero_shares", func(t *testing.T) {
		got := ToCountResp(map[string]int{"12140": 0, stats.UnknownPostCode: 0}, nil)
		assert.Equal(t, 0, got.Total)
		assert.True(t, got.Shares["12140"].IsZero())
		assert.Nil(t, got.Labels)
	})

	t.Run("in_range_stamps_bounds", func(t *testing.T) {
		r, err := stats.ParseRange("2021-01-01", "2021-01-31", time.UTC)
		require.NoError(t, err)
		got := ToCountResp(map[string]int{}, nil).InRange(r)
		assert.Equal(t, "2021-01-01", got.From)
		assert.Equal(t, "2021-01-31", got.To)
	})
}

func TestToDashboardResp(t *testing.T) {
	d := visit.Dashboard{
		From: "2021-06-01", To: "2021-06-30", Total: 4,
		Kind:      map[domain.Kind]int{domain.KindPhone: 4},
		Gender:    map[domain.Gender]int{domain.GenderFemale: 4},
		Age:       map[domain.AgeBracket]int{domain.Age0To14: 4},
		PostCode:  map[string]int{"12140": 3, stats.UnknownPostCode: 1},
		TopCities: []stats.CityCount{{CityID: "c1", Name: "Le Fel", Count: 3}},
	}

	got := ToDashboardResp(d)
	assert.NotNil(t, got.PerDay)
	assert.Empty(t, got.Kind.From)
	require.Len(t, got.TopCities, 1)
	assert.True(t, decimal.NewFromInt(75).Equal(got.TopCities[0].Share))

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"per_day":[]`)
}

func TestToWizardResp(t *testing.T) {
	date := time.Date(2021, 6, 29, 14, 30, 0, 0, time.UTC)
	kind := domain.KindInPerson
	gender := domain.GenderFemale
	s := wizard.Session{
		ID:     "w1",
		Fields: wizard.Fields{Step: wizard.StepAge, Kind: &kind, Gender: &gender, Date: &date},
	}

	got := ToWizardResp(s, nil, time.UTC)
	assert.Equal(t, "age", got.Step)
	require.NotNil(t, got.Kind)
	assert.Equal(t, "in-person", *got.Kind)
	assert.Nil(t, got.Age)
	assert.Equal(t, []string{"2021-06-29 14:30", "Passage", "Femme"}, got.Summary)
	assert.Nil(t, got.Event)
}
