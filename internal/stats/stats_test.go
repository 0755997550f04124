package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/visit-service/internal/domain"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tt, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return tt
}

func mustRange(t *testing.T, from, to string) Range {
	t.Helper()
	r, err := ParseRange(from, to, time.UTC)
	require.NoError(t, err)
	return r
}

func ev(t *testing.T, id string, kind domain.Kind, gender domain.Gender, age domain.AgeBracket, city, date string) domain.Event {
	return domain.Event{ID: id, Kind: kind, Gender: gender, Age: age, CityID: city, Date: mustTime(t, date)}
}

var testCities = []domain.City{
	{ID: "c1", PostCode: "12130", Name: "Pierrefiche"},
	{ID: "c2", PostCode: "12140", Name: "Le Fel"},
	{ID: "c3", PostCode: "12140", Name: "Campouriez"},
	{ID: "c4", PostCode: "12150", Name: "Lapanouse"},
	{ID: "other", Name: "Autre"},
}

func fixture(t *testing.T) []domain.Event {
	return []domain.Event{
		ev(t, "e1", domain.KindPhone, domain.GenderMale, domain.Age25To34, "c1", "2021-01-01T00:00:00Z"),
		ev(t, "e2", domain.KindMail, domain.GenderFemale, domain.Age0To14, "c2", "2021-01-01T23:59:59Z"),
		ev(t, "e3", domain.KindInPerson, domain.GenderFemale, domain.Age75AndOver, "c2", "2021-01-02T00:00:00Z"),
		ev(t, "e4", domain.KindInPerson, domain.GenderOther, domain.Age45To54, "other", "2021-01-02T10:00:00Z"),
		ev(t, "e5", domain.KindInPerson, domain.GenderMale, domain.Age45To54, "ghost", "2021-01-03T10:00:00Z"),
		ev(t, "e6", domain.KindPhone, domain.GenderFemale, domain.Age15To24, "c3", "2020-12-31T23:59:59Z"),
	}
}

func TestRange(t *testing.T) {
	t.Run("single_day_is_inclusive_to_next_midnight", func(t *testing.T) {
		r := mustRange(t, "2021-01-01", "2021-01-01")
		assert.True(t, r.Contains(mustTime(t, "2021-01-01T00:00:00Z")))
		assert.True(t, r.Contains(mustTime(t, "2021-01-01T23:59:59Z")))
		assert.True(t, r.Contains(mustTime(t, "2021-01-02T00:00:00Z")))
		assert.False(t, r.Contains(mustTime(t, "2021-01-02T00:00:01Z")))
		assert.False(t, r.Contains(mustTime(t, "2020-12-31T23:59:59Z")))
	})

	t.Run("reversed_range_is_empty", func(t *testing.T) {
		r := mustRange(t, "2021-01-05", "2021-01-01")
		assert.True(t, r.Empty())
		assert.False(t, r.Contains(mustTime(t, "2021-01-03T12:00:00Z")))
		assert.Empty(t, Filter(fixture(t), r))
	})

	t.Run("parse_errors_are_validation_errors", func(t *testing.T) {
		_, err := ParseRange("2021/01/01", "2021-01-02", time.UTC)
		var ae *domain.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeValidation, ae.Code)
		assert.Equal(t, "must be YYYY-MM-DD", ae.Meta["from"])
	})

	t.Run("days_are_read_in_the_range_location", func(t *testing.T) {
		paris, err := time.LoadLocation("Europe/Paris")
		if err != nil {
			t.Skip("tzdata unavailable")
		}
		r, err := ParseRange("2021-01-02", "2021-01-02", paris)
		require.NoError(t, err)
		// 23:30 UTC on Jan 1 is 00:30 on Jan 2 in Paris
		assert.True(t, r.Contains(mustTime(t, "2021-01-01T23:30:00Z")))
		assert.Equal(t, map[string]int{"2021-01-02": 1}, CountPerDay([]domain.Event{
			ev(t, "x", domain.KindMail, domain.GenderMale, domain.Age0To14, "c1", "2021-01-01T23:30:00Z"),
		}, r))
	})
}

func TestPeriod(t *testing.T) {
	t.Run("year", func(t *testing.T) {
		r, err := YearPeriod(2021).Range(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2021-01-01", r.FromString())
		assert.Equal(t, "2021-12-31", r.ToString())
	})

	t.Run("month_handles_leap_february", func(t *testing.T) {
		r, err := MonthPeriod(2020, time.February).Range(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2020-02-01", r.FromString())
		assert.Equal(t, "2020-02-29", r.ToString())

		r, err = MonthPeriod(2021, time.December).Range(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2021-12-31", r.ToString())
	})

	t.Run("last_seven_days", func(t *testing.T) {
		anchor := time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC)
		r, err := LastDaysPeriod(7, anchor).Range(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2021-06-24", r.FromString())
		assert.Equal(t, "2021-06-30", r.ToString())
	})

	t.Run("last_one_day_is_the_anchor", func(t *testing.T) {
		anchor := time.Date(2021, 6, 30, 15, 0, 0, 0, time.UTC)
		r, err := LastDaysPeriod(1, anchor).Range(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2021-06-30", r.FromString())
		assert.Equal(t, "2021-06-30", r.ToString())
	})

	t.Run("invalid_periods", func(t *testing.T) {
		_, err := LastDaysPeriod(0, time.Now()).Range(time.UTC)
		assert.Error(t, err)
		_, err = LastDaysPeriod(3, time.Time{}).Range(time.UTC)
		assert.Error(t, err)
		_, err = MonthPeriod(2021, 13).Range(time.UTC)
		assert.Error(t, err)
		_, err = Period{Kind: "week"}.Range(time.UTC)
		assert.Error(t, err)
	})
}

func TestCountPerDay(t *testing.T) {
	r := mustRange(t, "2021-01-01", "2021-01-03")
	got := CountPerDay(fixture(t), r)
	assert.Equal(t, map[string]int{
		"2021-01-01": 2,
		"2021-01-02": 2,
		"2021-01-03": 1,
	}, got)

	t.Run("sparse", func(t *testing.T) {
		got := CountPerDay(fixture(t), mustRange(t, "2021-01-03", "2021-01-10"))
		assert.Equal(t, map[string]int{"2021-01-03": 1}, got)
	})

	t.Run("series_is_ordered", func(t *testing.T) {
		series := DaySeries(got)
		require.Len(t, series, 3)
		assert.Equal(t, DayCount{Day: "2021-01-01", Value: 2}, series[0])
		assert.Equal(t, "2021-01-03", series[2].Day)
	})
}

func TestFixedShapeCounts(t *testing.T) {
	events := fixture(t)
	r := mustRange(t, "2021-01-01", "2021-01-02")
	inRange := len(Filter(events, r))
	// Jan 1 00:00 .. Jan 3 00:00 inclusive: e1, e2, e3, e4
	require.Equal(t, 4, inRange)

	t.Run("kind", func(t *testing.T) {
		got := CountByKind(events, r)
		assert.Equal(t, map[domain.Kind]int{domain.KindInPerson: 2, domain.KindPhone: 1, domain.KindMail: 1}, got)
		assert.Equal(t, inRange, Total(got))
	})

	t.Run("gender", func(t *testing.T) {
		got := CountByGender(events, r)
		assert.Equal(t, map[domain.Gender]int{domain.GenderFemale: 2, domain.GenderMale: 1, domain.GenderOther: 1}, got)
		assert.Equal(t, inRange, Total(got))
	})

	t.Run("age_has_all_brackets", func(t *testing.T) {
		got := CountByAge(events, r)
		assert.Len(t, got, 8)
		assert.Equal(t, 1, got[domain.Age25To34])
		assert.Equal(t, 0, got[domain.Age65To74])
		assert.Equal(t, inRange, Total(got))
	})

	t.Run("postcode_with_unknown_bucket", func(t *testing.T) {
		r3 := mustRange(t, "2021-01-01", "2021-01-03")
		got := CountByPostCode(events, testCities, r3)
		assert.Equal(t, map[string]int{
			"12130":         1,
			"12140":         2,
			"12150":         0,
			UnknownPostCode: 2,
		}, got)
		assert.Equal(t, len(Filter(events, r3)), Total(got))
	})

	t.Run("empty_range_is_zero_filled", func(t *testing.T) {
		rev := mustRange(t, "2021-01-03", "2021-01-01")
		assert.Equal(t, 0, Total(CountByKind(events, rev)))
		assert.Len(t, CountByKind(events, rev), 3)
		assert.Len(t, CountByGender(events, rev), 3)
		assert.Len(t, CountByAge(events, rev), 8)
		assert.Len(t, CountByPostCode(events, testCities, rev), 4)
		assert.Empty(t, CountPerDay(events, rev))
	})
}

func TestTopCitiesByCount(t *testing.T) {
	r := mustRange(t, "2020-12-01", "2021-01-31")

	t.Run("orders_by_count_then_id_and_skips_unresolved", func(t *testing.T) {
		got := TopCitiesByCount(fixture(t), testCities, r, 0)
		require.Len(t, got, 4)
		assert.Equal(t, CityCount{CityID: "c2", Name: "Le Fel", Count: 2}, got[0])
		assert.Equal(t, []string{"c1", "c3", "other"}, []string{got[1].CityID, got[2].CityID, got[3].CityID})
		for _, c := range got {
			assert.NotEqual(t, "ghost", c.CityID)
			assert.Greater(t, c.Count, 0)
		}
	})

	t.Run("respects_limit", func(t *testing.T) {
		got := TopCitiesByCount(fixture(t), testCities, r, 2)
		assert.Len(t, got, 2)
	})

	t.Run("at_most_five_by_default", func(t *testing.T) {
		cities := make([]domain.City, 0, 8)
		events := make([]domain.Event, 0, 8)
		for i := 0; i < 8; i++ {
			id := string(rune('a' + i))
			cities = append(cities, domain.City{ID: id, Name: id})
			events = append(events, ev(t, id, domain.KindMail, domain.GenderMale, domain.Age0To14, id, "2021-01-10T10:00:00Z"))
		}
		got := TopCitiesByCount(events, cities, r, 0)
		require.Len(t, got, DefaultTopLimit)
		assert.Equal(t, "a", got[0].CityID)
		assert.Equal(t, "e", got[4].CityID)
	})
}

func TestShares(t *testing.T) {
	got := Shares(map[domain.Kind]int{domain.KindInPerson: 2, domain.KindPhone: 1, domain.KindMail: 0})
	assert.True(t, decimal.RequireFromString("66.67").Equal(got[domain.KindInPerson]))
	assert.True(t, decimal.RequireFromString("33.33").Equal(got[domain.KindPhone]))
	assert.True(t, decimal.Zero.Equal(got[domain.KindMail]))

	empty := Shares(map[string]int{"a": 0})
	assert.True(t, decimal.Zero.Equal(empty["a"]))
}
