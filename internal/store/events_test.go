package store

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/stats"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tt, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return tt
}

func candidateAt(t *testing.T, date string) domain.Candidate {
	return domain.NewCandidate(domain.KindPhone, domain.GenderMale, domain.Age25To34, "c1", mustTime(t, date))
}

func assertDescending(t *testing.T, events []domain.Event) {
	t.Helper()
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Date.After(events[i-1].Date), "index %d out of order", i)
	}
}

func TestEventStore_Add(t *testing.T) {
	t.Run("assigns_fresh_ids_and_keeps_newest_first", func(t *testing.T) {
		s := NewEventStore()
		for _, d := range []string{"2021-01-02T10:00:00Z", "2021-03-01T10:00:00Z", "2021-02-01T10:00:00Z"} {
			e, ok := s.Add(candidateAt(t, d))
			require.True(t, ok)
			assert.NotEmpty(t, e.ID)
		}
		all := s.ListAll()
		require.Len(t, all, 3)
		assertDescending(t, all)
		assert.Equal(t, mustTime(t, "2021-03-01T10:00:00Z"), all[0].Date)
		assert.NotEqual(t, all[0].ID, all[1].ID)
	})

	t.Run("ties_keep_insertion_order", func(t *testing.T) {
		s := NewEventStore()
		first, _ := s.Add(candidateAt(t, "2021-01-01T10:00:00Z"))
		second, _ := s.Add(candidateAt(t, "2021-01-01T10:00:00Z"))
		all := s.ListAll()
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)
	})

	t.Run("incomplete_candidate_is_a_noop", func(t *testing.T) {
		s := NewEventStore()
		before := s.Version()

		c := candidateAt(t, "2021-01-01T10:00:00Z")
		c.CityID = nil
		_, ok := s.Add(c)
		assert.False(t, ok)

		_, ok = s.Add(domain.Candidate{})
		assert.False(t, ok)

		assert.Equal(t, 0, s.Len())
		assert.Equal(t, before, s.Version())
	})
}

func TestEventStore_ReplaceAll(t *testing.T) {
	s := NewEventStore()
	s.Add(candidateAt(t, "2022-01-01T10:00:00Z"))

	s.ReplaceAll([]domain.Event{
		{ID: "a", Kind: domain.KindMail, Gender: domain.GenderFemale, Age: domain.Age0To14, CityID: "c1", Date: mustTime(t, "2021-01-01T09:00:00Z")},
		{ID: "b", Kind: domain.KindMail, Gender: domain.GenderFemale, Age: domain.Age0To14, CityID: "c1", Date: mustTime(t, "2021-01-03T09:00:00Z")},
		{Kind: domain.KindMail, Gender: domain.GenderFemale, Age: domain.Age0To14, CityID: "c1", Date: mustTime(t, "2021-01-02T09:00:00Z")},
	})

	all := s.ListAll()
	require.Len(t, all, 3)
	assertDescending(t, all)
	assert.Equal(t, "b", all[0].ID)
	assert.NotEmpty(t, all[1].ID)
	assert.Equal(t, "a", all[2].ID)

	got, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "a", got.ID)
	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestEventStore_ListRange(t *testing.T) {
	s := NewEventStore()
	for _, d := range []string{
		"2020-12-31T23:59:59Z",
		"2021-01-01T00:00:00Z",
		"2021-01-01T12:00:00Z",
		"2021-01-02T00:00:00Z",
		"2021-01-02T00:00:01Z",
	} {
		s.Add(candidateAt(t, d))
	}

	r, err := stats.ParseRange("2021-01-01", "2021-01-01", time.UTC)
	require.NoError(t, err)
	got := s.ListRange(r)
	require.Len(t, got, 3)
	assertDescending(t, got)
	assert.Equal(t, mustTime(t, "2021-01-02T00:00:00Z"), got[0].Date)
	assert.Equal(t, mustTime(t, "2021-01-01T00:00:00Z"), got[2].Date)

	rev, _ := stats.ParseRange("2021-01-02", "2021-01-01", time.UTC)
	assert.Empty(t, s.ListRange(rev))
}

func TestEventStore_ListSlice(t *testing.T) {
	s := NewEventStore()
	for i := 1; i <= 5; i++ {
		s.Add(candidateAt(t, fmt.Sprintf("2021-01-0%dT10:00:00Z", i)))
	}

	tests := []struct {
		name   string
		offset int
		count  int
		want   int
	}{
		{"first_page", 0, 2, 2},
		{"tail_is_clipped", 4, 10, 1},
		{"past_end", 9, 3, 0},
		{"negative_offset", -1, 2, 2},
		{"zero_count", 0, 0, 0},
		{"huge_count", 1, math.MaxInt, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, s.ListSlice(tt.offset, tt.count), tt.want)
		})
	}

	page := s.ListSlice(1, 2)
	assert.Equal(t, mustTime(t, "2021-01-04T10:00:00Z"), page[0].Date)
}

func TestEventStore_ConcurrentReaders(t *testing.T) {
	s := NewEventStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.ListAll()
				_ = s.Len()
			}
		}()
	}
	for i := 0; i < 50; i++ {
		s.Add(candidateAt(t, "2021-01-01T10:00:00Z"))
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
