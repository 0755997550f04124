package seed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/visit-service/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type memTarget struct {
	mu     sync.Mutex
	cities []domain.City
	events []domain.Event
}

func (m *memTarget) ReplaceCities(ctx context.Context, cities []domain.City) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cities = cities
	return nil
}

func (m *memTarget) ReplaceEvents(ctx context.Context, events []domain.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = events
}

type failingSource struct{}

func (failingSource) ListCities(ctx context.Context) ([]domain.City, error) {
	return nil, errors.New("db down")
}

func TestDemoCities(t *testing.T) {
	cities := NewGenerator(1, time.UTC).Cities()
	require.Len(t, cities, 11)

	ids := map[string]bool{}
	withoutPostCode := 0
	for _, c := range cities {
		assert.NotEmpty(t, c.ID)
		assert.False(t, ids[c.ID], "duplicate id")
		ids[c.ID] = true
		if !c.HasPostCode() {
			withoutPostCode++
			assert.Equal(t, OtherCityName, c.Name)
		} else {
			assert.True(t, domain.ValidPostCode(c.PostCode))
		}
	}
	assert.Equal(t, 1, withoutPostCode)
}

func TestGenerator_Events(t *testing.T) {
	now := time.Date(2021, 3, 10, 12, 0, 0, 0, time.UTC)
	ids := []string{"c1", "c2", "c3"}

	events := NewGenerator(42, time.UTC).Events(ids, now)
	require.NotEmpty(t, events)

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, e := range events {
		assert.False(t, e.Date.After(now), "future event")
		assert.False(t, e.Date.Before(start))
		assert.NotEqual(t, time.Sunday, e.Date.Weekday())
		assert.GreaterOrEqual(t, e.Date.Hour(), 8)
		assert.LessOrEqual(t, e.Date.Hour(), 18)
		assert.True(t, e.Kind.Valid())
		assert.True(t, e.Gender.Valid())
		assert.True(t, e.Age.Valid())
		assert.Contains(t, ids, e.CityID)
		assert.NotEmpty(t, e.ID)
	}

	t.Run("deterministic_for_a_seed", func(t *testing.T) {
		again := NewGenerator(42, time.UTC).Events(ids, now)
		assert.Equal(t, events, again)
	})

	t.Run("in_person_dominates", func(t *testing.T) {
		counts := map[domain.Kind]int{}
		for _, e := range events {
			counts[e.Kind]++
		}
		assert.Greater(t, counts[domain.KindInPerson], counts[domain.KindPhone])
		assert.Greater(t, counts[domain.KindInPerson], counts[domain.KindMail])
	})

	t.Run("no_cities_no_events", func(t *testing.T) {
		assert.Empty(t, NewGenerator(1, time.UTC).Events(nil, now))
	})
}

func TestLoader(t *testing.T) {
	clock := fakeClock{t: time.Date(2021, 2, 1, 12, 0, 0, 0, time.UTC)}

	t.Run("async_load_reaches_done", func(t *testing.T) {
		target := &memTarget{}
		gen := NewGenerator(7, time.UTC)
		l := NewLoader(target, DemoCitySource{Rand: nil}, gen, clock, true)
		assert.Equal(t, StatusIdle, l.Status())

		l.Start(context.Background())
		require.NoError(t, l.Wait(context.Background()))
		assert.Equal(t, StatusDone, l.Status())
		assert.Len(t, target.cities, 11)
		assert.NotEmpty(t, target.events)
	})

	t.Run("cities_only", func(t *testing.T) {
		target := &memTarget{}
		l := NewLoader(target, DemoCitySource{}, NewGenerator(7, time.UTC), clock, false)
		require.NoError(t, l.Run(context.Background()))
		assert.Len(t, target.cities, 11)
		assert.Empty(t, target.events)
	})

	t.Run("source_failure_marks_failed", func(t *testing.T) {
		l := NewLoader(&memTarget{}, failingSource{}, NewGenerator(7, time.UTC), clock, true)
		l.Start(context.Background())
		assert.Error(t, l.Wait(context.Background()))
		assert.Equal(t, StatusFailed, l.Status())
	})

	t.Run("concurrent_start_and_wait", func(t *testing.T) {
		target := &memTarget{}
		l := NewLoader(target, DemoCitySource{}, NewGenerator(7, time.UTC), clock, true)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				l.Start(context.Background())
			}()
			go func() {
				defer wg.Done()
				assert.NoError(t, l.Wait(context.Background()))
			}()
		}
		wg.Wait()

		require.NoError(t, l.Wait(context.Background()))
		assert.Equal(t, StatusDone, l.Status())
	})

	t.Run("wait_without_start", func(t *testing.T) {
		l := NewLoader(&memTarget{}, DemoCitySource{}, NewGenerator(7, time.UTC), clock, true)
		assert.NoError(t, l.Wait(context.Background()))
	})
}
