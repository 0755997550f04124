package visit

import (
	"context"

	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/metrics"
	"github.com/baechuer/visit-service/internal/stats"
)

// Dashboard bundles every aggregate for one range.
type Dashboard struct {
	From      string                    `json:"from"`
	To        string                    `json:"to"`
	Total     int                       `json:"total"`
	PerDay    []stats.DayCount          `json:"per_day"`
	Kind      map[domain.Kind]int       `json:"kind"`
	Gender    map[domain.Gender]int     `json:"gender"`
	Age       map[domain.AgeBracket]int `json:"age"`
	PostCode  map[string]int            `json:"post_code"`
	TopCities []stats.CityCount         `json:"top_cities"`
}

// cacheGet reports a hit only when the cache answered cleanly. Cache
// failures are logged and treated as a miss.
func cacheGet[T any](ctx context.Context, s *Service, key string, dest *T) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, dest)
	switch {
	case err != nil:
		metrics.RecordStatsCache("error")
		zlog.Warn().Err(err).Str("key", key).Msg("cache stats get failed")
		return false
	case found:
		metrics.RecordStatsCache("hit")
		zlog.Debug().Str("key", key).Msg("cache stats hit")
		return true
	default:
		metrics.RecordStatsCache("miss")
		return false
	}
}

func (s *Service) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v, s.ttlStats); err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("cache stats set failed")
	}
}

// cached is cache-aside around compute.
func cached[T any](ctx context.Context, s *Service, key string, compute func() T) T {
	var hit T
	if cacheGet(ctx, s, key, &hit) {
		return hit
	}
	v := compute()
	s.cacheSet(ctx, key, v)
	return v
}

func (s *Service) CountPerDay(ctx context.Context, r stats.Range) []stats.DayCount {
	return cached(ctx, s, s.cacheKeyStats("per-day", r, 0), func() []stats.DayCount {
		return stats.DaySeries(stats.CountPerDay(s.events.ListRange(r), r))
	})
}

func (s *Service) CountByKind(ctx context.Context, r stats.Range) map[domain.Kind]int {
	return cached(ctx, s, s.cacheKeyStats("kind", r, 0), func() map[domain.Kind]int {
		return stats.CountByKind(s.events.ListRange(r), r)
	})
}

func (s *Service) CountByGender(ctx context.Context, r stats.Range) map[domain.Gender]int {
	return cached(ctx, s, s.cacheKeyStats("gender", r, 0), func() map[domain.Gender]int {
		return stats.CountByGender(s.events.ListRange(r), r)
	})
}

func (s *Service) CountByAge(ctx context.Context, r stats.Range) map[domain.AgeBracket]int {
	return cached(ctx, s, s.cacheKeyStats("age", r, 0), func() map[domain.AgeBracket]int {
		return stats.CountByAge(s.events.ListRange(r), r)
	})
}

func (s *Service) CountByPostCode(ctx context.Context, r stats.Range) map[string]int {
	return cached(ctx, s, s.cacheKeyStats("postcode", r, 0), func() map[string]int {
		return stats.CountByPostCode(s.events.ListRange(r), s.cities.ListAll(), r)
	})
}

// TopCities ranks cities by event count; limit <= 0 means 5.
func (s *Service) TopCities(ctx context.Context, r stats.Range, limit int) []stats.CityCount {
	if limit <= 0 {
		limit = stats.DefaultTopLimit
	}
	return cached(ctx, s, s.cacheKeyStats("top-cities", r, limit), func() []stats.CityCount {
		return stats.TopCitiesByCount(s.events.ListRange(r), s.cities.ListAll(), r, limit)
	})
}

// Dashboard computes every aggregate concurrently over one snapshot.
func (s *Service) Dashboard(ctx context.Context, r stats.Range, limit int) (Dashboard, error) {
	if limit <= 0 {
		limit = stats.DefaultTopLimit
	}
	key := s.cacheKeyStats("dashboard", r, limit)

	var out Dashboard
	if cacheGet(ctx, s, key, &out) {
		return out, nil
	}

	events := s.events.ListRange(r)
	cities := s.cities.ListAll()
	out = Dashboard{From: r.FromString(), To: r.ToString(), Total: len(events)}

	g, gctx := errgroup.WithContext(ctx)
	part := func(fn func()) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn()
			return nil
		})
	}
	part(func() { out.PerDay = stats.DaySeries(stats.CountPerDay(events, r)) })
	part(func() { out.Kind = stats.CountByKind(events, r) })
	part(func() { out.Gender = stats.CountByGender(events, r) })
	part(func() { out.Age = stats.CountByAge(events, r) })
	part(func() { out.PostCode = stats.CountByPostCode(events, cities, r) })
	part(func() { out.TopCities = stats.TopCitiesByCount(events, cities, r, limit) })
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	s.cacheSet(ctx, key, out)
	return out, nil
}
