package visit

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/metrics"
	"github.com/baechuer/visit-service/internal/stats"
)

// RecordEvent adds a candidate to the store. An incomplete candidate is
// dropped silently and reported with ok=false.
func (s *Service) RecordEvent(ctx context.Context, c domain.Candidate) (domain.Event, bool) {
	e, ok := s.events.Add(c)
	if !ok {
		zlog.Debug().Msg("incomplete candidate dropped")
		return domain.Event{}, false
	}
	s.afterRecord(ctx, e, "api")
	return e, true
}

func (s *Service) afterRecord(ctx context.Context, e domain.Event, source string) {
	metrics.RecordEventRecorded(string(e.Kind))
	metrics.SetStoreEvents(s.events.Len())
	s.publishRecorded(ctx, e, source)
}

// ReplaceEvents swaps the whole event log. Bulk loads publish nothing.
func (s *Service) ReplaceEvents(ctx context.Context, events []domain.Event) {
	s.events.ReplaceAll(events)
	metrics.SetStoreEvents(s.events.Len())
	zlog.Info().Int("events", len(events)).Msg("events replaced")
}

// ListEvents pages through events newest first. count <= 0 means
// DefaultListCount; larger pages are capped at MaxListCount.
func (s *Service) ListEvents(ctx context.Context, offset, count int) ([]domain.Event, int) {
	if offset < 0 {
		offset = 0
	}
	if count <= 0 {
		count = DefaultListCount
	}
	if count > MaxListCount {
		count = MaxListCount
	}
	return s.events.ListSlice(offset, count), s.events.Len()
}

func (s *Service) ListEventsInRange(ctx context.Context, r stats.Range) []domain.Event {
	return s.events.ListRange(r)
}

// Event returns one event by id.
func (s *Service) Event(ctx context.Context, id string) (domain.Event, error) {
	e, ok := s.events.Get(id)
	if !ok {
		return domain.Event{}, domain.ErrNotFound("event not found")
	}
	return e, nil
}
