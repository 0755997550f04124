package visit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/metrics"
	appCtx "github.com/baechuer/visit-service/internal/pkg/context"
)

const (
	EventVersion  = 1
	EventProducer = "visit-service"

	RoutingKeyVisitRecorded = "visit.recorded"
)

// DomainEventEnvelope is the contract for every message emitted by visit-service.
type DomainEventEnvelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

// VisitRecordedPayload is the payload for routing key visit.recorded.
type VisitRecordedPayload struct {
	EventID  string            `json:"event_id"`
	Kind     domain.Kind       `json:"kind"`
	Gender   domain.Gender     `json:"gender"`
	Age      domain.AgeBracket `json:"age"`
	CityID   string            `json:"city_id"`
	PostCode string            `json:"post_code,omitempty"`
	Date     time.Time         `json:"date"`
	Source   string            `json:"source"`
}

// publishRecorded is best effort: failures are logged and counted.
func (s *Service) publishRecorded(ctx context.Context, e domain.Event, source string) {
	if s.pub == nil {
		return
	}
	city, _ := s.cities.ByID(e.CityID)
	env := DomainEventEnvelope[VisitRecordedPayload]{
		Version:    EventVersion,
		Producer:   EventProducer,
		MessageID:  uuid.NewString(),
		TraceID:    appCtx.GetRequestID(ctx),
		OccurredAt: s.clock.Now().UTC(),
		Payload: VisitRecordedPayload{
			EventID:  e.ID,
			Kind:     e.Kind,
			Gender:   e.Gender,
			Age:      e.Age,
			CityID:   e.CityID,
			PostCode: city.PostCode,
			Date:     e.Date.UTC(),
			Source:   source,
		},
	}
	body, err := json.Marshal(env)
	if err != nil {
		zlog.Error().Err(err).Str("event_id", e.ID).Msg("encode domain event failed")
		return
	}
	if err := s.pub.PublishEvent(ctx, RoutingKeyVisitRecorded, env.MessageID, body); err != nil {
		metrics.RecordPublishFailure()
		zlog.Error().
			Err(err).
			Str("rk", RoutingKeyVisitRecorded).
			Str("event_id", e.ID).
			Msg("publish domain event failed")
	}
}
