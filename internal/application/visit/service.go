package visit

import (
	"time"

	"github.com/google/uuid"

	"github.com/baechuer/visit-service/internal/store"
	"github.com/baechuer/visit-service/internal/wizard"
)

const (
	DefaultListCount = 30
	MaxListCount     = 500
)

type Service struct {
	events  *store.EventStore
	cities  *store.CityDirectory
	wizards *wizard.Registry

	pub   EventPublisher
	cache Cache
	clock Clock
	loc   *time.Location

	ttlStats time.Duration
	// Distinguishes this process's in-memory stores in a shared cache.
	instance string
}

func New(
	events *store.EventStore,
	cities *store.CityDirectory,
	clock Clock,
	pub EventPublisher,
	cache Cache,
	loc *time.Location,
	ttlStats, wizardTTL time.Duration,
) *Service {
	// Defaults if 0
	if ttlStats == 0 {
		ttlStats = 30 * time.Second
	}
	if wizardTTL == 0 {
		wizardTTL = 30 * time.Minute
	}
	if loc == nil {
		loc = time.UTC
	}
	if pub == nil {
		pub = NoopPublisher{}
	}

	return &Service{
		events:   events,
		cities:   cities,
		wizards:  wizard.NewRegistry(clock, events, wizardTTL),
		pub:      pub,
		cache:    cache,
		clock:    clock,
		loc:      loc,
		ttlStats: ttlStats,
		instance: uuid.NewString(),
	}
}

// Location is the zone calendar days are read in.
func (s *Service) Location() *time.Location { return s.loc }

// Today is the current calendar day in the service zone.
func (s *Service) Today() time.Time {
	now := s.clock.Now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}
