package seed

import (
	"context"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/baechuer/visit-service/internal/domain"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

type Clock interface{ Now() time.Time }

type CitySource interface {
	ListCities(ctx context.Context) ([]domain.City, error)
}

// Target receives the seeded data.
type Target interface {
	ReplaceCities(ctx context.Context, cities []domain.City) error
	ReplaceEvents(ctx context.Context, events []domain.Event)
}

// Loader fills the stores once, in the background.
type Loader struct {
	target  Target
	cities  CitySource
	gen     *Generator
	clock   Clock
	withEvs bool

	mu     sync.RWMutex
	status Status

	once sync.Once
	g    *errgroup.Group
}

// NewLoader loads cities from src. When events is false only the city
// directory is filled.
func NewLoader(target Target, src CitySource, gen *Generator, clock Clock, events bool) *Loader {
	return &Loader{
		target:  target,
		cities:  src,
		gen:     gen,
		clock:   clock,
		withEvs: events,
		status:  StatusIdle,
	}
}

func (l *Loader) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

func (l *Loader) setStatus(s Status) {
	l.mu.Lock()
	l.status = s
	l.mu.Unlock()
}

// Start runs the load in a goroutine. Later calls do nothing.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		l.setStatus(StatusLoading)
		g, gctx := errgroup.WithContext(ctx)
		l.mu.Lock()
		l.g = g
		l.mu.Unlock()
		g.Go(func() error { return l.run(gctx) })
	})
}

// Wait blocks until the load started by Start finishes or ctx ends.
func (l *Loader) Wait(ctx context.Context) error {
	l.mu.RLock()
	g := l.g
	l.mu.RUnlock()
	if g == nil {
		return nil
	}
	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run loads synchronously.
func (l *Loader) Run(ctx context.Context) error {
	l.setStatus(StatusLoading)
	return l.run(ctx)
}

func (l *Loader) run(ctx context.Context) error {
	start := time.Now()

	cities, err := l.cities.ListCities(ctx)
	if err != nil {
		l.setStatus(StatusFailed)
		zlog.Error().Err(err).Msg("seed cities failed")
		return err
	}
	if err := l.target.ReplaceCities(ctx, cities); err != nil {
		l.setStatus(StatusFailed)
		zlog.Error().Err(err).Msg("seed cities rejected")
		return err
	}

	n := 0
	if l.withEvs {
		ids := make([]string, len(cities))
		for i, c := range cities {
			ids[i] = c.ID
		}
		events := l.gen.Events(ids, l.clock.Now())
		if err := ctx.Err(); err != nil {
			l.setStatus(StatusFailed)
			return err
		}
		l.target.ReplaceEvents(ctx, events)
		n = len(events)
	}

	l.setStatus(StatusDone)
	zlog.Info().
		Int("cities", len(cities)).
		Int("events", n).
		Dur("took", time.Since(start)).
		Msg("seed loaded")
	return nil
}
