package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baechuer/visit-service/internal/domain"
)

// Session is a snapshot of one wizard.
type Session struct {
	ID        string    `json:"id"`
	Fields    Fields    `json:"fields"`
	ExpiresAt time.Time `json:"expires_at"`
}

type entry struct {
	wizard    *Wizard
	expiresAt time.Time
}

// Registry holds open wizards. A session expires after ttl without activity.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	clock    Clock
	sink     Sink
}

func NewRegistry(clock Clock, sink Sink, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		clock:    clock,
		sink:     sink,
	}
}

// sweep drops expired sessions. Caller holds mu.
func (r *Registry) sweep(now time.Time) {
	for id, e := range r.sessions {
		if now.After(e.expiresAt) {
			delete(r.sessions, id)
		}
	}
}

func (r *Registry) Start() Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.sweep(now)

	id := uuid.NewString()
	e := &entry{wizard: New(r.clock, r.sink), expiresAt: now.Add(r.ttl)}
	r.sessions[id] = e
	return snapshot(id, e)
}

func (r *Registry) Get(id string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(id)
	if err != nil {
		return Session{}, err
	}
	return snapshot(id, e), nil
}

// Apply runs fn against the session's wizard and refreshes its expiry.
// The snapshot reflects the state after fn, even when fn fails.
func (r *Registry) Apply(id string, fn func(w *Wizard) error) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(id)
	if err != nil {
		return Session{}, err
	}
	err = fn(e.wizard)
	e.expiresAt = r.clock.Now().Add(r.ttl)
	return snapshot(id, e), err
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(id); err != nil {
		return err
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep(r.clock.Now())
	return len(r.sessions)
}

func (r *Registry) lookup(id string) (*entry, error) {
	now := r.clock.Now()
	r.sweep(now)
	e, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound("wizard session not found or expired")
	}
	return e, nil
}

func snapshot(id string, e *entry) Session {
	return Session{ID: id, Fields: FieldsOf(e.wizard.State()), ExpiresAt: e.expiresAt}
}
