// Package store holds the in-memory event log and city directory.
package store

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/stats"
)

// EventStore keeps events ordered by date, newest first. Events sharing a
// date stay in insertion order.
type EventStore struct {
	mu      sync.RWMutex
	events  []domain.Event
	byID    map[string]int
	version uint64
	newID   func() string
}

func NewEventStore() *EventStore {
	return &EventStore{
		byID:  map[string]int{},
		newID: uuid.NewString,
	}
}

// Add commits a complete candidate under a fresh id. Incomplete candidates
// are ignored and Add reports false.
func (s *EventStore) Add(c domain.Candidate) (domain.Event, bool) {
	if !c.Complete() {
		return domain.Event{}, false
	}
	e := domain.Event{
		ID:     s.newID(),
		Kind:   *c.Kind,
		Gender: *c.Gender,
		Age:    *c.Age,
		CityID: *c.CityID,
		Date:   *c.Date,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// first position strictly older than e
	i := sort.Search(len(s.events), func(i int) bool {
		return s.events[i].Date.Before(e.Date)
	})
	s.events = append(s.events, domain.Event{})
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = e
	s.reindex()
	s.version++
	return e, true
}

// ReplaceAll discards the current contents. Events without an id get one.
func (s *EventStore) ReplaceAll(events []domain.Event) {
	next := make([]domain.Event, len(events))
	copy(next, events)
	for i := range next {
		if next[i].ID == "" {
			next[i].ID = s.newID()
		}
	}
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Date.After(next[j].Date)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = next
	s.reindex()
	s.version++
}

func (s *EventStore) reindex() {
	s.byID = make(map[string]int, len(s.events))
	for i, e := range s.events {
		s.byID[e.ID] = i
	}
}

// ListAll returns a copy of every event, newest first.
func (s *EventStore) ListAll() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// ListRange returns the events inside r, newest first.
func (s *EventStore) ListRange(r stats.Range) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.Filter(s.events, r)
}

// ListSlice returns up to count events starting at offset. Windows past the
// end are clipped.
func (s *EventStore) ListSlice(offset, count int) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if count < 0 {
		count = 0
	}
	if offset > len(s.events) {
		offset = len(s.events)
	}
	if count > len(s.events)-offset {
		count = len(s.events) - offset
	}
	end := offset + count
	out := make([]domain.Event, end-offset)
	copy(out, s.events[offset:end])
	return out
}

func (s *EventStore) Get(id string) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Event{}, false
	}
	return s.events[i], true
}

func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// Version changes on every write.
func (s *EventStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
