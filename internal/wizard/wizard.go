package wizard

import (
	"strings"
	"time"

	"github.com/baechuer/visit-service/internal/domain"
)

type Clock interface{ Now() time.Time }

// Sink receives the completed event.
type Sink interface {
	Add(c domain.Candidate) (domain.Event, bool)
}

// Wizard is not safe for concurrent use; Registry serializes access.
type Wizard struct {
	state State
	clock Clock
	sink  Sink
}

func New(clock Clock, sink Sink) *Wizard {
	return &Wizard{state: AwaitingKind{}, clock: clock, sink: sink}
}

func (w *Wizard) State() State { return w.state }

func outOfOrder(w *Wizard, want Step) error {
	return domain.ErrInvalidStateMeta("wizard step out of order", map[string]string{
		"step":     string(w.state.Step()),
		"expected": string(want),
	})
}

// SetKind records the kind and stamps the event date with the current time.
func (w *Wizard) SetKind(k domain.Kind) error {
	if _, ok := w.state.(AwaitingKind); !ok {
		return outOfOrder(w, StepKind)
	}
	if !k.Valid() {
		return domain.ErrValidationMeta("invalid kind", map[string]string{"kind": "must be one of: in-person, phone, mail"})
	}
	w.state = AwaitingGender{Kind: k, Date: w.clock.Now()}
	return nil
}

func (w *Wizard) SetGender(g domain.Gender) error {
	st, ok := w.state.(AwaitingGender)
	if !ok {
		return outOfOrder(w, StepGender)
	}
	if !g.Valid() {
		return domain.ErrValidationMeta("invalid gender", map[string]string{"gender": "must be one of: female, male, other"})
	}
	w.state = AwaitingAge{Kind: st.Kind, Date: st.Date, Gender: g}
	return nil
}

func (w *Wizard) SetAge(a domain.AgeBracket) error {
	st, ok := w.state.(AwaitingAge)
	if !ok {
		return outOfOrder(w, StepAge)
	}
	if !a.Valid() {
		return domain.ErrValidationMeta("invalid age", map[string]string{"age": "must be a known age bracket"})
	}
	w.state = AwaitingCity{Kind: st.Kind, Date: st.Date, Gender: st.Gender, Age: a}
	return nil
}

// SetCity commits the event to the sink and returns the wizard to its
// initial state.
func (w *Wizard) SetCity(cityID string) (domain.Event, error) {
	st, ok := w.state.(AwaitingCity)
	if !ok {
		return domain.Event{}, outOfOrder(w, StepCity)
	}
	cityID = strings.TrimSpace(cityID)
	if cityID == "" {
		return domain.Event{}, domain.ErrValidationMeta("invalid city", map[string]string{"city": "required"})
	}

	e, added := w.sink.Add(domain.NewCandidate(st.Kind, st.Gender, st.Age, cityID, st.Date))
	w.state = AwaitingKind{}
	if !added {
		return domain.Event{}, domain.ErrInvalidState("event was not recorded")
	}
	return e, nil
}

// ResetKind drops every field, including the date. No-op before a kind is set.
func (w *Wizard) ResetKind() {
	w.state = AwaitingKind{}
}

// ResetGender keeps kind and date. No-op before a gender is set.
func (w *Wizard) ResetGender() {
	switch st := w.state.(type) {
	case AwaitingAge:
		w.state = AwaitingGender{Kind: st.Kind, Date: st.Date}
	case AwaitingCity:
		w.state = AwaitingGender{Kind: st.Kind, Date: st.Date}
	}
}

// ResetAge keeps kind, date and gender. No-op before an age is set.
func (w *Wizard) ResetAge() {
	if st, ok := w.state.(AwaitingCity); ok {
		w.state = AwaitingAge{Kind: st.Kind, Date: st.Date, Gender: st.Gender}
	}
}

// Reset clears the named step and everything after it.
func (w *Wizard) Reset(step Step) error {
	switch step {
	case StepKind:
		w.ResetKind()
	case StepGender:
		w.ResetGender()
	case StepAge:
		w.ResetAge()
	default:
		return domain.ErrValidationMeta("invalid step", map[string]string{"step": "must be one of: kind, gender, age"})
	}
	return nil
}
