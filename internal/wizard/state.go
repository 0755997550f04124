// Package wizard implements the four step entry flow for a visit event.
package wizard

import (
	"time"

	"github.com/baechuer/visit-service/internal/domain"
)

type Step string

const (
	StepKind   Step = "kind"
	StepGender Step = "gender"
	StepAge    Step = "age"
	StepCity   Step = "city"
)

// State is one of AwaitingKind, AwaitingGender, AwaitingAge or AwaitingCity.
type State interface {
	Step() Step
	isState()
}

type AwaitingKind struct{}

type AwaitingGender struct {
	Kind domain.Kind
	Date time.Time
}

type AwaitingAge struct {
	Kind   domain.Kind
	Date   time.Time
	Gender domain.Gender
}

type AwaitingCity struct {
	Kind   domain.Kind
	Date   time.Time
	Gender domain.Gender
	Age    domain.AgeBracket
}

func (AwaitingKind) Step() Step   { return StepKind }
func (AwaitingGender) Step() Step { return StepGender }
func (AwaitingAge) Step() Step    { return StepAge }
func (AwaitingCity) Step() Step   { return StepCity }

func (AwaitingKind) isState()   {}
func (AwaitingGender) isState() {}
func (AwaitingAge) isState()    {}
func (AwaitingCity) isState()   {}

// Fields is a flat view of a state for rendering. Unset fields are nil.
type Fields struct {
	Step   Step               `json:"step"`
	Kind   *domain.Kind       `json:"kind"`
	Gender *domain.Gender     `json:"gender"`
	Age    *domain.AgeBracket `json:"age"`
	Date   *time.Time         `json:"date"`
}

func FieldsOf(s State) Fields {
	f := Fields{Step: s.Step()}
	switch st := s.(type) {
	case AwaitingGender:
		f.Kind, f.Date = &st.Kind, &st.Date
	case AwaitingAge:
		f.Kind, f.Date, f.Gender = &st.Kind, &st.Date, &st.Gender
	case AwaitingCity:
		f.Kind, f.Date, f.Gender, f.Age = &st.Kind, &st.Date, &st.Gender, &st.Age
	}
	return f
}
