package visit

import (
	"context"
	"errors"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/metrics"
	"github.com/baechuer/visit-service/internal/wizard"
)

// WizardResult is the session after a transition, plus the event when the
// transition completed one.
type WizardResult struct {
	Session wizard.Session
	Event   *domain.Event
}

func (s *Service) StartWizard(ctx context.Context) wizard.Session {
	sess := s.wizards.Start()
	zlog.Debug().Str("wizard_id", sess.ID).Msg("wizard started")
	return sess
}

func (s *Service) Wizard(ctx context.Context, id string) (wizard.Session, error) {
	return s.wizards.Get(id)
}

func (s *Service) CancelWizard(ctx context.Context, id string) error {
	return s.wizards.Delete(id)
}

func (s *Service) apply(step wizard.Step, id string, fn func(w *wizard.Wizard) error) (wizard.Session, error) {
	sess, err := s.wizards.Apply(id, fn)
	var ae *domain.AppError
	if err == nil || (errors.As(err, &ae) && ae.Code != domain.CodeNotFound) {
		metrics.RecordWizardTransition(string(step), err == nil)
	}
	return sess, err
}

func (s *Service) WizardSetKind(ctx context.Context, id string, k domain.Kind) (WizardResult, error) {
	sess, err := s.apply(wizard.StepKind, id, func(w *wizard.Wizard) error { return w.SetKind(k) })
	return WizardResult{Session: sess}, err
}

func (s *Service) WizardSetGender(ctx context.Context, id string, g domain.Gender) (WizardResult, error) {
	sess, err := s.apply(wizard.StepGender, id, func(w *wizard.Wizard) error { return w.SetGender(g) })
	return WizardResult{Session: sess}, err
}

func (s *Service) WizardSetAge(ctx context.Context, id string, a domain.AgeBracket) (WizardResult, error) {
	sess, err := s.apply(wizard.StepAge, id, func(w *wizard.Wizard) error { return w.SetAge(a) })
	return WizardResult{Session: sess}, err
}

// WizardSetCity completes the wizard. The committed event is announced once
// the session lock is released.
func (s *Service) WizardSetCity(ctx context.Context, id, cityID string) (WizardResult, error) {
	var committed domain.Event
	sess, err := s.apply(wizard.StepCity, id, func(w *wizard.Wizard) error {
		e, err := w.SetCity(cityID)
		committed = e
		return err
	})
	if err != nil {
		return WizardResult{Session: sess}, err
	}
	if _, ok := s.cities.ByID(committed.CityID); !ok {
		zlog.Warn().Str("city_id", committed.CityID).Str("event_id", committed.ID).Msg("event recorded with unknown city")
	}
	s.afterRecord(ctx, committed, "wizard")
	return WizardResult{Session: sess, Event: &committed}, nil
}

func (s *Service) WizardReset(ctx context.Context, id string, step wizard.Step) (wizard.Session, error) {
	return s.wizards.Apply(id, func(w *wizard.Wizard) error { return w.Reset(step) })
}
