package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/assessment"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/risk"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/therapy"
)

// Service drives the wizard: step movement, validated state updates and
// result computation for a session.
type Service struct {
	store     Store
	therapies *therapy.Service
	assess    *assessment.Service
}

func NewService(store Store, therapySvc *therapy.Service, assessSvc *assessment.Service) *Service {
	return &Service{store: store, therapies: therapySvc, assess: assessSvc}
}

// Create starts a new session with the default patient profile.
func (s *Service) Create(ctx context.Context) (*Session, error) {
	sess := New()
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// UpdateInputs replaces the session's patient inputs after range validation.
func (s *Service) UpdateInputs(ctx context.Context, id uuid.UUID, in risk.PatientInputs) (*Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sess.Patient = in
	sess.UpdatedAt = time.Now().UTC()
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// UpdateTherapies replaces the therapy selection. The projection runs first
// so unknown agents and gated advanced therapies are rejected before any
// state changes.
func (s *Service) UpdateTherapies(ctx context.Context, id uuid.UUID, sel therapy.Selection) (*Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.therapies.ProjectSelection(ctx, sess.Patient.LDL, sel); err != nil {
		return nil, err
	}
	sess.Therapies = sel
	sess.UpdatedAt = time.Now().UTC()
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Advance moves the wizard one step forward, clamped at the results step.
func (s *Service) Advance(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.moveStep(ctx, id, (*Session).Advance)
}

// Back moves the wizard one step back, clamped at the profile step.
func (s *Service) Back(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.moveStep(ctx, id, (*Session).Back)
}

func (s *Service) moveStep(ctx context.Context, id uuid.UUID, move func(*Session)) (*Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	move(sess)
	sess.UpdatedAt = time.Now().UTC()
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Result evaluates the full assessment for the session's current state.
func (s *Service) Result(ctx context.Context, id uuid.UUID) (*assessment.Result, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assess.Evaluate(ctx, &assessment.Request{
		Patient:   sess.Patient,
		Therapies: sess.Therapies,
	})
}
