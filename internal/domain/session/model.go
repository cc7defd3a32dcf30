package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/risk"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/therapy"
)

// Wizard steps. The step counter is clamped to [StepProfile, StepResults].
const (
	StepProfile = iota
	StepLabs
	StepTherapies
	StepResults
)

var stepNames = [...]string{"profile", "labs", "therapies", "results"}

// StepName returns the display name of a wizard step.
func StepName(step int) string {
	if step < 0 || step >= len(stepNames) {
		return "unknown"
	}
	return stepNames[step]
}

// Session is one wizard run: the bounded step counter plus the patient and
// therapy state collected so far. Sessions are ephemeral; they live in the
// store until the TTL expires and nothing outlives them.
type Session struct {
	ID        uuid.UUID          `json:"id"`
	Step      int                `json:"step"`
	StepName  string             `json:"step_name"`
	Patient   risk.PatientInputs `json:"patient"`
	Therapies therapy.Selection  `json:"therapies"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// New creates a session seeded with the original form defaults.
func New() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:       uuid.New(),
		Step:     StepProfile,
		StepName: StepName(StepProfile),
		Patient: risk.PatientInputs{
			Age:           60,
			Sex:           risk.SexMale,
			WeightKg:      75,
			HeightCm:      170,
			EGFR:          90,
			TotalChol:     5.2,
			HDL:           1.3,
			LDL:           3.0,
			CRP:           2.5,
			HbA1c:         7.0,
			Triglycerides: 1.2,
			SBP:           140,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Advance moves to the next wizard step, clamped at the results step.
func (s *Session) Advance() {
	if s.Step < StepResults {
		s.Step++
	}
	s.StepName = StepName(s.Step)
}

// Back moves to the previous wizard step, clamped at the profile step.
func (s *Session) Back() {
	if s.Step > StepProfile {
		s.Step--
	}
	s.StepName = StepName(s.Step)
}
