package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/risk"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/therapy"
)

// Request carries everything one assessment needs: the patient covariates
// and the lipid-lowering therapy selection.
type Request struct {
	Patient   risk.PatientInputs `json:"patient"`
	Therapies therapy.Selection  `json:"therapies"`
}

// ChartPoint is one bar of the risk-horizon chart.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Result is the full derived output of one assessment. It is computed fresh
// for every request and never stored.
type Result struct {
	ID          uuid.UUID           `json:"id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Risk        *risk.Estimate      `json:"risk"`
	Projection  *therapy.Projection `json:"projection"`
	Chart       []ChartPoint        `json:"chart"`
}
