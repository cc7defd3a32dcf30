package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/risk"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/therapy"
)

// Chart labels for the three risk horizons.
const (
	LabelFiveYear = "5-year"
	LabelTenYear  = "10-year"
	LabelLifetime = "Lifetime"
)

// Service runs the full assessment: risk estimation, LDL projection with
// gating, and the chart series.
type Service struct {
	risk    *risk.Service
	therapy *therapy.Service
}

func NewService(riskSvc *risk.Service, therapySvc *therapy.Service) *Service {
	return &Service{risk: riskSvc, therapy: therapySvc}
}

// Evaluate computes the assessment for one request. The baseline for the LDL
// projection is the patient's measured LDL.
func (s *Service) Evaluate(ctx context.Context, req *Request) (*Result, error) {
	if req == nil {
		return nil, fmt.Errorf("assessment request is required")
	}

	est, err := s.risk.Estimate(ctx, &req.Patient)
	if err != nil {
		return nil, err
	}

	proj, err := s.therapy.ProjectSelection(ctx, req.Patient.LDL, req.Therapies)
	if err != nil {
		return nil, err
	}

	chart := []ChartPoint{
		{Label: LabelFiveYear, Value: est.FiveYear},
		{Label: LabelTenYear, Value: est.TenYear},
	}
	if est.Lifetime != nil {
		chart = append(chart, ChartPoint{Label: LabelLifetime, Value: *est.Lifetime})
	}

	return &Result{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Risk:        est,
		Projection:  proj,
		Chart:       chart,
	}, nil
}
