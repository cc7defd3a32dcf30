package risk

import (
	"context"
	"fmt"
)

// Service validates patient inputs and produces risk estimates. The estimate
// is computed fresh on every call; nothing is retained between calls.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Estimate validates the inputs and evaluates the full risk model: 10-year,
// 5-year and (when the horizon allows) lifetime risk plus effect metrics.
func (s *Service) Estimate(_ context.Context, in *PatientInputs) (*Estimate, error) {
	if in == nil {
		return nil, fmt.Errorf("patient inputs are required")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tenYear := TenYearRisk(in)
	est := &Estimate{
		BMI:      BMI(in.WeightKg, in.HeightCm),
		FiveYear: FiveYearRisk(tenYear),
		TenYear:  tenYear,
	}

	if lifetime, ok := LifetimeRisk(in.Age, tenYear); ok {
		est.Lifetime = &lifetime
		arr, rrr, nnt, nntOK := EffectMetrics(tenYear, lifetime)
		est.ARR = &arr
		est.RRR = &rrr
		if nntOK {
			est.NNT = &nnt
		}
	}

	return est, nil
}
