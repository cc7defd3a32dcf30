package risk

import (
	"context"
	"testing"
)

func TestService_Estimate(t *testing.T) {
	svc := NewService()
	est, err := svc.Estimate(context.Background(), referenceInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(est.TenYear, 18.578210409096496, 1e-9) {
		t.Errorf("ten-year = %v", est.TenYear)
	}
	if !almostEqual(est.FiveYear, 9.765976710054925, 1e-9) {
		t.Errorf("five-year = %v", est.FiveYear)
	}
	if est.Lifetime == nil {
		t.Fatal("expected lifetime risk for age 60")
	}
	if !almostEqual(*est.Lifetime, 40.17928369525203, 1e-9) {
		t.Errorf("lifetime = %v", *est.Lifetime)
	}
	if est.ARR == nil || est.RRR == nil || est.NNT == nil {
		t.Fatal("expected effect metrics for age 60")
	}
	if !almostEqual(est.BMI, 75.0/(1.7*1.7), 1e-12) {
		t.Errorf("bmi = %v", est.BMI)
	}
}

func TestService_Estimate_NoLifetimeAtHorizon(t *testing.T) {
	svc := NewService()
	in := referenceInputs()
	in.Age = 85
	est, err := svc.Estimate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.Lifetime != nil {
		t.Error("expected no lifetime estimate at age 85")
	}
	if est.ARR != nil || est.RRR != nil || est.NNT != nil {
		t.Error("expected no effect metrics at age 85")
	}
}

func TestService_Estimate_ValidatesRanges(t *testing.T) {
	svc := NewService()
	tests := []struct {
		name   string
		mutate func(*PatientInputs)
	}{
		{"age too low", func(in *PatientInputs) { in.Age = 29 }},
		{"age too high", func(in *PatientInputs) { in.Age = 91 }},
		{"bad sex", func(in *PatientInputs) { in.Sex = "other" }},
		{"sbp too low", func(in *PatientInputs) { in.SBP = 79 }},
		{"sbp too high", func(in *PatientInputs) { in.SBP = 221 }},
		{"crp too low", func(in *PatientInputs) { in.CRP = 0.05 }},
		{"ldl too high", func(in *PatientInputs) { in.LDL = 6.5 }},
		{"egfr too low", func(in *PatientInputs) { in.EGFR = 10 }},
		{"weight too high", func(in *PatientInputs) { in.WeightKg = 250 }},
		{"height too low", func(in *PatientInputs) { in.HeightCm = 120 }},
		{"hba1c too high", func(in *PatientInputs) { in.HbA1c = 15 }},
		{"triglycerides too low", func(in *PatientInputs) { in.Triglycerides = 0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceInputs()
			tt.mutate(in)
			if _, err := svc.Estimate(context.Background(), in); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestService_Estimate_NilInputs(t *testing.T) {
	svc := NewService()
	if _, err := svc.Estimate(context.Background(), nil); err == nil {
		t.Error("expected error for nil inputs")
	}
}
