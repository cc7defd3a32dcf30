package risk

import "fmt"

// Sex values accepted in patient inputs.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// PatientInputs is the flat set of covariates the risk model consumes. It is
// rebuilt for every calculation and never stored beyond the owning session.
type PatientInputs struct {
	Age            int     `json:"age"`
	Sex            string  `json:"sex"`
	WeightKg       float64 `json:"weight_kg"`
	HeightCm       float64 `json:"height_cm"`
	Smoker         bool    `json:"smoker"`
	Diabetes       bool    `json:"diabetes"`
	VascCoronary   bool    `json:"vasc_coronary"`
	VascCerebral   bool    `json:"vasc_cerebral"`
	VascPeripheral bool    `json:"vasc_peripheral"`
	EGFR           float64 `json:"egfr"`
	TotalChol      float64 `json:"total_chol"`
	HDL            float64 `json:"hdl"`
	LDL            float64 `json:"ldl"`
	CRP            float64 `json:"crp"`
	HbA1c          float64 `json:"hba1c"`
	Triglycerides  float64 `json:"triglycerides"`
	SBP            float64 `json:"sbp"`
}

// VascularCount returns the number of diseased vascular territories (0-3).
func (in *PatientInputs) VascularCount() int {
	n := 0
	if in.VascCoronary {
		n++
	}
	if in.VascCerebral {
		n++
	}
	if in.VascPeripheral {
		n++
	}
	return n
}

// Input ranges, matching the bounds the original form widgets enforced.
const (
	MinAge, MaxAge             = 30, 90
	MinWeight, MaxWeight       = 40.0, 200.0
	MinHeight, MaxHeight       = 140.0, 210.0
	MinEGFR, MaxEGFR           = 15.0, 120.0
	MinTotalChol, MaxTotalChol = 2.0, 10.0
	MinHDL, MaxHDL             = 0.5, 3.0
	MinLDL, MaxLDL             = 0.5, 6.0
	MinCRP, MaxCRP             = 0.1, 20.0
	MinHbA1c, MaxHbA1c         = 4.0, 14.0
	MinTG, MaxTG               = 0.3, 5.0
	MinSBP, MaxSBP             = 80.0, 220.0
)

// Validate enforces the same numeric ranges the original input widgets did.
// The calculator itself assumes validated inputs.
func (in *PatientInputs) Validate() error {
	if in.Age < MinAge || in.Age > MaxAge {
		return fmt.Errorf("age must be between %d and %d, got %d", MinAge, MaxAge, in.Age)
	}
	if in.Sex != SexMale && in.Sex != SexFemale {
		return fmt.Errorf("sex must be %q or %q, got %q", SexMale, SexFemale, in.Sex)
	}
	if in.WeightKg < MinWeight || in.WeightKg > MaxWeight {
		return fmt.Errorf("weight_kg must be between %v and %v, got %v", MinWeight, MaxWeight, in.WeightKg)
	}
	if in.HeightCm < MinHeight || in.HeightCm > MaxHeight {
		return fmt.Errorf("height_cm must be between %v and %v, got %v", MinHeight, MaxHeight, in.HeightCm)
	}
	if in.EGFR < MinEGFR || in.EGFR > MaxEGFR {
		return fmt.Errorf("egfr must be between %v and %v, got %v", MinEGFR, MaxEGFR, in.EGFR)
	}
	if in.TotalChol < MinTotalChol || in.TotalChol > MaxTotalChol {
		return fmt.Errorf("total_chol must be between %v and %v, got %v", MinTotalChol, MaxTotalChol, in.TotalChol)
	}
	if in.HDL < MinHDL || in.HDL > MaxHDL {
		return fmt.Errorf("hdl must be between %v and %v, got %v", MinHDL, MaxHDL, in.HDL)
	}
	if in.LDL < MinLDL || in.LDL > MaxLDL {
		return fmt.Errorf("ldl must be between %v and %v, got %v", MinLDL, MaxLDL, in.LDL)
	}
	if in.CRP < MinCRP || in.CRP > MaxCRP {
		return fmt.Errorf("crp must be between %v and %v, got %v", MinCRP, MaxCRP, in.CRP)
	}
	if in.HbA1c < MinHbA1c || in.HbA1c > MaxHbA1c {
		return fmt.Errorf("hba1c must be between %v and %v, got %v", MinHbA1c, MaxHbA1c, in.HbA1c)
	}
	if in.Triglycerides < MinTG || in.Triglycerides > MaxTG {
		return fmt.Errorf("triglycerides must be between %v and %v, got %v", MinTG, MaxTG, in.Triglycerides)
	}
	if in.SBP < MinSBP || in.SBP > MaxSBP {
		return fmt.Errorf("sbp must be between %v and %v, got %v", MinSBP, MaxSBP, in.SBP)
	}
	return nil
}

// Estimate is the derived risk result. Lifetime and the effect metrics are
// nil when the lifetime horizon is unavailable (age >= 85) or ARR is zero.
type Estimate struct {
	BMI      float64  `json:"bmi"`
	FiveYear float64  `json:"five_year_pct"`
	TenYear  float64  `json:"ten_year_pct"`
	Lifetime *float64 `json:"lifetime_pct,omitempty"`
	ARR      *float64 `json:"arr_pp,omitempty"`
	RRR      *float64 `json:"rrr_pct,omitempty"`
	NNT      *float64 `json:"nnt,omitempty"`
}
