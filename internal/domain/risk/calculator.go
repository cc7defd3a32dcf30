package risk

import "math"

// All outputs are capped at 95% and the lifetime horizon runs to age 85,
// matching the published model this calculator reproduces.
const (
	RiskCap            = 95.0
	LifetimeHorizonAge = 85
	baselineSurvival   = 0.900
	lpOffset           = 5.8
)

// Covariate weights of the linear predictor (fixed published coefficients).
const (
	coefAge      = 0.064
	coefSexMale  = 0.34
	coefSBP      = 0.02
	coefTC       = 0.25
	coefHDL      = -0.25
	coefSmoker   = 0.44
	coefDiabetes = 0.51
	coefEGFR     = -0.2 // per 10 mL/min/1.73m²
	coefCRP      = 0.25 // applied to ln(crp+1)
	coefVascular = 0.4  // per diseased territory
)

// LinearPredictor combines the weighted covariates. CRP enters as ln(crp+1)
// so a zero reading stays in the domain of the log.
func LinearPredictor(in *PatientInputs) float64 {
	sexV := 0.0
	if in.Sex == SexMale {
		sexV = 1.0
	}
	smV := 0.0
	if in.Smoker {
		smV = 1.0
	}
	dmV := 0.0
	if in.Diabetes {
		dmV = 1.0
	}
	return coefAge*float64(in.Age) +
		coefSexMale*sexV +
		coefSBP*in.SBP +
		coefTC*in.TotalChol +
		coefHDL*in.HDL +
		coefSmoker*smV +
		coefDiabetes*dmV +
		coefEGFR*(in.EGFR/10) +
		coefCRP*math.Log(in.CRP+1) +
		coefVascular*float64(in.VascularCount())
}

// TenYearRisk transforms the linear predictor through the exponential
// survival formula and returns the 10-year CVD risk percentage.
func TenYearRisk(in *PatientInputs) float64 {
	raw := 1 - math.Pow(baselineSurvival, math.Exp(LinearPredictor(in)-lpOffset))
	return math.Min(raw*100, RiskCap)
}

// FiveYearRisk derives the 5-year estimate from the 10-year risk via the
// square root of the survival probability.
func FiveYearRisk(tenYear float64) float64 {
	p := math.Min(tenYear, RiskCap) / 100
	return math.Min((1-math.Sqrt(1-p))*100, RiskCap)
}

// LifetimeRisk converts the 10-year risk to an implied constant annual hazard
// and compounds it over the years remaining to age 85. The second return is
// false when the horizon is unavailable (age >= 85).
func LifetimeRisk(age int, tenYear float64) (float64, bool) {
	if age >= LifetimeHorizonAge {
		return 0, false
	}
	years := float64(LifetimeHorizonAge - age)
	p10 := math.Min(tenYear, RiskCap) / 100
	annual := 1 - math.Pow(1-p10, 1.0/10)
	return math.Min((1-math.Pow(1-annual, years))*100, RiskCap), true
}

// EffectMetrics computes the absolute risk reduction (percentage points),
// relative risk reduction (%) and number needed to treat between the 10-year
// and lifetime horizons. NNT is undefined when ARR is zero.
func EffectMetrics(tenYear, lifetime float64) (arr, rrr float64, nnt float64, nntOK bool) {
	arr = tenYear - lifetime
	if tenYear != 0 {
		rrr = arr / tenYear * 100
	}
	if arr != 0 {
		return arr, rrr, 100 / arr, true
	}
	return arr, rrr, 0, false
}

// BMI computes body mass index (kg/m²) from weight and height.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}
