package therapy

import (
	"fmt"
	"math"
)

// Project applies each agent's fractional LDL reduction as an independent
// multiplicative discount on the baseline, in order, and floors the result
// at the clinical minimum. Unknown agent names are an error.
func Project(baselineLDL float64, agents []string) (*Projection, error) {
	p := &Projection{
		BaselineLDL:  baselineLDL,
		ProjectedLDL: baselineLDL,
	}
	for _, name := range agents {
		a, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown therapy: %q", name)
		}
		p.ProjectedLDL *= 1 - a.LDLReduction
		p.Applied = append(p.Applied, AppliedEffect{
			Agent:        a.Name,
			LDLReduction: a.LDLReduction,
			LDLAfter:     p.ProjectedLDL,
		})
	}
	p.ProjectedLDL = math.Max(p.ProjectedLDL, MinProjectedLDL)
	eligible := p.ProjectedLDL > AdvancedLDLThreshold
	p.PCSK9Eligible = eligible
	p.InclisiranEligible = eligible
	return p, nil
}
