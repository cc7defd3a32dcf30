package therapy

import (
	"context"
	"fmt"
)

// Baseline LDL bounds (mmol/L), matching the lab input range.
const (
	MinBaselineLDL = 0.5
	MaxBaselineLDL = 6.0
)

// Service projects post-therapy LDL for a selection and enforces the gating
// of the advanced agents.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ProjectSelection derives the post-therapy LDL for the union of
// pre-admission and newly initiated agents. An agent ticked in both lists
// counts once. Newly initiating an advanced agent is rejected unless the
// projected LDL of the rest of the regimen exceeds the gating threshold;
// pre-admission advanced therapy is never rejected.
func (s *Service) ProjectSelection(_ context.Context, baselineLDL float64, sel Selection) (*Projection, error) {
	if baselineLDL < MinBaselineLDL || baselineLDL > MaxBaselineLDL {
		return nil, fmt.Errorf("baseline_ldl must be between %v and %v, got %v", MinBaselineLDL, MaxBaselineLDL, baselineLDL)
	}

	seen := make(map[string]bool)
	var all []string
	newAdvanced := make(map[string]bool)

	for _, name := range sel.PreAdmission {
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("unknown therapy: %q", name)
		}
		if !seen[name] {
			seen[name] = true
			all = append(all, name)
		}
	}
	for _, name := range sel.NewlyInitiated {
		a, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown therapy: %q", name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		all = append(all, name)
		if a.Advanced {
			newAdvanced[name] = true
		}
	}

	// Gate on the regimen without the newly initiated advanced agents.
	var base []string
	for _, name := range all {
		if !newAdvanced[name] {
			base = append(base, name)
		}
	}
	gate, err := Project(baselineLDL, base)
	if err != nil {
		return nil, err
	}
	for name := range newAdvanced {
		if gate.ProjectedLDL <= AdvancedLDLThreshold {
			return nil, fmt.Errorf("%s requires projected LDL above %v mmol/L (projected %.2f)",
				name, AdvancedLDLThreshold, gate.ProjectedLDL)
		}
	}

	p, err := Project(baselineLDL, all)
	if err != nil {
		return nil, err
	}
	// Report eligibility as decided by the gate, not by the final LDL: adding
	// an advanced agent pushes the projection below the threshold without
	// invalidating the selection that admitted it.
	p.PCSK9Eligible = gate.PCSK9Eligible
	p.InclisiranEligible = gate.InclisiranEligible
	return p, nil
}
