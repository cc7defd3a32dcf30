package therapy

import (
	"context"
	"math"
	"testing"
)

func TestService_ProjectSelection(t *testing.T) {
	svc := NewService()
	p, err := svc.ProjectSelection(context.Background(), 3.0, Selection{
		PreAdmission:   []string{Simvastatin40},
		NewlyInitiated: []string{Ezetimibe10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 3.0 * 0.8 * 0.8
	if math.Abs(p.ProjectedLDL-want) > 1e-12 {
		t.Errorf("projected LDL = %v, want %v", p.ProjectedLDL, want)
	}
}

func TestService_ProjectSelection_DuplicateCountsOnce(t *testing.T) {
	svc := NewService()
	p, err := svc.ProjectSelection(context.Background(), 3.0, Selection{
		PreAdmission:   []string{Ezetimibe10},
		NewlyInitiated: []string{Ezetimibe10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p.ProjectedLDL-2.4) > 1e-12 {
		t.Errorf("expected agent applied once (2.4), got %v", p.ProjectedLDL)
	}
}

func TestService_ProjectSelection_GatesNewAdvanced(t *testing.T) {
	svc := NewService()

	// Atorvastatin 80 alone projects 3.0 down to 1.5, below the threshold:
	// newly initiating a PCSK9 inhibitor must be rejected.
	_, err := svc.ProjectSelection(context.Background(), 3.0, Selection{
		NewlyInitiated: []string{Atorvastatin80, PCSK9Inhibitor},
	})
	if err == nil {
		t.Error("expected gating rejection for newly initiated PCSK9 inhibitor")
	}

	_, err = svc.ProjectSelection(context.Background(), 3.0, Selection{
		NewlyInitiated: []string{Atorvastatin80, Inclisiran},
	})
	if err == nil {
		t.Error("expected gating rejection for newly initiated Inclisiran")
	}

	// With no other therapy the projection stays at 3.0 and the advanced
	// agent is admitted.
	p, err := svc.ProjectSelection(context.Background(), 3.0, Selection{
		NewlyInitiated: []string{PCSK9Inhibitor},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p.ProjectedLDL-1.2) > 1e-12 {
		t.Errorf("projected LDL = %v, want 1.2", p.ProjectedLDL)
	}
	if !p.PCSK9Eligible {
		t.Error("expected eligibility reported from the gate, not the final LDL")
	}
}

func TestService_ProjectSelection_PreAdmissionAdvancedNeverGated(t *testing.T) {
	svc := NewService()
	p, err := svc.ProjectSelection(context.Background(), 3.0, Selection{
		PreAdmission: []string{Atorvastatin80, PCSK9Inhibitor},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 3.0 * 0.5 * 0.4
	if math.Abs(p.ProjectedLDL-want) > 1e-12 {
		t.Errorf("projected LDL = %v, want %v", p.ProjectedLDL, want)
	}
}

func TestService_ProjectSelection_BaselineOutOfRange(t *testing.T) {
	svc := NewService()
	for _, ldl := range []float64{0.4, 6.1, -1} {
		if _, err := svc.ProjectSelection(context.Background(), ldl, Selection{}); err == nil {
			t.Errorf("expected error for baseline %v", ldl)
		}
	}
}

func TestService_ProjectSelection_UnknownAgent(t *testing.T) {
	svc := NewService()
	_, err := svc.ProjectSelection(context.Background(), 3.0, Selection{
		PreAdmission: []string{"Fish oil"},
	})
	if err == nil {
		t.Error("expected error for unknown agent")
	}
}
