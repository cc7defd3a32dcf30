package session

import "testing"

func TestNewDefaults(t *testing.T) {
	sess := New()

	if sess.Step != StepProfile {
		t.Errorf("expected new session at step %d, got %d", StepProfile, sess.Step)
	}
	if sess.StepName != "profile" {
		t.Errorf("expected step name profile, got %q", sess.StepName)
	}
	if sess.Patient.Age != 60 {
		t.Errorf("expected default age 60, got %v", sess.Patient.Age)
	}
	if sess.Patient.LDL != 3.0 {
		t.Errorf("expected default LDL 3.0, got %v", sess.Patient.LDL)
	}
	if err := sess.Patient.Validate(); err != nil {
		t.Errorf("default patient should pass validation: %v", err)
	}
	if len(sess.Therapies.PreAdmission) != 0 || len(sess.Therapies.NewlyInitiated) != 0 {
		t.Error("new session should have no therapies selected")
	}
}

func TestStepClamping(t *testing.T) {
	sess := New()

	// Backing off the first step stays put.
	for i := 0; i < 5; i++ {
		sess.Back()
	}
	if sess.Step != StepProfile {
		t.Errorf("step went below %d: %d", StepProfile, sess.Step)
	}

	// Advancing past the last step stays put.
	for i := 0; i < 10; i++ {
		sess.Advance()
	}
	if sess.Step != StepResults {
		t.Errorf("step went above %d: %d", StepResults, sess.Step)
	}
	if sess.StepName != "results" {
		t.Errorf("expected step name results, got %q", sess.StepName)
	}

	sess.Back()
	if sess.Step != StepTherapies {
		t.Errorf("expected step %d after back, got %d", StepTherapies, sess.Step)
	}
	if sess.StepName != "therapies" {
		t.Errorf("expected step name therapies, got %q", sess.StepName)
	}
}

func TestStepName(t *testing.T) {
	cases := []struct {
		step int
		want string
	}{
		{StepProfile, "profile"},
		{StepLabs, "labs"},
		{StepTherapies, "therapies"},
		{StepResults, "results"},
		{-1, "unknown"},
		{4, "unknown"},
	}
	for _, tc := range cases {
		if got := StepName(tc.step); got != tc.want {
			t.Errorf("StepName(%d) = %q, want %q", tc.step, got, tc.want)
		}
	}
}
