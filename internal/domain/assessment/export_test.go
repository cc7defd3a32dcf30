package assessment

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	svc := newTestService()
	res, err := svc.Evaluate(context.Background(), referenceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "metric,value" {
		t.Errorf("header = %q, want %q", lines[0], "metric,value")
	}
	if lines[1] != "5yr,9.8" {
		t.Errorf("row 1 = %q, want %q", lines[1], "5yr,9.8")
	}
	if lines[2] != "10yr,18.6" {
		t.Errorf("row 2 = %q, want %q", lines[2], "10yr,18.6")
	}
	if lines[3] != "lifetime,40.2" {
		t.Errorf("row 3 = %q, want %q", lines[3], "lifetime,40.2")
	}
}

func TestWriteCSV_NoLifetimeRow(t *testing.T) {
	svc := newTestService()
	req := referenceRequest()
	req.Patient.Age = 85
	res, err := svc.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "lifetime") {
		t.Errorf("expected no lifetime row at age 85, got %q", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header plus 2 rows, got %d lines", len(lines))
	}
}

func TestWriteCSV_NilResult(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err == nil {
		t.Error("expected error for nil result")
	}
}
