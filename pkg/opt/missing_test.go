package opt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMissing_PositionsAscendingCopy(t *testing.T) {
	t.Parallel()
	m, all := absentOf(false, true, false, true)
	if all {
		t.Fatalf("expected absences to be reported")
	}

	got := m.Positions()
	if diff := cmp.Diff([]int{0, 2}, got); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}

	got[0] = 99
	if diff := cmp.Diff([]int{0, 2}, m.Positions()); diff != "" {
		t.Fatalf("positions should be a copy (-want +got):\n%s", diff)
	}
}

func TestDescribe_OrdinalsWithoutNames(t *testing.T) {
	t.Parallel()
	m, _ := absentOf(false, false)

	if got := m.Describe(); got != "first and second values are missing" {
		t.Fatalf("unexpected description: %q", got)
	}
}

func TestDescribe_SingleAbsentWithName(t *testing.T) {
	t.Parallel()
	m, _ := absentOf(true, false)

	if got := m.Describe("x1", "x2"); got != "x2 value is missing" {
		t.Fatalf("unexpected description: %q", got)
	}
}

func TestDescribe_PartialNamesFallBackPerPosition(t *testing.T) {
	t.Parallel()
	m, _ := absentOf(false, false, false)

	// names cover only position 0; positions 1 and 2 fall back to ordinals
	if got := m.Describe("amount"); got != "amount and second and third values are missing" {
		t.Fatalf("unexpected description: %q", got)
	}

	// an empty name entry falls back as well
	if got := m.Describe("", "rate"); got != "first and rate and third values are missing" {
		t.Fatalf("unexpected description: %q", got)
	}
}

func TestDescribe_PlaceholderBeyondOrdinalTable(t *testing.T) {
	t.Parallel()
	m, _ := absentOf(true, true, true, true, true, false)

	if got := m.Describe(); got != "<unspecified value> value is missing" {
		t.Fatalf("unexpected description: %q", got)
	}
}

func TestAbsentOf_AllPresent(t *testing.T) {
	t.Parallel()
	m, all := absentOf(true, true, true)
	if !all {
		t.Fatalf("expected all present")
	}
	if len(m.Positions()) != 0 {
		t.Fatalf("expected no positions, got %v", m.Positions())
	}
}
