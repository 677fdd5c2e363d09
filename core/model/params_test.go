package model

import (
	"math"
	"strings"
	"testing"
)

func TestCellTypeReferenceEfficiency(t *testing.T) {
	got := DefaultCellType.ReferenceEfficiency()
	if math.Abs(got-0.21) > 1e-12 {
		t.Fatalf("expected 0.21 got %v", got)
	}
}

func TestParametersString(t *testing.T) {
	s := DefaultParameters().String()
	for _, want := range []string{"eta_ref = 21.00%", "Tref = 25.0°C", "beta = 0.0045", "G = 1000 W/m²", "A = 1.0 m²"} {
		if !strings.Contains(s, want) {
			t.Errorf("banner %q missing %q", s, want)
		}
	}
}
