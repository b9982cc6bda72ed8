package diagram

import (
	"strings"
	"testing"

	"github.com/alexiusacademia/gorcc/internal/column"
)

func diagramPoints() []column.CapacityPoint {
	return []column.CapacityPoint{
		{Point: 1, PhiPn: 748.3, PhiMn: 0},
		{Point: 2, PhiPn: 748.3, PhiMn: 15.2},
		{Point: 3, PhiPn: 593.0, PhiMn: 27.0},
		{Point: 4, PhiPn: 379.3, PhiMn: 32.5},
		{Point: 5, PhiPn: 235.6, PhiMn: 33.9},
		{Point: 6, PhiPn: 117.9, PhiMn: 30.1},
		{Point: 7, PhiPn: 0, PhiMn: 24.8},
		{Point: 8, PhiPn: -304.0, PhiMn: 0},
	}
}

func TestRenderEnvelope(t *testing.T) {
	out := RenderEnvelope(diagramPoints(), 0, 0, "Bending about Major Axis (X)")

	if !strings.Contains(out, "Bending about Major Axis (X)") {
		t.Error("envelope should carry its title")
	}
	if !strings.Contains(out, "o") || !strings.Contains(out, "*") {
		t.Error("envelope should contain point and trace markers")
	}
	if strings.Contains(out, "X = demand") {
		t.Error("no demand legend expected without a demand point")
	}
}

func TestRenderEnvelopeWithDemand(t *testing.T) {
	out := RenderEnvelope(diagramPoints(), 400, 10, "Bending about Major Axis (X)")
	if !strings.Contains(out, "X = demand") {
		t.Error("demand legend expected when a demand point is supplied")
	}
}

func TestRenderCapacityProfile(t *testing.T) {
	out := RenderCapacityProfile(diagramPoints(), "Major axis")
	if !strings.Contains(out, "Major axis") {
		t.Error("profile should carry its caption")
	}
	if len(strings.TrimSpace(out)) == 0 {
		t.Error("profile should not be empty")
	}
}
