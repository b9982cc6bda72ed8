package aci

import (
	"math"
	"testing"
)

func TestFactored(t *testing.T) {
	effects := LoadEffects{
		Dead: Effect{Axial: 100, Moment: 10},
		Live: Effect{Axial: 50, Moment: 5},
	}

	// 1.2D + 1.6L + 0.5(Lr or R)
	combo := LoadCombinations[1]
	got := combo.Factored(effects)

	if math.Abs(got.Axial-200) > 1e-9 {
		t.Errorf("factored axial = %v, want 200", got.Axial)
	}
	if math.Abs(got.Moment-20) > 1e-9 {
		t.Errorf("factored moment = %v, want 20", got.Moment)
	}
}

func TestGoverningDemand(t *testing.T) {
	effects := LoadEffects{
		Dead: Effect{Axial: 100, Moment: 10},
		Live: Effect{Axial: 80, Moment: 8},
	}

	demand, combo := GoverningDemand(effects, SimplifiedCombinations)

	// 1.2D + 1.6L = 248 governs over 1.4D = 140.
	if combo.ID != "b" {
		t.Errorf("governing combination = %s, want b", combo.ID)
	}
	if math.Abs(demand.Axial-248) > 1e-9 {
		t.Errorf("governing axial = %v, want 248", demand.Axial)
	}
}

func TestLoadEffectsIsZero(t *testing.T) {
	if !(LoadEffects{}).IsZero() {
		t.Error("empty effects should be zero")
	}
	if (LoadEffects{Wind: Effect{Moment: 1}}).IsZero() {
		t.Error("effects with wind moment should not be zero")
	}
}
