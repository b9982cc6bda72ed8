package aci

import (
	"fmt"
	"math"
)

// ACI 318-19 Material Constants

const (
	// Alpha1 is the coefficient for the Whitney equivalent rectangular
	// stress distribution (the 0.85 in 0.85f'c).
	// Section 22.2.2.4.1
	Alpha1 = 0.85

	// Strain limits
	EpsilonCU = 0.003 // Ultimate concrete strain (Section 22.2.2.1)

	// Strength reduction factors (Table 21.2.2)
	PhiFlexure     = 0.90 // Tension-controlled sections
	PhiCompression = 0.65 // Compression-controlled (tied)

	// Modulus of elasticity for steel (Section 20.2.2.2)
	Es = 200000.0 // MPa

	// Longitudinal steel ratio limits for columns (Section 10.6.1.1)
	MinSteelRatio = 0.01
	MaxSteelRatio = 0.08

	// AggregateSize is the nominal maximum aggregate size assumed for
	// clear-spacing checks (mm).
	AggregateSize = 20.0

	// f'c limits for the β1 expression (Table 22.2.2.4.3)
	MinFc       = 17.0 // MPa, lower applicability bound
	MaxNormalFc = 28.0 // MPa, β1 = 0.85 up to here
	HighFc      = 55.0 // MPa, β1 floors back at 0.85-range boundary
)

// StdRebarSizes lists the standard reinforcing bar diameters (mm).
// 10mm through 36mm map closely to #3-#11 English designations.
var StdRebarSizes = []float64{10, 12, 16, 20, 25, 28, 32, 36, 40, 50}

// IsStdRebarSize reports whether d is a standard bar diameter.
func IsStdRebarSize(d float64) bool {
	for _, s := range StdRebarSizes {
		if d == s {
			return true
		}
	}
	return false
}

// Beta1 calculates the factor relating the equivalent rectangular stress
// block depth to the neutral axis depth.
// ACI 318-19 Table 22.2.2.4.3
func Beta1(fc float64) (float64, error) {
	if fc < MinFc {
		return 0, fmt.Errorf("f'c must be at least %.0f MPa, got %.2f", MinFc, fc)
	}
	if fc <= MaxNormalFc || fc >= HighFc {
		return 0.85, nil
	}
	// β1 = 0.85 - 0.05(f'c - 28)/7 for 28 < f'c < 55 MPa
	return 0.85 - 0.05*(fc-MaxNormalFc)/7, nil
}

// Phi calculates the strength reduction factor from the net tensile strain.
// ACI 318-19 Table 21.2.2
func Phi(tstrain, fy float64) float64 {
	ystrain := fy / Es

	if tstrain <= ystrain {
		// Compression-controlled
		return PhiCompression
	}
	if tstrain >= ystrain+EpsilonCU {
		// Tension-controlled
		return PhiFlexure
	}
	// Transition zone
	return PhiCompression + 0.25*(tstrain-ystrain)/EpsilonCU
}

// SteelStress calculates the stress in a reinforcement layer at depth d for
// a neutral axis at depth c, from similar-triangles strain compatibility.
// The 600 factor is Es·εcu. The result is clipped to ±fy for yielding.
func SteelStress(c, d, fy float64) float64 {
	fs := 600 * (c - d) / c
	if fs > fy {
		return fy
	}
	if fs < -fy {
		return -fy
	}
	return fs
}

// ConcreteModulus returns Ec = 4700·√f'c for normal-weight concrete (MPa).
// ACI 318-19 Section 19.2.2.1
func ConcreteModulus(fc float64) float64 {
	return 4700 * math.Sqrt(fc)
}
