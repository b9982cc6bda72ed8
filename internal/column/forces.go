package column

import "github.com/alexiusacademia/gorcc/internal/aci"

// Force components of the cross-section for a given neutral-axis depth.
// All forces are in kN (MPa·mm² / 1000).

// ConcreteForce calculates the Whitney rectangular stress-block force of the
// concrete compression zone.
func ConcreteForce(c, b, fc float64) (float64, error) {
	beta1, err := aci.Beta1(fc)
	if err != nil {
		return 0, err
	}
	return concreteForce(c, b, fc, beta1), nil
}

func concreteForce(c, b, fc, beta1 float64) float64 {
	return aci.Alpha1 * fc * beta1 * c * b / 1000
}

// SteelForce calculates the force in a steel layer at depth d with the
// stress derived from strain compatibility, unclipped. The 0.85f'c term
// removes the concrete area displaced by the bars from double counting.
func SteelForce(c, d, as, fc float64) float64 {
	return (600*(c-d)/c - aci.Alpha1*fc) * as / 1000
}

// SteelForceFromStress calculates the force in a steel layer for an
// explicitly supplied stress fs (MPa), usually the clipped value from
// aci.SteelStress.
func SteelForceFromStress(fs, as, fc float64) float64 {
	return (fs - aci.Alpha1*fc) * as / 1000
}

// MaxNominalAxial returns the maximum nominal axial compressive strength of
// a tied column, 0.8·Po per ACI 318-19 Section 22.4.2.2, in kN.
func MaxNominalAxial(b, h, as, fc, fy float64) float64 {
	ag := b * h
	po := (aci.Alpha1*fc*ag + (fy-aci.Alpha1*fc)*as) / 1000
	return 0.8 * po
}
