package aci

// LoadCombination represents an ACI 318-19 strength design load combination
// per Table 5.3.1.
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// ACI 318-19 Table 5.3.1 - Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "a",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "b",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "c",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "d",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "e",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "f",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "g",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations covers the common gravity-only design scenarios.
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "a",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "b",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// Effect is a paired axial force and bending moment from one load type.
type Effect struct {
	Axial  float64 // kN
	Moment float64 // kN-m
}

// LoadEffects holds unfactored column load effects from each load type.
type LoadEffects struct {
	Dead       Effect
	Live       Effect
	Roof       Effect
	Wind       Effect
	Earthquake Effect
	Rain       Effect
}

// IsZero reports whether no load effect was provided at all.
func (e LoadEffects) IsZero() bool {
	for _, v := range []Effect{e.Dead, e.Live, e.Roof, e.Wind, e.Earthquake, e.Rain} {
		if v.Axial != 0 || v.Moment != 0 {
			return false
		}
	}
	return true
}

// Factored calculates the factored demand pair (Pu, Mu) for the combination.
func (lc LoadCombination) Factored(e LoadEffects) Effect {
	return Effect{
		Axial: lc.Dead*e.Dead.Axial +
			lc.Live*e.Live.Axial +
			lc.Roof*e.Roof.Axial +
			lc.Wind*e.Wind.Axial +
			lc.Earthquake*e.Earthquake.Axial +
			lc.Rain*e.Rain.Axial,
		Moment: lc.Dead*e.Dead.Moment +
			lc.Live*e.Live.Moment +
			lc.Roof*e.Roof.Moment +
			lc.Wind*e.Wind.Moment +
			lc.Earthquake*e.Earthquake.Moment +
			lc.Rain*e.Rain.Moment,
	}
}

// GoverningDemand finds the combination producing the largest factored axial
// load. Ties in axial are broken by the larger factored moment.
func GoverningDemand(e LoadEffects, combinations []LoadCombination) (Effect, LoadCombination) {
	var governing Effect
	var governingCombo LoadCombination

	for i, combo := range combinations {
		d := combo.Factored(e)
		if i == 0 || d.Axial > governing.Axial ||
			(d.Axial == governing.Axial && d.Moment > governing.Moment) {
			governing = d
			governingCombo = combo
		}
	}

	return governing, governingCombo
}
