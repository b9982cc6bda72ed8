package column

import (
	"math"

	"github.com/alexiusacademia/gorcc/internal/aci"
)

// Column represents a rectangular tied reinforced-concrete column section.
// Main bars are laid out along the section perimeter with equal counts on
// opposite faces; corner bars are shared between adjacent faces.
type Column struct {
	// Geometry (mm)
	Width  float64 `json:"b" yaml:"b"`         // b - cross-sectional width
	Height float64 `json:"h" yaml:"h"`         // h - cross-sectional height
	Cover  float64 `json:"cover" yaml:"cover"` // clear concrete cover

	// Reinforcement (mm)
	BarMain  float64 `json:"d_main" yaml:"d_main"`   // main bar diameter
	BarTrans float64 `json:"d_trans" yaml:"d_trans"` // tie diameter, 0 if cover already accounts for it

	// Number of main bars along each face
	BarsAlongB int `json:"n_bar_b" yaml:"n_bar_b"`
	BarsAlongH int `json:"n_bar_h" yaml:"n_bar_h"`

	// Materials (MPa)
	Fc float64 `json:"fc" yaml:"fc"` // f'c - concrete compressive strength
	Fy float64 `json:"fy" yaml:"fy"` // fy - steel yield strength
}

// SectionProperties holds derived cross-section properties.
type SectionProperties struct {
	GrossArea     float64 // Ag (mm²)
	SteelArea     float64 // total As (mm²)
	Rho           float64 // As / Ag
	ClearSpacingB float64 // clear bar spacing along width (mm)
	ClearSpacingH float64 // clear bar spacing along height (mm)
}

// MaterialProperties holds derived material properties.
type MaterialProperties struct {
	Ec          float64 // concrete modulus of elasticity (MPa)
	Beta1       float64 // stress block factor
	EpsilonCU   float64 // ultimate concrete strain
	Es          float64 // steel modulus of elasticity (MPa)
	YieldStrain float64 // fy / Es
}

// Validate checks the column definition against input requirements.
func (col *Column) Validate() error {
	if col.Width <= 0 || col.Height <= 0 {
		return inputErrorf("invalid column dimensions: b=%.2f, h=%.2f", col.Width, col.Height)
	}
	if col.Cover <= 0 {
		return inputErrorf("invalid clear cover: %.2f", col.Cover)
	}
	if !aci.IsStdRebarSize(col.BarMain) {
		return inputErrorf("main bar size %.0fmm is not a standard size", col.BarMain)
	}
	if col.BarTrans != 0 && !aci.IsStdRebarSize(col.BarTrans) {
		return inputErrorf("tie bar size %.0fmm is not a standard size", col.BarTrans)
	}
	if col.BarsAlongB < 2 || col.BarsAlongH < 2 {
		return inputErrorf("provide at least two (2) main bars along each face")
	}
	if col.Fc < aci.MinFc {
		return inputErrorf("f'c must be at least %.0f MPa, got %.2f", aci.MinFc, col.Fc)
	}
	if col.Fy <= 0 {
		return inputErrorf("fy must be positive, got %.2f", col.Fy)
	}
	return nil
}

// TotalBars returns the number of main bars around the perimeter. Corner
// bars are counted once.
func (col *Column) TotalBars() int {
	return 2*col.BarsAlongB + 2*(col.BarsAlongH-2)
}

// EffectiveDepths calculates the effective depth at the tension side (dt)
// and at the compression side (dc). A zero dTrans means the cover already
// accounts for the tie bar.
func EffectiveDepths(h, cover, dMain, dTrans float64) (dt, dc float64) {
	dt = h - cover - dTrans - dMain/2
	dc = cover + dTrans + dMain/2
	return dt, dc
}

// SteelArea calculates the total area of nBar main bars of diameter dMain,
// rounded to 3 decimal places.
func SteelArea(dMain float64, nBar int) (float64, error) {
	if nBar < 2 {
		return 0, inputErrorf("invalid number of rebars: provide at least two (2) pieces")
	}
	if !aci.IsStdRebarSize(dMain) {
		return 0, inputErrorf("rebar size %.0fmm is not a standard size", dMain)
	}
	as := float64(nBar) * dMain * dMain * math.Pi / 4
	return math.Round(as*1000) / 1000, nil
}

// SectionProperties derives the gross area, total steel area, steel ratio
// and clear bar spacing along both faces.
func (col *Column) SectionProperties() (*SectionProperties, error) {
	if err := col.Validate(); err != nil {
		return nil, err
	}

	ag := col.Width * col.Height
	as, err := SteelArea(col.BarMain, col.TotalBars())
	if err != nil {
		return nil, err
	}

	spacing := func(dim float64, nBar int) float64 {
		return (dim - 2*col.Cover - 2*col.BarTrans - float64(nBar)*col.BarMain) / float64(nBar-1)
	}

	return &SectionProperties{
		GrossArea:     ag,
		SteelArea:     as,
		Rho:           as / ag,
		ClearSpacingB: spacing(col.Width, col.BarsAlongB),
		ClearSpacingH: spacing(col.Height, col.BarsAlongH),
	}, nil
}

// MaterialProperties derives the standard secondary material properties.
func (col *Column) MaterialProperties() (*MaterialProperties, error) {
	beta1, err := aci.Beta1(col.Fc)
	if err != nil {
		return nil, err
	}
	return &MaterialProperties{
		Ec:          aci.ConcreteModulus(col.Fc),
		Beta1:       beta1,
		EpsilonCU:   aci.EpsilonCU,
		Es:          aci.Es,
		YieldStrain: col.Fy / aci.Es,
	}, nil
}
