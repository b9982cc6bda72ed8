package column

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gorcc/internal/aci"
)

// Verdict status codes.
const (
	StatusOK = "OK"
	StatusNG = "NG"
)

// AdequacyResult is the verdict of a demand-vs-capacity check.
type AdequacyResult struct {
	IsAdequate bool
	Status     string
	Summary    string
}

// DetailingResult is the verdict of the reinforcement detailing checks.
type DetailingResult struct {
	IsRhoAdequate     bool
	IsSpacingAdequate bool
	Rho               float64
	ClearSpacing      float64 // smallest provided clear spacing (mm)
	RequiredSpacing   float64 // minimum required clear spacing (mm)
}

// CheckAdequacy evaluates a factored demand (Pu in kN, Mu in kN-m) against
// the capacity envelope of one axis. A Pu outside the axial capacity range
// or a Mu above the interpolated moment capacity is a normal NG verdict,
// not an error. A NaN Pu is a missing input and is rejected.
func (d *InteractionDiagram) CheckAdequacy(pu, mu float64, axis Axis) (*AdequacyResult, error) {
	if math.IsNaN(pu) {
		return nil, inputErrorf("provide at least a Pu value as input")
	}

	points := d.Points(axis)
	minPn, maxPn := points[0].PhiPn, points[0].PhiPn
	for _, p := range points[1:] {
		minPn = math.Min(minPn, p.PhiPn)
		maxPn = math.Max(maxPn, p.PhiPn)
	}

	if pu < minPn || pu > maxPn {
		return &AdequacyResult{
			Status:  StatusNG,
			Summary: "Pu exceeds the axial capacity range",
		}, nil
	}

	if mu != 0 {
		mu = math.Abs(mu)

		capMn, err := interpolateMoment(points, pu)
		if err != nil {
			return nil, err
		}
		if mu > capMn {
			return &AdequacyResult{
				Status:  StatusNG,
				Summary: "Mu exceeds the moment capacity",
			}, nil
		}
	}

	return &AdequacyResult{
		IsAdequate: true,
		Status:     StatusOK,
		Summary:    "load demand does not exceed capacity",
	}, nil
}

// interpolateMoment sorts the capacity points ascending by axial strength,
// finds the consecutive pair bracketing pu, and linearly interpolates the
// moment capacity between them. pu is expected to lie within the axial
// range; a failed bracket search is an explicit error.
func interpolateMoment(points []CapacityPoint, pu float64) (float64, error) {
	sorted := make([]CapacityPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PhiPn < sorted[j].PhiPn })

	for i := 0; i < len(sorted)-1; i++ {
		pn1, pn2 := sorted[i].PhiPn, sorted[i+1].PhiPn
		if pn1 <= pu && pu <= pn2 {
			mn1, mn2 := sorted[i].PhiMn, sorted[i+1].PhiMn
			if pn1 == pn2 {
				// Degenerate bracket; take the conservative capacity.
				return math.Min(mn1, mn2), nil
			}
			return mn1 - (pn1-pu)*(mn1-mn2)/(pn1-pn2), nil
		}
	}

	return 0, inputErrorf("no capacity pair brackets Pu = %.3f kN; moment interpolation failed", pu)
}

// CheckDetailing evaluates the reinforcement detailing requirements per
// ACI 318-19: the steel ratio must fall within [0.01, 0.08], and the
// smallest clear bar spacing must exceed the greatest of 40mm, 1.5 times
// the main bar diameter, and 4/3 the nominal aggregate size.
func CheckDetailing(props *SectionProperties, dMain float64) *DetailingResult {
	required := math.Max(40, math.Max(1.5*dMain, math.Round(4.0/3.0*aci.AggregateSize)))
	provided := math.Min(props.ClearSpacingB, props.ClearSpacingH)

	return &DetailingResult{
		IsRhoAdequate:     props.Rho >= aci.MinSteelRatio && props.Rho <= aci.MaxSteelRatio,
		IsSpacingAdequate: provided > required,
		Rho:               props.Rho,
		ClearSpacing:      provided,
		RequiredSpacing:   required,
	}
}

// CheckDetailing evaluates the detailing requirements for the column.
func (col *Column) CheckDetailing() (*DetailingResult, error) {
	props, err := col.SectionProperties()
	if err != nil {
		return nil, err
	}
	return CheckDetailing(props, col.BarMain), nil
}
