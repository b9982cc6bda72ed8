package column

import (
	"math"

	"github.com/alexiusacademia/gorcc/internal/aci"
)

// Axis selects the bending axis of the interaction diagram.
type Axis int

const (
	// Major is bending about the X axis (Height acts as the depth).
	Major Axis = iota
	// Minor is bending about the Y axis (Width acts as the depth).
	Minor
)

func (a Axis) String() string {
	if a == Minor {
		return "minor (Y)"
	}
	return "major (X)"
}

// DiagramPoints is the number of canonical points per axis. The points trace
// the capacity envelope from pure axial compression (1) to pure axial
// tension (8); their count and meaning are invariant across all sections.
const DiagramPoints = 8

// CapacityPoint is one reduced-capacity coordinate of the interaction
// diagram.
type CapacityPoint struct {
	Point int     `json:"point"` // canonical point index, 1-8
	Axis  Axis    `json:"-"`
	PhiPn float64 `json:"phi_pn"` // reduced axial strength (kN)
	PhiMn float64 `json:"phi_mn"` // reduced moment strength (kN-m)
}

// InteractionDiagram holds the canonical capacity points for both bending
// axes, in point order. The sequences are not monotonic in axial load;
// consumers searching by capacity must sort locally.
type InteractionDiagram struct {
	Major [DiagramPoints]CapacityPoint
	Minor [DiagramPoints]CapacityPoint
}

// Points returns the coordinate sequence for one axis in canonical order.
func (d *InteractionDiagram) Points(axis Axis) []CapacityPoint {
	if axis == Minor {
		return d.Minor[:]
	}
	return d.Major[:]
}

// axisSection is the cross-section resolved for one bending axis: for the
// minor axis the width and height swap roles, and the bar count of the face
// parallel to the bending axis applies.
type axisSection struct {
	b, h          float64
	cover         float64
	dMain, dTrans float64
	nBar          int
	nBarTotal     int
	fc, fy        float64
}

func (col *Column) axisSection(axis Axis) axisSection {
	s := axisSection{
		b:         col.Width,
		h:         col.Height,
		cover:     col.Cover,
		dMain:     col.BarMain,
		dTrans:    col.BarTrans,
		nBar:      col.BarsAlongB,
		nBarTotal: col.TotalBars(),
		fc:        col.Fc,
		fy:        col.Fy,
	}
	if axis == Minor {
		s.b, s.h = col.Height, col.Width
		s.nBar = col.BarsAlongH
	}
	return s
}

// DiagramPoint evaluates one canonical interaction-diagram coordinate about
// the given axis. An optional positive cInitial overrides the neutral-axis
// solver's canonical initial guess for the root-found conditions.
func (col *Column) DiagramPoint(axis Axis, point int, cInitial ...float64) (CapacityPoint, error) {
	if point < 1 || point > DiagramPoints {
		return CapacityPoint{}, inputErrorf("point must be 1 to %d, got %d", DiagramPoints, point)
	}
	if err := col.Validate(); err != nil {
		return CapacityPoint{}, err
	}

	s := col.axisSection(axis)
	dt, dc := EffectiveDepths(s.h, s.cover, s.dMain, s.dTrans)
	as1, err := SteelArea(s.dMain, s.nBar)
	if err != nil {
		return CapacityPoint{}, err
	}
	asTotal, err := SteelArea(s.dMain, s.nBarTotal)
	if err != nil {
		return CapacityPoint{}, err
	}

	switch point {
	case 1:
		// Pure compression, capped at 0.8Po for tied columns.
		pn := MaxNominalAxial(s.b, s.h, asTotal, s.fc, s.fy)
		return CapacityPoint{Point: point, Axis: axis, PhiPn: pn * aci.PhiCompression}, nil
	case 8:
		// Pure tension, carried by the steel alone.
		pn := -(s.fy * asTotal) / 1000
		return CapacityPoint{Point: point, Axis: axis, PhiPn: pn * aci.PhiFlexure}, nil
	}

	beta1, err := aci.Beta1(s.fc)
	if err != nil {
		return CapacityPoint{}, err
	}

	c, err := s.neutralAxis(point, dt, dc, as1, as1, asTotal, cInitial...)
	if err != nil {
		return CapacityPoint{}, err
	}
	a := beta1 * c

	tstrain := aci.EpsilonCU * math.Abs(c-dt) / c
	phi := aci.Phi(tstrain, s.fy)

	// Actual forces with yield-clipped steel stresses (kN).
	fs1 := aci.SteelStress(c, dt, s.fy)
	fs2 := aci.SteelStress(c, dc, s.fy)
	fConcrete := concreteForce(c, s.b, s.fc, beta1)
	fSteel1 := SteelForceFromStress(fs1, as1, s.fc)
	fSteel2 := SteelForceFromStress(fs2, as1, s.fc)
	axial := fConcrete + fSteel1 + fSteel2

	// Moments about the tension steel centroid; the term on the axial force
	// re-centers the result about the section centroid. Lever arms in m.
	moment := fConcrete*(dt-a/2)/1000 +
		fSteel2*(dt-dc)/1000 +
		axial*(-(dt - s.h/2))/1000

	if point == 7 {
		// The solved pure-bending axial force is near zero; round off the
		// solver residual noise.
		axial = math.Round(axial)
	}

	return CapacityPoint{Point: point, Axis: axis, PhiPn: axial * phi, PhiMn: moment * phi}, nil
}

// Diagram builds the full two-axis interaction diagram, evaluating all 8
// canonical points about each bending axis in order.
func (col *Column) Diagram() (*InteractionDiagram, error) {
	if err := col.Validate(); err != nil {
		return nil, err
	}

	d := &InteractionDiagram{}
	for _, axis := range []Axis{Major, Minor} {
		for point := 1; point <= DiagramPoints; point++ {
			p, err := col.DiagramPoint(axis, point)
			if err != nil {
				return nil, err
			}
			if axis == Minor {
				d.Minor[point-1] = p
			} else {
				d.Major[point-1] = p
			}
		}
	}
	return d, nil
}
