package column

import (
	"log/slog"
	"math"

	"github.com/alexiusacademia/gorcc/internal/aci"
)

const (
	solveTol     = 1e-9
	solveMaxIter = 100
)

// findRoot locates a root of f near x0 using the secant method. The second
// seed is x0 perturbed by 1%. Convergence is judged on the relative step
// size or a vanishing residual.
func findRoot(f func(float64) float64, x0 float64) (float64, error) {
	x1 := x0 * 1.01
	if x1 == x0 {
		x1 = x0 + 1
	}

	f0, f1 := f(x0), f(x1)
	for i := 0; i < solveMaxIter; i++ {
		if math.Abs(f1) <= solveTol {
			return x1, nil
		}
		denom := f1 - f0
		if denom == 0 {
			return 0, &NonConvergenceError{Iterations: i, Residual: f1}
		}

		x2 := x1 - f1*(x1-x0)/denom
		if x2 <= 0 {
			// The residuals divide by c; keep the iterate positive.
			x2 = x1 / 2
		}

		x0, f0 = x1, f1
		x1, f1 = x2, f(x2)
		slog.Debug("secant iteration", "iter", i, "c", x1, "residual", f1)

		if math.Abs(x1-x0) <= solveTol*math.Max(1, math.Abs(x1)) {
			return x1, nil
		}
	}

	return 0, &NonConvergenceError{Iterations: solveMaxIter, Residual: f1}
}

// neutralAxis returns the neutral-axis depth c for one of the six interior
// diagram conditions (points 2-7):
//
//	2 - moment capacity at maximum axial compression (root-found)
//	3 - zero stress at the tension steel layer (root-found)
//	4 - tension steel stress equal to 0.5fy (closed form)
//	5 - balanced condition, tension steel at yield strain (closed form)
//	6 - tension-controlled threshold, strain = εy + εcu (closed form)
//	7 - pure bending, zero net axial force (root-found)
//
// A positive cInitial overrides the canonical initial guess of the
// root-found conditions to aid convergence for degenerate geometries.
func (s axisSection) neutralAxis(point int, dt, dc, as1, as2, asTotal float64, cInitial ...float64) (float64, error) {
	beta1, err := aci.Beta1(s.fc)
	if err != nil {
		return 0, err
	}

	guess := func(canonical float64) float64 {
		if len(cInitial) > 0 && cInitial[0] > 0 {
			return cInitial[0]
		}
		return canonical
	}

	solve := func(f func(float64) float64, c0 float64) (float64, error) {
		c, err := findRoot(f, c0)
		if err != nil {
			if nce, ok := err.(*NonConvergenceError); ok {
				nce.Point = point
			}
			return 0, err
		}
		return c, nil
	}

	ystrain := s.fy / aci.Es

	switch point {
	case 2:
		target := MaxNominalAxial(s.b, s.h, asTotal, s.fc, s.fy)
		return solve(func(c float64) float64 {
			return concreteForce(c, s.b, s.fc, beta1) +
				SteelForce(c, dt, as1, s.fc) +
				SteelForce(c, dc, as2, s.fc) - target
		}, guess(s.h))
	case 3:
		return solve(func(c float64) float64 {
			return SteelForce(c, dt, as1, s.fc)
		}, guess(dt))
	case 4:
		return dt * aci.EpsilonCU / (ystrain/2 + aci.EpsilonCU), nil
	case 5:
		return dt * aci.EpsilonCU / (ystrain + aci.EpsilonCU), nil
	case 6:
		return dt * aci.EpsilonCU / (ystrain + 2*aci.EpsilonCU), nil
	case 7:
		// The tension steel is guaranteed to yield in pure bending.
		return solve(func(c float64) float64 {
			return concreteForce(c, s.b, s.fc, beta1) +
				SteelForceFromStress(-s.fy, as1, s.fc) +
				SteelForce(c, dc, as2, s.fc)
		}, guess(dc))
	}

	return 0, inputErrorf("no neutral-axis condition for point %d", point)
}

// NeutralAxisDepth solves the neutral-axis depth for one of the interior
// diagram points (2-7) about the given axis. An optional positive cInitial
// overrides the canonical initial guess.
func (col *Column) NeutralAxisDepth(axis Axis, point int, cInitial ...float64) (float64, error) {
	if point < 2 || point > 7 {
		return 0, inputErrorf("no neutral-axis condition for point %d", point)
	}
	if err := col.Validate(); err != nil {
		return 0, err
	}

	s := col.axisSection(axis)
	dt, dc := EffectiveDepths(s.h, s.cover, s.dMain, s.dTrans)
	as1, err := SteelArea(s.dMain, s.nBar)
	if err != nil {
		return 0, err
	}
	asTotal, err := SteelArea(s.dMain, s.nBarTotal)
	if err != nil {
		return 0, err
	}

	return s.neutralAxis(point, dt, dc, as1, as1, asTotal, cInitial...)
}
