package column

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gorcc/internal/aci"
)

func TestFindRoot(t *testing.T) {
	// x² - 4 has a root at 2; seed near it.
	got, err := findRoot(func(x float64) float64 { return x*x - 4 }, 3)
	if err != nil {
		t.Fatalf("findRoot failed: %v", err)
	}
	if math.Abs(got-2) > 1e-6 {
		t.Errorf("root = %v, want 2", got)
	}
}

func TestFindRootNonConvergence(t *testing.T) {
	// A constant residual can never converge.
	_, err := findRoot(func(x float64) float64 { return 1 }, 10)
	if err == nil {
		t.Fatal("findRoot should have failed")
	}
	if _, ok := err.(*NonConvergenceError); !ok {
		t.Errorf("error type = %T, want *NonConvergenceError", err)
	}
}

func TestNeutralAxisClosedForms(t *testing.T) {
	col := testColumn()
	dt := 192.0
	ystrain := col.Fy / aci.Es // 0.0021

	tests := []struct {
		point int
		want  float64
	}{
		{4, dt * 0.003 / (ystrain/2 + 0.003)},
		{5, dt * 0.003 / (ystrain + 0.003)},
		{6, dt * 0.003 / (ystrain + 2*0.003)},
	}

	for _, tt := range tests {
		got, err := col.NeutralAxisDepth(Major, tt.point)
		if err != nil {
			t.Fatalf("NeutralAxisDepth(point %d) failed: %v", tt.point, err)
		}
		// Closed forms are exact, no iteration involved.
		if got != tt.want {
			t.Errorf("point %d: c = %v, want %v", tt.point, got, tt.want)
		}
	}

	// Balanced condition spelled out for fy = 420.
	balanced, _ := col.NeutralAxisDepth(Major, 5)
	if want := 192 * 0.003 / (420.0/200000 + 0.003); math.Abs(balanced-want) > 1e-12 {
		t.Errorf("balanced c = %v, want %v", balanced, want)
	}
}

func TestNeutralAxisZeroTensionStress(t *testing.T) {
	col := testColumn()

	c, err := col.NeutralAxisDepth(Major, 3)
	if err != nil {
		t.Fatalf("NeutralAxisDepth(point 3) failed: %v", err)
	}

	// At the solution the derived tension steel stress balances the
	// displaced-concrete deduction: 600(c-dt)/c = 0.85 f'c.
	dt := 192.0
	residual := 600*(c-dt)/c - aci.Alpha1*col.Fc
	if math.Abs(residual) > 1e-6 {
		t.Errorf("condition 3 residual = %v at c = %v, want ~0", residual, c)
	}
}

func TestNeutralAxisMaxCompression(t *testing.T) {
	col := testColumn()

	c, err := col.NeutralAxisDepth(Major, 2)
	if err != nil {
		t.Fatalf("NeutralAxisDepth(point 2) failed: %v", err)
	}
	if c <= 0 {
		t.Fatalf("c = %v, want positive", c)
	}

	// Verify equilibrium at the solution against the 0.8Po cap.
	as1, _ := SteelArea(col.BarMain, col.BarsAlongB)
	asTotal, _ := SteelArea(col.BarMain, col.TotalBars())
	target := MaxNominalAxial(col.Width, col.Height, asTotal, col.Fc, col.Fy)

	fConcrete, _ := ConcreteForce(c, col.Width, col.Fc)
	total := fConcrete + SteelForce(c, 192, as1, col.Fc) + SteelForce(c, 58, as1, col.Fc)
	if math.Abs(total-target) > 1e-6 {
		t.Errorf("axial force at solution = %v, want %v", total, target)
	}
}

func TestNeutralAxisPureBending(t *testing.T) {
	col := testColumn()

	c, err := col.NeutralAxisDepth(Major, 7)
	if err != nil {
		t.Fatalf("NeutralAxisDepth(point 7) failed: %v", err)
	}

	as1, _ := SteelArea(col.BarMain, col.BarsAlongB)
	fConcrete, _ := ConcreteForce(c, col.Width, col.Fc)
	total := fConcrete +
		SteelForceFromStress(-col.Fy, as1, col.Fc) +
		SteelForce(c, 58, as1, col.Fc)
	if math.Abs(total) > 1e-6 {
		t.Errorf("net axial force at solution = %v, want ~0", total)
	}
}

func TestNeutralAxisInitialGuessOverride(t *testing.T) {
	col := testColumn()

	canonical, err := col.NeutralAxisDepth(Major, 7)
	if err != nil {
		t.Fatal(err)
	}
	overridden, err := col.NeutralAxisDepth(Major, 7, 80)
	if err != nil {
		t.Fatalf("NeutralAxisDepth with override failed: %v", err)
	}
	if math.Abs(canonical-overridden) > 1e-6 {
		t.Errorf("override converged to %v, canonical to %v", overridden, canonical)
	}
}

func TestNeutralAxisInvalidPoint(t *testing.T) {
	col := testColumn()
	for _, point := range []int{0, 1, 8, 9} {
		if _, err := col.NeutralAxisDepth(Major, point); err == nil {
			t.Errorf("point %d should have no neutral-axis condition", point)
		}
	}
}
