package column

import (
	"math"
	"testing"
)

func TestDiagramPointPureCompression(t *testing.T) {
	col := testColumn()

	p, err := col.DiagramPoint(Major, 1)
	if err != nil {
		t.Fatalf("DiagramPoint(1) failed: %v", err)
	}

	// Po = (0.85·21·62500 + (420 - 0.85·21)·804.248) / 1000
	// Pn = 0.8·Po, φ = 0.65
	po := (0.85*21*62500 + (420-0.85*21)*804.248) / 1000
	want := 0.8 * po * 0.65
	if math.Abs(p.PhiPn-want) > 1e-9 {
		t.Errorf("point 1 PhiPn = %v, want %v", p.PhiPn, want)
	}
	if p.PhiMn != 0 {
		t.Errorf("point 1 PhiMn = %v, want 0", p.PhiMn)
	}
}

func TestDiagramPointPureTension(t *testing.T) {
	col := testColumn()

	p, err := col.DiagramPoint(Major, 8)
	if err != nil {
		t.Fatalf("DiagramPoint(8) failed: %v", err)
	}

	want := -(420 * 804.248) / 1000 * 0.9
	if math.Abs(p.PhiPn-want) > 1e-9 {
		t.Errorf("point 8 PhiPn = %v, want %v", p.PhiPn, want)
	}
	if p.PhiMn != 0 {
		t.Errorf("point 8 PhiMn = %v, want 0", p.PhiMn)
	}
}

func TestDiagramPointPureBending(t *testing.T) {
	col := testColumn()

	p, err := col.DiagramPoint(Major, 7)
	if err != nil {
		t.Fatalf("DiagramPoint(7) failed: %v", err)
	}

	// The solved pure-bending axial force rounds to zero.
	if p.PhiPn != 0 {
		t.Errorf("point 7 PhiPn = %v, want 0", p.PhiPn)
	}
	if p.PhiMn <= 0 {
		t.Errorf("point 7 PhiMn = %v, want positive", p.PhiMn)
	}
}

func TestDiagramEnvelopeBounds(t *testing.T) {
	col := testColumn()

	d, err := col.Diagram()
	if err != nil {
		t.Fatalf("Diagram failed: %v", err)
	}

	for _, axis := range []Axis{Major, Minor} {
		points := d.Points(axis)
		top, bottom := points[0].PhiPn, points[7].PhiPn
		// Point 2 converges onto the point-1 cap; allow solver tolerance.
		const tol = 1e-3
		for _, p := range points[1:7] {
			if p.PhiPn > top+tol || p.PhiPn < bottom-tol {
				t.Errorf("%v point %d PhiPn = %v outside [%v, %v]",
					axis, p.Point, p.PhiPn, bottom, top)
			}
		}
	}
}

func TestDiagramSymmetricSection(t *testing.T) {
	// A square section with equal bar counts on all faces must produce
	// numerically identical diagrams about both axes.
	col := testColumn()

	d, err := col.Diagram()
	if err != nil {
		t.Fatalf("Diagram failed: %v", err)
	}

	for i := range d.Major {
		if math.Abs(d.Major[i].PhiPn-d.Minor[i].PhiPn) > 1e-9 ||
			math.Abs(d.Major[i].PhiMn-d.Minor[i].PhiMn) > 1e-9 {
			t.Errorf("point %d differs between axes: major (%v, %v), minor (%v, %v)",
				i+1, d.Major[i].PhiPn, d.Major[i].PhiMn, d.Minor[i].PhiPn, d.Minor[i].PhiMn)
		}
	}
}

func TestDiagramAsymmetricSection(t *testing.T) {
	col := testColumn()
	col.Height = 400
	col.BarsAlongH = 3

	d, err := col.Diagram()
	if err != nil {
		t.Fatalf("Diagram failed: %v", err)
	}

	// Bending about the major axis engages the deeper dimension; its pure
	// bending capacity must exceed the minor axis'.
	if d.Major[6].PhiMn <= d.Minor[6].PhiMn {
		t.Errorf("major pure-bending capacity %v should exceed minor %v",
			d.Major[6].PhiMn, d.Minor[6].PhiMn)
	}
	// Pure axial points do not depend on the bending axis.
	if math.Abs(d.Major[0].PhiPn-d.Minor[0].PhiPn) > 1e-9 {
		t.Errorf("pure compression differs between axes: %v vs %v",
			d.Major[0].PhiPn, d.Minor[0].PhiPn)
	}
}

func TestDiagramPointOrder(t *testing.T) {
	col := testColumn()

	d, err := col.Diagram()
	if err != nil {
		t.Fatalf("Diagram failed: %v", err)
	}

	for i, p := range d.Points(Major) {
		if p.Point != i+1 {
			t.Errorf("index %d holds point %d, want %d", i, p.Point, i+1)
		}
	}
}

func TestDiagramPointInvalidInput(t *testing.T) {
	col := testColumn()
	if _, err := col.DiagramPoint(Major, 0); err == nil {
		t.Error("point 0 should be rejected")
	}
	if _, err := col.DiagramPoint(Major, 9); err == nil {
		t.Error("point 9 should be rejected")
	}

	bad := testColumn()
	bad.Fc = 10
	if _, err := bad.Diagram(); err == nil {
		t.Error("fc below the code minimum should be rejected")
	}
}
