package aci

import (
	"math"
	"testing"
)

func TestBeta1(t *testing.T) {
	tests := []struct {
		name    string
		fc      float64
		want    float64
		wantErr bool
	}{
		{"lower bound", 17, 0.85, false},
		{"normal strength", 21, 0.85, false},
		{"upper normal bound", 28, 0.85, false},
		{"reduced at 35", 35, 0.80, false},
		{"reduced at 42", 42, 0.75, false},
		{"high strength cap", 55, 0.85, false},
		{"above high strength", 70, 0.85, false},
		{"below code minimum", 16, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Beta1(tt.fc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Beta1(%v) error = %v, wantErr %v", tt.fc, err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Beta1(%v) = %v, want %v", tt.fc, got, tt.want)
			}
		})
	}
}

func TestBeta1Monotonic(t *testing.T) {
	// β1 stays within [0.65, 0.85] and is non-increasing on the
	// transition range before the high-strength cutoff.
	prev := math.Inf(1)
	for fc := 28.0; fc < 55.0; fc += 0.25 {
		got, err := Beta1(fc)
		if err != nil {
			t.Fatalf("Beta1(%v) unexpected error: %v", fc, err)
		}
		if got < 0.65 || got > 0.85 {
			t.Fatalf("Beta1(%v) = %v, outside [0.65, 0.85]", fc, got)
		}
		if got > prev {
			t.Fatalf("Beta1(%v) = %v increased from %v", fc, got, prev)
		}
		prev = got
	}
}

func TestPhi(t *testing.T) {
	const fy = 420.0
	ystrain := fy / Es // 0.0021

	tests := []struct {
		name    string
		tstrain float64
		want    float64
	}{
		{"compression controlled", 0.001, 0.65},
		{"exactly at yield strain", ystrain, 0.65},
		{"mid transition", ystrain + 0.0015, 0.775},
		{"exactly at tension controlled", ystrain + 0.003, 0.90},
		{"tension controlled", 0.01, 0.90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phi(tt.tstrain, fy); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Phi(%v, %v) = %v, want %v", tt.tstrain, fy, got, tt.want)
			}
		})
	}
}

func TestPhiContinuity(t *testing.T) {
	const fy = 420.0
	ystrain := fy / Es

	// Approaching the boundaries from inside the transition zone must
	// converge to the boundary values.
	const eps = 1e-9
	if got := Phi(ystrain+eps, fy); math.Abs(got-0.65) > 1e-6 {
		t.Errorf("Phi just above yield strain = %v, want ~0.65", got)
	}
	if got := Phi(ystrain+0.003-eps, fy); math.Abs(got-0.90) > 1e-6 {
		t.Errorf("Phi just below tension-controlled strain = %v, want ~0.90", got)
	}
}

func TestSteelStress(t *testing.T) {
	const fy = 420.0

	tests := []struct {
		name    string
		c, d    float64
		want    float64
	}{
		{"compression unclipped", 200, 150, 600 * 50 / 200.0},
		{"tension unclipped", 150, 200, 600 * -50 / 150.0},
		{"compression yields", 500, 50, fy},
		{"tension yields", 50, 500, -fy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SteelStress(tt.c, tt.d, fy); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SteelStress(%v, %v, %v) = %v, want %v", tt.c, tt.d, fy, got, tt.want)
			}
		})
	}
}

func TestConcreteModulus(t *testing.T) {
	want := 4700 * math.Sqrt(21)
	if got := ConcreteModulus(21); math.Abs(got-want) > 1e-9 {
		t.Errorf("ConcreteModulus(21) = %v, want %v", got, want)
	}
}

func TestIsStdRebarSize(t *testing.T) {
	if !IsStdRebarSize(16) {
		t.Error("16mm should be a standard size")
	}
	if IsStdRebarSize(15) {
		t.Error("15mm should not be a standard size")
	}
}
