package polyroot

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

func TestPoly_NoRoots(t *testing.T) {
	got := Poly(nil)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("Poly(nil)=%v, want [1]", got)
	}
}

func TestPoly_RealRoots(t *testing.T) {
	// (x-2)(x-6) = x^2 - 8x + 12
	got := RealPart(Poly([]complex128{2, 6}))
	want := []float64{1, -8, 12}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Poly([2,6])=%v, want %v", got, want)
		}
	}
}

func TestPoly_ConjugatePair(t *testing.T) {
	// (x-(1+2i))(x-(1-2i)) = x^2 - 2x + 5
	roots := []complex128{complex(1, 2), complex(1, -2)}
	coeffs := Poly(roots)
	want := []float64{1, -2, 5}
	for i := range want {
		if math.Abs(real(coeffs[i])-want[i]) > 1e-12 {
			t.Fatalf("real parts=%v, want %v", RealPart(coeffs), want)
		}
		if math.Abs(imag(coeffs[i])) > 1e-12 {
			t.Fatalf("imag part not cancelled: %v", coeffs)
		}
	}
}

func TestRoots_Quadratic(t *testing.T) {
	// x^2 - 3x + 2 -> roots 1, 2
	roots, err := Roots([]float64{1, -3, 2})
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}

	re := []float64{real(roots[0]), real(roots[1])}
	sort.Float64s(re)
	if math.Abs(re[0]-1) > 1e-9 || math.Abs(re[1]-2) > 1e-9 {
		t.Fatalf("roots=%v, want 1 and 2", roots)
	}
}

func TestRoots_LeadingZerosStripped(t *testing.T) {
	roots, err := Roots([]float64{0, 0, 1, -1})
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if len(roots) != 1 || cmplx.Abs(roots[0]-1) > 1e-9 {
		t.Fatalf("roots=%v, want [1]", roots)
	}
}

func TestRoots_Constant(t *testing.T) {
	roots, err := Roots([]float64{5})
	if err != nil {
		t.Fatalf("Roots: %v", err)
	}
	if roots != nil {
		t.Fatalf("constant polynomial yielded roots %v", roots)
	}
}

func TestRoots_AllZero(t *testing.T) {
	if _, err := Roots([]float64{0, 0}); err == nil {
		t.Fatal("expected degenerate polynomial error")
	}
}

func TestDurandKerner_RoundTripWithPoly(t *testing.T) {
	want := []complex128{
		complex(0.5, 0.3),
		complex(0.5, -0.3),
		complex(-0.8, 0),
	}

	coeffs := Poly(want)
	got, err := DurandKerner(coeffs)
	if err != nil {
		t.Fatalf("DurandKerner: %v", err)
	}

	for _, w := range want {
		best := math.Inf(1)
		for _, g := range got {
			if d := cmplx.Abs(g - w); d < best {
				best = d
			}
		}
		if best > 1e-8 {
			t.Fatalf("root %v not recovered (closest %.2e away)", w, best)
		}
	}
}

func TestPolyEval(t *testing.T) {
	// x^2 + 2x + 3 at x=2 -> 11
	got := PolyEval([]complex128{1, 2, 3}, 2)
	if cmplx.Abs(got-11) > 1e-12 {
		t.Fatalf("PolyEval=%v, want 11", got)
	}
}

func TestIsConjugate(t *testing.T) {
	if !IsConjugate(complex(1, 2), complex(1, -2), 1e-12) {
		t.Fatal("conjugate pair not detected")
	}
	if IsConjugate(complex(1, 2), complex(1, 2), 1e-12) {
		t.Fatal("non-conjugate pair detected as conjugate")
	}
}
