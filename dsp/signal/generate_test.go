package signal

import (
	"math"
	"testing"

	"github.com/fabio-terranova/nodex/dsp/core"
	"github.com/fabio-terranova/nodex/internal/testutil"
)

func TestSine_ReferenceEighthCycle(t *testing.T) {
	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(8)})

	got, err := g.Sine(1, 1, 0, 0, 8)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}

	s := math.Sqrt2 / 2
	want := []float64{0, s, 1, s, 0, -s, -1, -s}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestSine_PhaseAndOffset(t *testing.T) {
	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(1000)})

	got, err := g.Sine(50, 2, math.Pi/2, 1, 4)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}

	for i, v := range got {
		want := 2*math.Cos(2*math.Pi*50*float64(i)/1000) + 1
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("sample %d: %v, want %v", i, v, want)
		}
	}
}

func TestSine_Validation(t *testing.T) {
	g := NewGenerator(nil)
	if _, err := g.Sine(10, 1, 0, 0, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestWhiteNoise_DeterministicPerSeed(t *testing.T) {
	a := NewGenerator(nil, WithSeed(7))
	b := NewGenerator(nil, WithSeed(7))
	c := NewGenerator(nil, WithSeed(8))

	na, err := a.WhiteNoise(1, 512)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}
	nb, _ := b.WhiteNoise(1, 512)
	nc, _ := c.WhiteNoise(1, 512)

	testutil.RequireSliceNearlyEqual(t, na, nb, 0)

	diff, err := testutil.MaxAbsDiff(na, nc)
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if diff == 0 {
		t.Fatal("different seeds produced identical noise")
	}

	for i, v := range na {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
	}
}

func TestImpulse(t *testing.T) {
	g := NewGenerator(nil)
	got, err := g.Impulse(8)
	if err != nil {
		t.Fatalf("Impulse: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 0, 0, 0, 0, 0, 0, 0}, 0)
}

func TestTimeVector(t *testing.T) {
	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(100)})
	got, err := g.TimeVector(3)
	if err != nil {
		t.Fatalf("TimeVector: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.01, 0.02}, 1e-15)
}

func TestNormalize(t *testing.T) {
	got, err := Normalize([]float64{1, -4, 2}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.25, -1, 0.5}, 1e-15)

	zeros, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, zeros, []float64{0, 0}, 0)

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
}
