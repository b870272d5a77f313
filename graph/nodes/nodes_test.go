package nodes

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabio-terranova/nodex/graph"
	"github.com/fabio-terranova/nodex/internal/testutil"
)

// fakeRenderContext records render calls for assertions.
type fakeRenderContext struct {
	plots map[string][]float64
	texts []string
}

func newFakeRenderContext() *fakeRenderContext {
	return &fakeRenderContext{plots: map[string][]float64{}}
}

func (c *fakeRenderContext) Plot(label string, series []float64) {
	c.plots[label] = series
}

func (c *fakeRenderContext) Text(msg string) {
	c.texts = append(c.texts, msg)
}

func TestSine_Output(t *testing.T) {
	g := graph.New()
	sine, err := NewSine("sine", SineParams{Samples: 8, Frequency: 1, Amplitude: 1, SampleRate: 8})
	require.NoError(t, err)
	require.NoError(t, g.Add(sine))

	data, err := graph.OutputValue[[]float64](sine.Base(), "Out")
	require.NoError(t, err)

	s := math.Sqrt2
	testutil.RequireSliceNearlyEqual(t, data, []float64{0, s / 2, 1, s / 2, 0, -s / 2, -1, -s / 2}, 1e-12)
}

func TestSine_InvalidParams(t *testing.T) {
	_, err := NewSine("s", SineParams{Samples: 0, SampleRate: 1000})
	require.ErrorIs(t, err, graph.ErrInvalidParameter)

	_, err = NewSine("s", SineParams{Samples: 10, SampleRate: 0})
	require.ErrorIs(t, err, graph.ErrInvalidParameter)
}

func TestRandom_DeterministicAcrossInstances(t *testing.T) {
	a, err := NewRandom("a", RandomParams{Samples: 256})
	require.NoError(t, err)
	b, err := NewRandom("b", RandomParams{Samples: 256})
	require.NoError(t, err)

	g := graph.New()
	require.NoError(t, g.Add(a))
	require.NoError(t, g.Add(b))

	da, err := graph.OutputValue[[]float64](a.Base(), "Out")
	require.NoError(t, err)
	db, err := graph.OutputValue[[]float64](b.Base(), "Out")
	require.NoError(t, err)

	assert.Equal(t, da, db)
	require.Len(t, da, 256)
}

func TestMixer_PadsAndSums(t *testing.T) {
	g := graph.New()

	short := newConstSource("short", []float64{1, 1, 1})
	long := newConstSource("long", []float64{0, 0, 0, 0, 0})
	mixer, err := NewMixer("mix", MixerParams{Inputs: 2, Gains: []float64{1, 1}})
	require.NoError(t, err)

	require.NoError(t, g.Add(short))
	require.NoError(t, g.Add(long))
	require.NoError(t, g.Add(mixer))

	require.NoError(t, g.Connect(short.Base().Output("Out"), mixer.Base().Input("In 1")))
	require.NoError(t, g.Connect(long.Base().Output("Out"), mixer.Base().Input("In 2")))

	out, err := graph.OutputValue[[]float64](mixer.Base(), "Out")
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, out, []float64{1, 1, 1, 0, 0}, 1e-15)
}

func TestMixer_GainDefaultsAndValidation(t *testing.T) {
	m, err := NewMixer("m", MixerParams{Inputs: 3, Gains: []float64{0.5}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1}, m.Gains())

	_, err = NewMixer("m", MixerParams{Inputs: 0})
	require.ErrorIs(t, err, graph.ErrInvalidParameter)

	_, err = NewMixer("m", MixerParams{Inputs: 1, Gains: []float64{1, 2}})
	require.ErrorIs(t, err, graph.ErrInvalidParameter)
}

func TestFilter_InvalidParams(t *testing.T) {
	_, err := NewFilter("f", FilterParams{Mode: 0, Type: 0, Order: 0, Cutoff: 100, SampleRate: 1000})
	require.ErrorIs(t, err, graph.ErrInvalidParameter)

	_, err = NewFilter("f", FilterParams{Mode: 2, Type: 0, Order: 2, Cutoff: 300, Cutoff2: 200, SampleRate: 1000})
	require.ErrorIs(t, err, graph.ErrInvalidParameter)
}

func TestFilter_EmptyInputYieldsEmptyOutput(t *testing.T) {
	g := graph.New()
	f, err := NewFilter("f", DefaultFilterParams())
	require.NoError(t, err)
	require.NoError(t, g.Add(f))

	out, err := graph.OutputValue[[]float64](f.Base(), "Out")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFilter_BandpassKeepsCentreTone(t *testing.T) {
	g := graph.New()

	centre, err := NewSine("centre", SineParams{Samples: 2000, Frequency: 150, Amplitude: 1, SampleRate: 1000})
	require.NoError(t, err)
	f, err := NewFilter("bp", FilterParams{
		Mode: 2, Type: 0, Order: 2, Cutoff: 100, Cutoff2: 200, SampleRate: 1000,
	})
	require.NoError(t, err)

	require.NoError(t, g.Add(centre))
	require.NoError(t, g.Add(f))
	require.NoError(t, g.Connect(centre.Base().Output("Out"), f.Base().Input("In")))

	out, err := graph.OutputValue[[]float64](f.Base(), "Out")
	require.NoError(t, err)

	// In-band tone survives at near-unity amplitude after settling.
	peak := 0.0
	for _, v := range out[500:] {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	assert.Greater(t, peak, 0.9)
	assert.Less(t, peak, 1.1)
}

func TestCSV_ColumnsBecomeOutputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("left,right\n1,10\n2,20\n3,30\n"), 0o644))

	g := graph.New()
	c, err := NewCSV("csv", CSVParams{FilePath: path})
	require.NoError(t, err)
	require.NoError(t, g.Add(c))

	assert.Equal(t, []string{"left", "right"}, c.Columns())

	right, err := graph.OutputValue[[]float64](c.Base(), "right")
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, right, []float64{10, 20, 30}, 1e-12)
}

func TestCSV_Missing(t *testing.T) {
	_, err := NewCSV("csv", CSVParams{FilePath: filepath.Join(t.TempDir(), "nope.csv")})
	require.Error(t, err)

	_, err = NewCSV("csv", CSVParams{})
	require.ErrorIs(t, err, graph.ErrInvalidParameter)
}

func TestViewer_RenderPlotsData(t *testing.T) {
	g := graph.New()
	src := newConstSource("src", []float64{1, 2, 3, 4})
	v, err := NewViewer("view", DefaultViewerParams())
	require.NoError(t, err)

	require.NoError(t, g.Add(src))
	require.NoError(t, g.Add(v))
	require.NoError(t, g.Connect(src.Base().Output("Out"), v.Base().Input("In")))

	ctx := newFakeRenderContext()
	v.Render(ctx)

	assert.Equal(t, []float64{1, 2, 3, 4}, ctx.plots["Time plot"])
	assert.NotEmpty(t, ctx.plots["Spectrum"])
}

func TestViewer_RenderWithoutData(t *testing.T) {
	g := graph.New()
	v, err := NewViewer("view", DefaultViewerParams())
	require.NoError(t, err)
	require.NoError(t, g.Add(v))

	ctx := newFakeRenderContext()
	v.Render(ctx)
	assert.Equal(t, []string{"No data connected."}, ctx.texts)
}

func TestMultiViewer_Ports(t *testing.T) {
	v, err := NewMultiViewer("mv", MultiViewerParams{Inputs: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"In 1", "In 2", "In 3"}, v.Base().InputNames())

	_, err = NewMultiViewer("mv", MultiViewerParams{Inputs: 0})
	require.ErrorIs(t, err, graph.ErrInvalidParameter)
}

// constSource is a minimal test source emitting a fixed array.
type constSource struct {
	node *graph.Node
	data []float64
}

func newConstSource(name string, data []float64) *constSource {
	s := &constSource{node: graph.NewNode(name, "Const"), data: data}
	graph.AddOutput(s.node, "Out", func() ([]float64, error) {
		return s.data, nil
	})
	return s
}

func (s *constSource) Base() *graph.Node          { return s.node }
func (s *constSource) Type() string               { return "ConstNode" }
func (s *constSource) Parameters() map[string]any { return map[string]any{} }
func (s *constSource) Render(graph.RenderContext) {}
