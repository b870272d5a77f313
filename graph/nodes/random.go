package nodes

import (
	"fmt"

	"github.com/fabio-terranova/nodex/dsp/signal"
	"github.com/fabio-terranova/nodex/graph"
)

// RandomParams configures a Random source.
type RandomParams struct {
	Samples int `json:"samples"`
}

// DefaultRandomParams returns the editor defaults.
func DefaultRandomParams() RandomParams {
	return RandomParams{Samples: defaultSamples}
}

// Random emits deterministic uniform noise in [-1, 1] on its "Out" port.
// The data is generated once per sample-count change, so repeated frames
// observe the same array.
type Random struct {
	node   *graph.Node
	params RandomParams
	data   []float64
}

// NewRandom creates a Random source with a fixed generator seed.
func NewRandom(name string, params RandomParams) (*Random, error) {
	if params.Samples <= 0 {
		return nil, fmt.Errorf("%w: random samples must be > 0, got %d", graph.ErrInvalidParameter, params.Samples)
	}

	r := &Random{
		node:   graph.NewNode(name, "Random data"),
		params: params,
	}
	if err := r.regenerate(); err != nil {
		return nil, err
	}

	graph.AddOutput(r.node, "Out", func() ([]float64, error) {
		return r.data, nil
	})
	return r, nil
}

func (r *Random) regenerate() error {
	gen := signal.NewGenerator(nil, signal.WithSeed(1))
	data, err := gen.WhiteNoise(1, r.params.Samples)
	if err != nil {
		return fmt.Errorf("%w: %v", graph.ErrInvalidParameter, err)
	}
	r.data = data
	return nil
}

// SetSamples changes the sample count and regenerates the data.
func (r *Random) SetSamples(samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: random samples must be > 0, got %d", graph.ErrInvalidParameter, samples)
	}
	r.params.Samples = samples
	return r.regenerate()
}

// Base returns the node core.
func (r *Random) Base() *graph.Node { return r.node }

// Type returns the registry tag.
func (r *Random) Type() string { return TypeRandom }

// Parameters implements graph.Operator.
func (r *Random) Parameters() map[string]any {
	return map[string]any{"samples": r.params.Samples}
}

// Render implements graph.Operator.
func (r *Random) Render(ctx graph.RenderContext) {
	ctx.Text(fmt.Sprintf("%d samples", r.params.Samples))
}
