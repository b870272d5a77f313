package nodes

import (
	"fmt"

	"github.com/fabio-terranova/nodex/dsp/core"
	"github.com/fabio-terranova/nodex/dsp/signal"
	"github.com/fabio-terranova/nodex/graph"
)

// SineParams configures a Sine source.
type SineParams struct {
	Samples    int     `json:"samples"`
	Frequency  float64 `json:"frequency"`
	Amplitude  float64 `json:"amplitude"`
	Phase      float64 `json:"phase"`
	SampleRate float64 `json:"fs"`
	Offset     float64 `json:"offset"`
}

// DefaultSineParams returns the editor defaults.
func DefaultSineParams() SineParams {
	return SineParams{
		Samples:    defaultSamples,
		Frequency:  defaultFrequency,
		Amplitude:  defaultAmplitude,
		Phase:      defaultPhase,
		SampleRate: defaultSampleRate,
		Offset:     defaultOffset,
	}
}

// Sine emits amplitude*sin(2*pi*frequency*i/fs + phase) + offset on its
// "Out" port.
type Sine struct {
	node   *graph.Node
	params SineParams
}

// NewSine creates a Sine source.
func NewSine(name string, params SineParams) (*Sine, error) {
	if params.Samples <= 0 {
		return nil, fmt.Errorf("%w: sine samples must be > 0, got %d", graph.ErrInvalidParameter, params.Samples)
	}
	if params.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sine fs must be > 0, got %g", graph.ErrInvalidParameter, params.SampleRate)
	}

	s := &Sine{
		node:   graph.NewNode(name, "Sine wave"),
		params: params,
	}
	graph.AddOutput(s.node, "Out", s.generate)
	return s, nil
}

func (s *Sine) generate() ([]float64, error) {
	gen := signal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(s.params.SampleRate)})
	return gen.Sine(s.params.Frequency, s.params.Amplitude, s.params.Phase, s.params.Offset, s.params.Samples)
}

// Base returns the node core.
func (s *Sine) Base() *graph.Node { return s.node }

// Type returns the registry tag.
func (s *Sine) Type() string { return TypeSine }

// Params returns the current parameter bundle.
func (s *Sine) Params() SineParams { return s.params }

// SetParams replaces the parameter bundle; the next frame picks it up.
func (s *Sine) SetParams(p SineParams) { s.params = p }

// Parameters implements graph.Operator.
func (s *Sine) Parameters() map[string]any {
	return map[string]any{
		"samples":   s.params.Samples,
		"frequency": s.params.Frequency,
		"amplitude": s.params.Amplitude,
		"phase":     s.params.Phase,
		"fs":        s.params.SampleRate,
		"offset":    s.params.Offset,
	}
}

// Render implements graph.Operator.
func (s *Sine) Render(ctx graph.RenderContext) {
	ctx.Text(fmt.Sprintf("f = %.2f Hz, A = %.2f, fs = %.2f Hz", s.params.Frequency, s.params.Amplitude, s.params.SampleRate))
}
