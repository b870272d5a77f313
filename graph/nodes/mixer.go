package nodes

import (
	"fmt"

	"github.com/fabio-terranova/nodex/graph"
)

// MixerParams configures a Mixer.
type MixerParams struct {
	Inputs int       `json:"inputs"`
	Gains  []float64 `json:"gains"`
}

// DefaultMixerParams returns the editor defaults.
func DefaultMixerParams() MixerParams {
	return MixerParams{Inputs: defaultInputs}
}

// Mixer sums its inputs with per-input gains on the "Out" port. Inputs are
// zero-padded at the tail to the longest connected array first. Input ports
// are named "In 1" .. "In k".
type Mixer struct {
	node   *graph.Node
	inputs []*graph.In[[]float64]
	gains  []float64
}

// NewMixer creates a Mixer with the given input count. Missing gains
// default to unity; surplus gains are rejected.
func NewMixer(name string, params MixerParams) (*Mixer, error) {
	if params.Inputs < 1 {
		return nil, fmt.Errorf("%w: mixer needs at least one input, got %d", graph.ErrInvalidParameter, params.Inputs)
	}
	if len(params.Gains) > params.Inputs {
		return nil, fmt.Errorf("%w: %d gains for %d inputs", graph.ErrInvalidParameter, len(params.Gains), params.Inputs)
	}

	gains := make([]float64, params.Inputs)
	for i := range gains {
		gains[i] = defaultGain
	}
	copy(gains, params.Gains)

	m := &Mixer{
		node:  graph.NewNode(name, "Mixer"),
		gains: gains,
	}
	for i := 0; i < params.Inputs; i++ {
		port := graph.AddInput(m.node, fmt.Sprintf("In %d", i+1), []float64(nil))
		m.inputs = append(m.inputs, port)
	}
	graph.AddOutput(m.node, "Out", m.mix)

	return m, nil
}

func (m *Mixer) mix() ([]float64, error) {
	series := make([][]float64, len(m.inputs))

	length := 0
	for i, in := range m.inputs {
		data, err := in.Value()
		if err != nil {
			return nil, err
		}
		series[i] = data
		if len(data) > length {
			length = len(data)
		}
	}

	// Tail zero-padding to the longest input falls out of only summing the
	// samples each input actually has.
	out := make([]float64, length)
	for i, data := range series {
		gain := m.gains[i]
		for j, v := range data {
			out[j] += gain * v
		}
	}

	return out, nil
}

// Gains returns the per-input gain values.
func (m *Mixer) Gains() []float64 { return m.gains }

// SetGain updates one input gain.
func (m *Mixer) SetGain(index int, gain float64) error {
	if index < 0 || index >= len(m.gains) {
		return fmt.Errorf("%w: gain index %d of %d", graph.ErrInvalidParameter, index, len(m.gains))
	}
	m.gains[index] = gain
	return nil
}

// Base returns the node core.
func (m *Mixer) Base() *graph.Node { return m.node }

// Type returns the registry tag.
func (m *Mixer) Type() string { return TypeMixer }

// Parameters implements graph.Operator.
func (m *Mixer) Parameters() map[string]any {
	return map[string]any{
		"inputs": len(m.inputs),
		"gains":  m.gains,
	}
}

// Render implements graph.Operator.
func (m *Mixer) Render(ctx graph.RenderContext) {
	ctx.Text(fmt.Sprintf("%d inputs", len(m.inputs)))
}
