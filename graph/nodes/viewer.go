package nodes

import (
	"fmt"

	"github.com/fabio-terranova/nodex/dsp/spectrum"
	"github.com/fabio-terranova/nodex/graph"
)

// ViewerParams configures a Viewer sink.
type ViewerParams struct {
	SampleRate float64 `json:"fs"`
}

// DefaultViewerParams returns the editor defaults.
func DefaultViewerParams() ViewerParams {
	return ViewerParams{SampleRate: defaultSampleRate}
}

// Viewer is a display sink: it pulls its "In" array once per frame and
// plots the time series plus its magnitude spectrum through the render
// context.
type Viewer struct {
	node   *graph.Node
	in     *graph.In[[]float64]
	params ViewerParams
}

// NewViewer creates a Viewer sink.
func NewViewer(name string, params ViewerParams) (*Viewer, error) {
	if params.SampleRate <= 0 {
		params.SampleRate = defaultSampleRate
	}

	v := &Viewer{
		node:   graph.NewNode(name, "Viewer"),
		params: params,
	}
	v.in = graph.AddInput(v.node, "In", []float64(nil))
	return v, nil
}

// Data pulls the current input array. This is the value the render hook
// displays; headless hosts use it to export sink contents.
func (v *Viewer) Data() ([]float64, error) {
	return v.in.Value()
}

// Base returns the node core.
func (v *Viewer) Base() *graph.Node { return v.node }

// Type returns the registry tag.
func (v *Viewer) Type() string { return TypeViewer }

// Parameters implements graph.Operator.
func (v *Viewer) Parameters() map[string]any {
	return map[string]any{"fs": v.params.SampleRate}
}

// Render implements graph.Operator.
func (v *Viewer) Render(ctx graph.RenderContext) {
	data, err := v.Data()
	if err != nil {
		ctx.Text(err.Error())
		return
	}
	if len(data) == 0 {
		ctx.Text("No data connected.")
		return
	}

	ctx.Plot("Time plot", data)
	ctx.Plot("Spectrum", spectrum.MagnitudeSpectrum(data))
}

// MultiViewerParams configures a MultiViewer sink.
type MultiViewerParams struct {
	Inputs     int     `json:"inputs"`
	SampleRate float64 `json:"fs"`
}

// DefaultMultiViewerParams returns the editor defaults.
func DefaultMultiViewerParams() MultiViewerParams {
	return MultiViewerParams{Inputs: defaultInputs, SampleRate: defaultSampleRate}
}

// MultiViewer displays several series in one plot. Input ports are named
// "In 1" .. "In k".
type MultiViewer struct {
	node   *graph.Node
	inputs []*graph.In[[]float64]
	params MultiViewerParams
}

// NewMultiViewer creates a MultiViewer sink.
func NewMultiViewer(name string, params MultiViewerParams) (*MultiViewer, error) {
	if params.Inputs < 1 {
		return nil, fmt.Errorf("%w: multi-viewer needs at least one input, got %d", graph.ErrInvalidParameter, params.Inputs)
	}
	if params.SampleRate <= 0 {
		params.SampleRate = defaultSampleRate
	}

	v := &MultiViewer{
		node:   graph.NewNode(name, "Multi viewer"),
		params: params,
	}
	for i := 0; i < params.Inputs; i++ {
		port := graph.AddInput(v.node, fmt.Sprintf("In %d", i+1), []float64(nil))
		v.inputs = append(v.inputs, port)
	}
	return v, nil
}

// Data pulls the current value of input port index (0-based).
func (v *MultiViewer) Data(index int) ([]float64, error) {
	if index < 0 || index >= len(v.inputs) {
		return nil, fmt.Errorf("%w: input index %d of %d", graph.ErrNotFound, index, len(v.inputs))
	}
	return v.inputs[index].Value()
}

// Base returns the node core.
func (v *MultiViewer) Base() *graph.Node { return v.node }

// Type returns the registry tag.
func (v *MultiViewer) Type() string { return TypeMultiViewer }

// Parameters implements graph.Operator.
func (v *MultiViewer) Parameters() map[string]any {
	return map[string]any{"inputs": len(v.inputs)}
}

// Render implements graph.Operator.
func (v *MultiViewer) Render(ctx graph.RenderContext) {
	for i := range v.inputs {
		data, err := v.Data(i)
		if err != nil {
			ctx.Text(err.Error())
			continue
		}
		if len(data) > 0 {
			ctx.Plot(fmt.Sprintf("Input %d", i+1), data)
		}
	}
}
