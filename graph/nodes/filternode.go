package nodes

import (
	"fmt"

	"github.com/fabio-terranova/nodex/dsp/filter/design"
	"github.com/fabio-terranova/nodex/dsp/filter/iir"
	"github.com/fabio-terranova/nodex/graph"
)

// FilterParams configures a Filter transform. Mode and filter type are the
// serialised integer tags: mode 0=lowpass, 1=highpass, 2=bandpass,
// 3=bandstop; type 0=Butterworth, 1=Chebyshev I, 2=Chebyshev II. Cutoff2 is
// the upper band edge and only meaningful for the band modes.
type FilterParams struct {
	Mode       int     `json:"mode"`
	Type       int     `json:"type"`
	Order      int     `json:"order"`
	Cutoff     float64 `json:"fc"`
	Cutoff2    float64 `json:"fc2"`
	SampleRate float64 `json:"fs"`
}

// DefaultFilterParams returns the editor defaults.
func DefaultFilterParams() FilterParams {
	return FilterParams{
		Mode:       int(design.Lowpass),
		Type:       int(design.Butterworth),
		Order:      defaultOrder,
		Cutoff:     defaultCutoff,
		SampleRate: defaultSampleRate,
	}
}

// Filter designs an IIR filter from its parameters each frame and applies
// it to the "In" array, emitting the result on "Out".
type Filter struct {
	node   *graph.Node
	in     *graph.In[[]float64]
	params FilterParams
}

// NewFilter creates a Filter transform. The design parameters are validated
// eagerly so a bad bundle fails at load time rather than first pull.
func NewFilter(name string, params FilterParams) (*Filter, error) {
	if _, err := designFromParams(params); err != nil {
		return nil, fmt.Errorf("%w: %v", graph.ErrInvalidParameter, err)
	}

	f := &Filter{
		node:   graph.NewNode(name, "Filter"),
		params: params,
	}
	f.in = graph.AddInput(f.node, "In", []float64(nil))
	graph.AddOutput(f.node, "Out", f.apply)

	return f, nil
}

func designFromParams(p FilterParams) (design.ZPK, error) {
	typ := design.Type(p.Type)
	mode := design.Mode(p.Mode)

	ripple := 0.0
	switch typ {
	case design.Chebyshev1:
		ripple = defaultPassbandRippleDB
	case design.Chebyshev2:
		ripple = defaultStopbandAttenuation
	}

	switch mode {
	case design.Lowpass, design.Highpass:
		return design.IIR(p.Order, p.Cutoff, p.SampleRate, typ, mode, ripple)
	case design.Bandpass, design.Bandstop:
		return design.IIRBand(p.Order, p.Cutoff, p.Cutoff2, p.SampleRate, typ, mode, ripple)
	default:
		return design.ZPK{}, fmt.Errorf("%w: unknown filter mode %d", design.ErrInvalidArgument, p.Mode)
	}
}

func (f *Filter) apply() ([]float64, error) {
	data, err := f.in.Value()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	zpk, err := designFromParams(f.params)
	if err != nil {
		return nil, err
	}

	return iir.Apply(design.TransferFunction(zpk), data)
}

// Params returns the current parameter bundle.
func (f *Filter) Params() FilterParams { return f.params }

// SetParams replaces the parameter bundle after validating it.
func (f *Filter) SetParams(p FilterParams) error {
	if _, err := designFromParams(p); err != nil {
		return fmt.Errorf("%w: %v", graph.ErrInvalidParameter, err)
	}
	f.params = p
	return nil
}

// Response returns the designed filter's magnitude response on n grid
// points, for display sinks.
func (f *Filter) Response(n int) (w, mag []float64, err error) {
	zpk, err := designFromParams(f.params)
	if err != nil {
		return nil, nil, err
	}
	w, mag = design.ResponseGrid(zpk, n)
	return w, mag, nil
}

// Base returns the node core.
func (f *Filter) Base() *graph.Node { return f.node }

// Type returns the registry tag.
func (f *Filter) Type() string { return TypeFilter }

// Parameters implements graph.Operator.
func (f *Filter) Parameters() map[string]any {
	return map[string]any{
		"mode":  f.params.Mode,
		"type":  f.params.Type,
		"order": f.params.Order,
		"fc":    f.params.Cutoff,
		"fc2":   f.params.Cutoff2,
		"fs":    f.params.SampleRate,
	}
}

// Render implements graph.Operator.
func (f *Filter) Render(ctx graph.RenderContext) {
	if _, mag, err := f.Response(128); err == nil {
		ctx.Plot("Magnitude response", mag)
	} else {
		ctx.Text(err.Error())
	}
}
