package nodes

import (
	"fmt"

	"github.com/fabio-terranova/nodex/graph"
	"github.com/fabio-terranova/nodex/internal/wavio"
)

// WavParams configures a WAV source.
type WavParams struct {
	FilePath string `json:"filePath"`
}

// Wav is a file source: each channel of the loaded WAV file becomes an
// output port named "Ch1" .. "ChN".
type Wav struct {
	node   *graph.Node
	params WavParams
	file   *wavio.File
}

// NewWav creates a WAV source and decodes the file eagerly.
func NewWav(name string, params WavParams) (*Wav, error) {
	if params.FilePath == "" {
		return nil, fmt.Errorf("%w: wav filePath must not be empty", graph.ErrInvalidParameter)
	}

	file, err := wavio.Load(params.FilePath)
	if err != nil {
		return nil, err
	}

	w := &Wav{
		node:   graph.NewNode(name, "WAV Import"),
		params: params,
		file:   file,
	}
	for i, channel := range file.Channels {
		data := channel
		graph.AddOutput(w.node, fmt.Sprintf("Ch%d", i+1), func() ([]float64, error) {
			return data, nil
		})
	}

	return w, nil
}

// SampleRate returns the source file's sample rate.
func (w *Wav) SampleRate() float64 { return w.file.SampleRate }

// Base returns the node core.
func (w *Wav) Base() *graph.Node { return w.node }

// Type returns the registry tag.
func (w *Wav) Type() string { return TypeWav }

// Parameters implements graph.Operator.
func (w *Wav) Parameters() map[string]any {
	return map[string]any{"filePath": w.params.FilePath}
}

// Render implements graph.Operator.
func (w *Wav) Render(ctx graph.RenderContext) {
	ctx.Text(fmt.Sprintf("%s: %d channels @ %.0f Hz", w.params.FilePath, len(w.file.Channels), w.file.SampleRate))
}
