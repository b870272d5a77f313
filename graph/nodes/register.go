package nodes

import (
	"encoding/json"
	"fmt"

	"github.com/fabio-terranova/nodex/graph"
)

// NewRegistry returns a registry with the shipped operator set registered.
// Hosts construct it once alongside the graph; nothing registers through
// package load-time side effects.
func NewRegistry() *graph.Registry {
	r := graph.NewRegistry()
	RegisterAll(r)
	return r
}

// RegisterAll registers every shipped operator factory into r.
func RegisterAll(r *graph.Registry) {
	r.MustRegister(TypeSine, func(name string, params json.RawMessage) (graph.Operator, error) {
		p := DefaultSineParams()
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return NewSine(name, p)
	})

	r.MustRegister(TypeRandom, func(name string, params json.RawMessage) (graph.Operator, error) {
		p := DefaultRandomParams()
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return NewRandom(name, p)
	})

	r.MustRegister(TypeCSV, func(name string, params json.RawMessage) (graph.Operator, error) {
		var p CSVParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return NewCSV(name, p)
	})

	r.MustRegister(TypeWav, func(name string, params json.RawMessage) (graph.Operator, error) {
		var p WavParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return NewWav(name, p)
	})

	r.MustRegister(TypeMixer, func(name string, params json.RawMessage) (graph.Operator, error) {
		p := DefaultMixerParams()
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return NewMixer(name, p)
	})

	r.MustRegister(TypeFilter, func(name string, params json.RawMessage) (graph.Operator, error) {
		p := DefaultFilterParams()
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return NewFilter(name, p)
	})

	r.MustRegister(TypeViewer, func(name string, params json.RawMessage) (graph.Operator, error) {
		p := DefaultViewerParams()
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return NewViewer(name, p)
	})

	r.MustRegister(TypeMultiViewer, func(name string, params json.RawMessage) (graph.Operator, error) {
		p := DefaultMultiViewerParams()
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return NewMultiViewer(name, p)
	})
}

// decodeParams unmarshals a parameter bundle over preset defaults. Missing
// fields keep their defaults; unknown fields are ignored.
func decodeParams(params json.RawMessage, dst any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, dst); err != nil {
		return fmt.Errorf("%w: %v", graph.ErrInvalidParameter, err)
	}
	return nil
}
