// Package nodes ships the operator catalogue for the dataflow graph:
// signal sources (sine, random, CSV, WAV), transforms (mixer, filter), and
// display sinks (viewer, multi-viewer).
package nodes

// Shared parameter defaults.
const (
	defaultSamples    = 1000
	defaultSampleRate = 1000.0
	defaultFrequency  = 50.0
	defaultAmplitude  = 1.0
	defaultPhase      = 0.0
	defaultOffset     = 0.0
	defaultGain       = 1.0
	defaultInputs     = 2
	defaultOrder      = 2
	defaultCutoff     = 100.0

	// Chebyshev designs need a ripple figure the serialised parameter set
	// does not carry; these match the interactive editor's presets.
	defaultPassbandRippleDB    = 3.0
	defaultStopbandAttenuation = 40.0
)

// Registry type tags.
const (
	TypeSine        = "SineNode"
	TypeRandom      = "RandomDataNode"
	TypeCSV         = "CSVNode"
	TypeWav         = "WavNode"
	TypeMixer       = "MixerNode"
	TypeFilter      = "FilterNode"
	TypeViewer      = "ViewerNode"
	TypeMultiViewer = "MultiViewerNode"
)
