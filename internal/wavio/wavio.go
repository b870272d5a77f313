// Package wavio reads and writes WAV files as float64 channel data.
package wavio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrInvalidFile is returned when the input is not a decodable WAV file.
var ErrInvalidFile = errors.New("wavio: invalid WAV file")

// File holds decoded WAV data: one float64 slice per channel, normalised
// to [-1, 1], plus the source sample rate.
type File struct {
	Channels   [][]float64
	SampleRate float64
}

// Load reads a WAV file and deinterleaves it into per-channel float64 data.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode %s: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidFile)
	}

	frames := len(buf.Data) / channels
	scale := 1.0 / float64(int(1)<<(uint(dec.BitDepth)-1))

	out := &File{
		Channels:   make([][]float64, channels),
		SampleRate: float64(buf.Format.SampleRate),
	}
	for c := range out.Channels {
		out.Channels[c] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			out.Channels[c][i] = float64(buf.Data[i*channels+c]) * scale
		}
	}

	return out, nil
}

// Save writes per-channel float64 data to a 16-bit PCM WAV file. Values are
// clipped to [-1, 1]; shorter channels are zero-padded to the longest.
func Save(path string, channels [][]float64, sampleRate float64) error {
	if len(channels) == 0 {
		return errors.New("wavio: no channels to write")
	}
	if sampleRate <= 0 {
		return fmt.Errorf("wavio: sample rate must be > 0: %g", sampleRate)
	}

	frames := 0
	for _, ch := range channels {
		if len(ch) > frames {
			frames = len(ch)
		}
	}

	const bitDepth = 16
	const peak = 1<<(bitDepth-1) - 1

	data := make([]int, frames*len(channels))
	for i := 0; i < frames; i++ {
		for c, ch := range channels {
			v := 0.0
			if i < len(ch) {
				v = ch[i]
			}
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			data[i*len(channels)+c] = int(v * peak)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, int(sampleRate), bitDepth, len(channels), 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(channels),
			SampleRate:  int(sampleRate),
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode %s: %w", path, err)
	}

	return enc.Close()
}
