// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders to the float32 Source
// contract used by the rest of the module.
package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// IntReader is the part of the go-audio wav and aiff decoders IntSource
// reads from.
type IntReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// IntSource converts integer PCM into float32 samples in [-1, 1].
type IntSource struct {
	r      IntReader
	format *goaudio.Format
	scale  float32
	bias   int
	buf    *goaudio.IntBuffer
}

// NewIntSource wraps r. unsigned8 marks 8-bit data stored as offset binary,
// as WAV does.
func NewIntSource(r IntReader, format *goaudio.Format, bitDepth int, unsigned8 bool) (*IntSource, error) {
	var scale float32
	switch bitDepth {
	case 8:
		scale = 1 << 7
	case 16:
		scale = 1 << 15
	case 24:
		scale = 1 << 23
	case 32:
		scale = 1 << 31
	default:
		return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	var bias int
	if bitDepth == 8 && unsigned8 {
		bias = 128
	}

	return &IntSource{
		r:      r,
		format: format,
		scale:  scale,
		bias:   bias,
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 4096),
			SourceBitDepth: bitDepth,
		},
	}, nil
}

func (s *IntSource) SampleRate() int { return s.format.SampleRate }
func (s *IntSource) Channels() int   { return s.format.NumChannels }
func (s *IntSource) Close() error    { return nil }

func (s *IntSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.r.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v-s.bias) / s.scale
	}

	// A short read without an error is the end of the data chunk.
	if err == nil && n < len(dst) {
		err = io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("read pcm: %w", err)
	}
	return n, err
}
