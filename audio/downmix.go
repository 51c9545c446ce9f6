// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmixer averages the channels of src into a mono stream.
type Downmixer struct {
	src Source
	tmp []float32
}

func NewDownmixer(src Source) *Downmixer {
	return &Downmixer{
		src: src,
		tmp: make([]float32, 8192),
	}
}

func (m *Downmixer) SampleRate() int { return m.src.SampleRate() }
func (m *Downmixer) Channels() int   { return 1 }

func (m *Downmixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("close source: %w", err)
	}
	return nil
}

// ReadSamples fills dst with up to len(dst) mono frames.
func (m *Downmixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	// Grow but never shrink, to avoid thrashing on uneven reads.
	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	in := m.tmp[:need]

	n, err := m.src.ReadSamples(in)
	frames := n / channels

	if channels == 2 {
		for f := range frames {
			dst[f] = (in[2*f] + in[2*f+1]) * 0.5
		}
		return frames, err
	}

	inv := 1 / float32(channels)
	for f := range frames {
		var sum float32
		for _, v := range in[f*channels : (f+1)*channels] {
			sum += v
		}
		dst[f] = sum * inv
	}

	return frames, err
}
