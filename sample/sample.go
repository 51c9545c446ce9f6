// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/mix8/audio"
	"github.com/ik5/mix8/mixer"
	"github.com/ik5/mix8/utils"
)

const defaultBlockSize = 4096

// Sample is mono signed 8-bit PCM at its native rate.
type Sample struct {
	Data []int8
	Rate int

	LoopPos int
	LoopLen int
}

// FromSource reads src to the end and quantizes it. src is not closed.
func FromSource(src audio.Source, opts ...Option) (*Sample, error) {
	cfg := config{blockSize: defaultBlockSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	rate := src.SampleRate()
	if rate <= 0 || rate > math.MaxUint16 {
		return nil, fmt.Errorf("rate %d: %w", rate, ErrUnsupportedRate)
	}
	if src.Channels() < 1 {
		return nil, ErrNoChannels
	}

	mono := audio.Source(src)
	if src.Channels() > 1 {
		mono = audio.NewDownmixer(src)
	}

	s := &Sample{
		Rate:    rate,
		LoopPos: cfg.loopPos,
		LoopLen: cfg.loopLen,
	}

	buf := make([]float32, cfg.blockSize)
	for cfg.maxSamples <= 0 || len(s.Data) < cfg.maxSamples {
		want := buf
		if cfg.maxSamples > 0 {
			want = buf[:min(len(buf), cfg.maxSamples-len(s.Data))]
		}

		n, err := mono.ReadSamples(want)
		for _, v := range want[:n] {
			s.Data = append(s.Data, utils.Float32ToInt8(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
	}

	if err := s.Chunk().Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Chunk returns a mixer chunk sharing the sample's data.
func (s *Sample) Chunk() mixer.Chunk {
	return mixer.Chunk{
		Data:    s.Data,
		LoopPos: s.LoopPos,
		LoopLen: s.LoopLen,
	}
}

// Freq is the playback frequency that reproduces the original pitch.
func (s *Sample) Freq() uint16 {
	return uint16(s.Rate)
}
