// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/mix8/audio"
	"github.com/ik5/mix8/internal/pcm"
)

const formatPCM = 1

// Decoder reads 8, 16, 24 and 32-bit integer PCM WAV files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.AsReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("format tag %d: %w", dec.WavAudioFormat, ErrUnsupportedEncoding)
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("locate data chunk: %w", err)
	}

	// 8-bit WAV is unsigned, every other width is signed.
	src, err := pcm.NewIntSource(dec, dec.Format(), int(dec.BitDepth), true)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}
	return src, nil
}
