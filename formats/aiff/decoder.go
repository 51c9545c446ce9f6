// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/mix8/audio"
	"github.com/ik5/mix8/internal/pcm"
)

// Decoder reads 8, 16 and 24-bit AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.AsReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	// AIFF stores 8-bit samples signed.
	src, err := pcm.NewIntSource(dec, format, int(dec.BitDepth), false)
	if err != nil {
		return nil, err
	}
	return src, nil
}
