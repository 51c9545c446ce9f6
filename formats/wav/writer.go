// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/mix8/utils"
)

// Writer records signed 8-bit mixer output as a mono 16-bit PCM WAV.
// The header sizes are patched on Close, so the target must seek.
type Writer struct {
	enc *gowav.Encoder
	buf *goaudio.IntBuffer
}

func NewWriter(w io.WriteSeeker, sampleRate int) *Writer {
	return &Writer{
		enc: gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			Data:           make([]int, 0, 4096),
			SourceBitDepth: 16,
		},
	}
}

// Write appends samples to the data chunk.
func (w *Writer) Write(samples []int8) error {
	if len(samples) == 0 {
		return nil
	}

	data := w.buf.Data[:0]
	for _, s := range samples {
		data = append(data, int(utils.Int8ToInt16(s)))
	}
	w.buf.Data = data

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("encode samples: %w", err)
	}
	return nil
}

// Close finalizes the WAV header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}
