// SPDX-License-Identifier: EPL-2.0

package mix8

import (
	"fmt"

	"github.com/ik5/mix8/output"
)

// SampleWriter consumes rendered output. formats/wav.Writer implements it.
type SampleWriter interface {
	Write(samples []int8) error
}

// Render pulls samples from h in blocks of at most block samples and hands
// each block to w. The mixer must already be attached to h.
func Render(h *output.Headless, w SampleWriter, samples, block int) error {
	if block <= 0 {
		return fmt.Errorf("block %d: %w", block, ErrInvalidBlockSize)
	}

	buf := make([]int8, min(block, max(samples, 0)))
	for done := 0; done < samples; {
		n := min(block, samples-done)
		if !h.Render(buf[:n]) {
			return ErrOutputStopped
		}
		if err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("write block at %d: %w", done, err)
		}
		done += n
	}
	return nil
}
