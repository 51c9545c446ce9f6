// SPDX-License-Identifier: EPL-2.0

package mixer

import "fmt"

// Chunk references signed 8-bit PCM samples plus an optional loop region.
//
// Data is borrowed: Play stores the slice header, not a copy of the samples.
// The caller keeps ownership and must not modify or release the backing
// array while a channel is playing it.
type Chunk struct {
	Data []int8

	// LoopPos is the first sample of the loop region.
	LoopPos int
	// LoopLen is the loop length in samples. Zero means the chunk plays once.
	LoopLen int
}

// Len returns the number of samples in the chunk.
func (c Chunk) Len() int { return len(c.Data) }

// Looping reports whether the chunk has a loop region.
func (c Chunk) Looping() bool { return c.LoopLen != 0 }

// loopEnd is the index of the last sample inside the loop region.
func (c Chunk) loopEnd() int { return c.LoopPos + c.LoopLen - 1 }

// Validate checks that the loop region lies inside the sample data.
func (c Chunk) Validate() error {
	if c.LoopPos < 0 || c.LoopLen < 0 {
		return fmt.Errorf("loop %d+%d: %w", c.LoopPos, c.LoopLen, ErrInvalidLoop)
	}
	if c.LoopLen != 0 && c.LoopPos+c.LoopLen > len(c.Data) {
		return fmt.Errorf("loop %d+%d over %d samples: %w",
			c.LoopPos, c.LoopLen, len(c.Data), ErrInvalidLoop)
	}
	return nil
}
