// SPDX-License-Identifier: EPL-2.0

package sample

type config struct {
	loopPos    int
	loopLen    int
	maxSamples int
	blockSize  int
}

// Option configures FromSource.
type Option func(*config)

// WithLoop marks length samples starting at pos as the loop region.
func WithLoop(pos, length int) Option {
	return func(c *config) {
		c.loopPos = pos
		c.loopLen = length
	}
}

// WithMaxSamples stops reading after n samples. Zero or less reads the
// whole source.
func WithMaxSamples(n int) Option {
	return func(c *config) {
		c.maxSamples = n
	}
}

// WithBlockSize sets how many frames are decoded per read.
func WithBlockSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.blockSize = n
		}
	}
}
