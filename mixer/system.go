// SPDX-License-Identifier: EPL-2.0

package mixer

// MixFunc fills buf with the next block of signed 8-bit output samples.
type MixFunc func(buf []int8)

// System is the audio output the mixer is attached to.
//
// StartAudio registers fn as the periodic buffer-fill callback; the system
// owns the cadence and the buffers. After StopAudio returns, fn must not be
// invoked again. OutputSampleRate is the rate, in Hz, at which the system
// consumes samples.
type System interface {
	StartAudio(fn MixFunc) error
	StopAudio() error
	OutputSampleRate() int
}
