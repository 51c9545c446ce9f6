// SPDX-License-Identifier: EPL-2.0

package output

import (
	"sync"

	"github.com/ik5/mix8/mixer"
)

// Headless is an audio output without a device. Nothing is pulled until
// Render is called, which makes it suitable for tests and offline rendering.
type Headless struct {
	rate int

	mtx sync.Mutex
	fn  mixer.MixFunc
}

// NewHeadless returns a device-less output running at rate Hz.
func NewHeadless(rate int) *Headless {
	return &Headless{rate: rate}
}

func (h *Headless) OutputSampleRate() int { return h.rate }

func (h *Headless) StartAudio(fn mixer.MixFunc) error {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.fn != nil {
		return ErrAlreadyStarted
	}
	h.fn = fn
	return nil
}

// StopAudio unregisters the callback. It waits for an in-flight Render,
// so the callback is never invoked after StopAudio returns.
func (h *Headless) StopAudio() error {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.fn == nil {
		return ErrNotStarted
	}
	h.fn = nil
	return nil
}

// Running reports whether a callback is registered.
func (h *Headless) Running() bool {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	return h.fn != nil
}

// Render fills buf from the registered callback. Without one, buf is
// silenced and Render returns false.
func (h *Headless) Render(buf []int8) bool {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.fn == nil {
		clear(buf)
		return false
	}
	h.fn(buf)
	return true
}
