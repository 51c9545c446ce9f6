// SPDX-License-Identifier: EPL-2.0

// Package device plays mixer output through the system sound device
// using github.com/ebitengine/oto/v3.
//
// Only one Device may be opened per process; oto allows a single context.
package device

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/mix8/mixer"
	"github.com/ik5/mix8/output"
	"github.com/ik5/mix8/utils"
)

var ErrInvalidSampleRate = errors.New("sample rate must be positive")

// Options configures the sound device.
type Options struct {
	// SampleRate in Hz, e.g. 22050 or 44100.
	SampleRate int
	// BufferSize is the device buffer length. Zero selects the driver default.
	BufferSize time.Duration
}

// Device streams unsigned 8-bit mono PCM to the sound card, pulling each
// block from the registered mixer callback.
type Device struct {
	ctx  *oto.Context
	rate int

	mtx     sync.Mutex
	fn      mixer.MixFunc
	player  *oto.Player
	scratch []int8
}

// Open creates the oto context and waits until the device is ready.
func Open(opts Options) (*Device, error) {
	if opts.SampleRate <= 0 {
		return nil, fmt.Errorf("rate %d: %w", opts.SampleRate, ErrInvalidSampleRate)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   opts.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
		BufferSize:   opts.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	return &Device{
		ctx:     ctx,
		rate:    opts.SampleRate,
		scratch: make([]int8, 4096),
	}, nil
}

func (d *Device) OutputSampleRate() int { return d.rate }

func (d *Device) StartAudio(fn mixer.MixFunc) error {
	d.mtx.Lock()
	if d.fn != nil {
		d.mtx.Unlock()
		return output.ErrAlreadyStarted
	}
	d.fn = fn
	d.player = d.ctx.NewPlayer(d)
	player := d.player
	d.mtx.Unlock()

	// Play may pull the first block synchronously through Read.
	player.Play()
	return nil
}

// StopAudio unregisters the callback and closes the player. Read takes
// the same lock, so the callback is not invoked after StopAudio returns.
func (d *Device) StopAudio() error {
	d.mtx.Lock()
	if d.fn == nil {
		d.mtx.Unlock()
		return output.ErrNotStarted
	}
	d.fn = nil
	player := d.player
	d.player = nil
	d.mtx.Unlock()

	if err := player.Close(); err != nil {
		return fmt.Errorf("close player: %w", err)
	}
	return nil
}

// Read implements io.Reader for the oto player. It never returns an error;
// without a callback it produces silence.
func (d *Device) Read(p []byte) (int, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.fn == nil {
		for i := range p {
			p[i] = 0x80
		}
		return len(p), nil
	}

	// Rare: oto asked for more than the pre-allocated block.
	if len(d.scratch) < len(p) {
		d.scratch = make([]int8, len(p))
	}
	samples := d.scratch[:len(p)]
	d.fn(samples)

	for i, s := range samples {
		p[i] = utils.Int8ToUint8(s)
	}
	return len(p), nil
}

// Close stops playback if it is running.
func (d *Device) Close() error {
	err := d.StopAudio()
	if err != nil && !errors.Is(err, output.ErrNotStarted) {
		return err
	}
	return nil
}
