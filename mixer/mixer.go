// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ik5/mix8/utils"
)

// Mixer blends the channel bank into the output requested by a System.
//
// All exported methods take the same lock, so control operations never
// observe a channel in the middle of a mix pass.
type Mixer struct {
	sys System
	log *slog.Logger

	mtx      sync.Mutex
	channels [NumChannels]channel
	running  bool
}

// New returns a mixer attached to sys. Call Init to start output.
func New(sys System, opts ...Option) *Mixer {
	m := &Mixer{
		sys: sys,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init resets every channel and registers Mix as the output callback.
func (m *Mixer) Init() error {
	m.mtx.Lock()
	if m.running {
		m.mtx.Unlock()
		return ErrAlreadyRunning
	}
	if rate := m.sys.OutputSampleRate(); rate <= 0 {
		m.mtx.Unlock()
		return fmt.Errorf("rate %d: %w", rate, ErrInvalidSampleRate)
	}
	m.channels = [NumChannels]channel{}
	m.running = true
	m.mtx.Unlock()

	// StartAudio may call Mix right away, so the lock is released first.
	if err := m.sys.StartAudio(m.Mix); err != nil {
		m.mtx.Lock()
		m.running = false
		m.mtx.Unlock()
		return fmt.Errorf("start audio: %w", err)
	}

	m.log.Debug("mixer started", slog.Int("rate", m.sys.OutputSampleRate()))
	return nil
}

// Free stops all channels and detaches the mixer from its System.
func (m *Mixer) Free() error {
	m.mtx.Lock()
	if !m.running {
		m.mtx.Unlock()
		return ErrNotRunning
	}
	m.running = false
	m.mtx.Unlock()

	m.StopAll()

	if err := m.sys.StopAudio(); err != nil {
		return fmt.Errorf("stop audio: %w", err)
	}

	m.log.Debug("mixer stopped")
	return nil
}

// Play starts chunk on channel from its first sample, replacing whatever
// the channel was playing. freq is the playback rate in Hz.
//
// Play panics if channel is out of range or chunk has an invalid loop region.
func (m *Mixer) Play(channel int, chunk Chunk, freq uint16, volume uint8) {
	checkChannel(channel)
	if err := chunk.Validate(); err != nil {
		panic(fmt.Errorf("play channel %d: %w", channel, err))
	}

	m.log.Debug("play channel",
		slog.Int("channel", channel),
		slog.Int("freq", int(freq)),
		slog.Int("volume", int(volume)),
	)

	m.mtx.Lock()
	defer m.mtx.Unlock()

	ch := &m.channels[channel]
	ch.active = true
	ch.volume = volume
	ch.chunk = chunk
	ch.pos = 0
	ch.inc = utils.Increment(freq, m.sys.OutputSampleRate())
}

// Stop silences channel. The rest of its state is left as is.
func (m *Mixer) Stop(channel int) {
	checkChannel(channel)
	m.log.Debug("stop channel", slog.Int("channel", channel))

	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.channels[channel].active = false
}

// SetVolume changes the volume of channel without touching its position.
func (m *Mixer) SetVolume(channel int, volume uint8) {
	checkChannel(channel)
	m.log.Debug("set channel volume",
		slog.Int("channel", channel),
		slog.Int("volume", int(volume)),
	)

	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.channels[channel].volume = volume
}

// StopAll silences every channel.
func (m *Mixer) StopAll() {
	m.log.Debug("stop all channels")

	m.mtx.Lock()
	defer m.mtx.Unlock()

	for i := range m.channels {
		m.channels[i].active = false
	}
}

// Channel returns a snapshot of channel.
func (m *Mixer) Channel(channel int) ChannelState {
	checkChannel(channel)

	m.mtx.Lock()
	defer m.mtx.Unlock()

	ch := &m.channels[channel]
	return ChannelState{
		Active: ch.active,
		Volume: ch.volume,
		Chunk:  ch.chunk,
		Pos:    ch.pos,
		Inc:    ch.inc,
	}
}

// Mix overwrites buf with the sum of all active channels, advancing each
// channel by len(buf) output samples. It does not allocate.
func (m *Mixer) Mix(buf []int8) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	clear(buf)

	for i := range m.channels {
		ch := &m.channels[i]
		if !ch.active {
			continue
		}

		ev := ch.mixInto(buf)
		if (ev.loops > 0 || ev.stopped) && m.log.Enabled(context.Background(), slog.LevelDebug) {
			m.log.Debug("channel event",
				slog.Int("channel", i),
				slog.Int("loops", ev.loops),
				slog.Bool("stopped", ev.stopped),
			)
		}
	}
}

func checkChannel(channel int) {
	if channel < 0 || channel >= NumChannels {
		panic(fmt.Errorf("channel %d: %w", channel, ErrChannelOutOfRange))
	}
}
