// SPDX-License-Identifier: EPL-2.0

// Package mixer implements a fixed four-channel software mixer for signed
// 8-bit PCM.
//
// Each channel plays a Chunk at its own rate and volume. Playback positions
// are 24.8 fixed point, samples are linearly interpolated, scaled by the
// channel volume (volume/64) and summed into the output with saturation.
//
// # Lifecycle
//
//	m := mixer.New(sys)
//	if err := m.Init(); err != nil {
//	    return err
//	}
//	defer m.Free()
//
//	m.Play(0, mixer.Chunk{Data: pcm}, 11025, 63)
//
// Init registers Mix with the System, which then calls it from its own
// goroutine whenever it needs more samples. Play, Stop, SetVolume and
// StopAll may be called from any goroutine.
//
// # Chunks
//
// A Chunk borrows its sample slice. The mixer never copies sample data, so
// the caller must keep the slice intact while a channel plays it. A chunk
// with a non-zero LoopLen repeats [LoopPos, LoopPos+LoopLen) until stopped;
// otherwise the channel deactivates itself when it reaches the last sample.
//
// # Preconditions
//
// Channel indices outside [0, NumChannels) and chunks whose loop region
// does not fit their data are programming errors: the control operations
// panic with an error wrapping ErrChannelOutOfRange or ErrInvalidLoop.
package mixer
