// SPDX-License-Identifier: EPL-2.0

package mixer

import "github.com/ik5/mix8/utils"

// NumChannels is the size of the channel bank.
const NumChannels = 4

// UnityVolume plays a chunk at its recorded level. Higher volumes amplify
// and may saturate.
const UnityVolume = utils.UnityVolume

// channel is one playback slot. pos and inc are 24.8 fixed point.
type channel struct {
	active bool
	volume uint8
	chunk  Chunk
	pos    uint32
	inc    uint32
}

// ChannelState is a snapshot of a channel taken under the mixer lock.
// Pos, Volume and Chunk are stale while Active is false.
type ChannelState struct {
	Active bool
	Volume uint8
	Chunk  Chunk
	Pos    uint32
	Inc    uint32
}

// mixEvents reports what happened to a channel during one mix pass.
type mixEvents struct {
	loops   int
	stopped bool
}

// mixInto adds the channel's contribution to buf.
func (ch *channel) mixInto(buf []int8) mixEvents {
	var ev mixEvents
	data := ch.chunk.Data

	for j := range buf {
		frac := ch.pos & utils.FracMask
		p1 := int(ch.pos >> utils.FracBits)
		ch.pos += ch.inc

		var p2 int
		if ch.chunk.Looping() {
			end := ch.chunk.loopEnd()
			if p1 >= end {
				p1 = end
				p2 = ch.chunk.LoopPos
				ch.pos = uint32(ch.chunk.LoopPos) << utils.FracBits
				ev.loops++
			} else {
				p2 = p1 + 1
			}
		} else {
			if p1 >= len(data)-1 {
				ch.active = false
				ev.stopped = true
				break
			}
			p2 = p1 + 1
		}

		b := utils.Lerp8(data[p1], data[p2], frac)
		buf[j] = utils.AddClamp8(buf[j], utils.ScaleVolume(b, ch.volume))
	}

	return ev
}
