// SPDX-License-Identifier: EPL-2.0

package sfx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"github.com/ik5/mix8/mixer"
)

// HeaderSize is the size of the resource header in bytes.
const HeaderSize = 8

// MaxVolume is the loudest volume a resource may request.
const MaxVolume = 0x3F

var ErrTruncated = errors.New("sound resource truncated")

// Parse returns a chunk whose Data aliases the payload of data. The caller
// must keep data alive and unmodified while the chunk is playing.
func Parse(data []byte) (mixer.Chunk, error) {
	if len(data) < HeaderSize {
		return mixer.Chunk{}, fmt.Errorf("header needs %d bytes, have %d: %w",
			HeaderSize, len(data), ErrTruncated)
	}

	n := int(binary.BigEndian.Uint16(data[0:2])) * 2
	loopLen := int(binary.BigEndian.Uint16(data[2:4])) * 2

	total := n + loopLen
	payload := data[HeaderSize:]
	if len(payload) < total {
		return mixer.Chunk{}, fmt.Errorf("payload needs %d bytes, have %d: %w",
			total, len(payload), ErrTruncated)
	}

	chunk := mixer.Chunk{Data: asInt8(payload[:total])}
	if loopLen != 0 {
		chunk.LoopPos = n
		chunk.LoopLen = loopLen
	}
	return chunk, nil
}

// asInt8 reinterprets b without copying.
func asInt8(b []byte) []int8 {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(&b[0])), len(b))
}

// Volume clamps a resource volume to MaxVolume.
func Volume(v uint8) uint8 {
	return min(v, MaxVolume)
}
