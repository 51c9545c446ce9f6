// SPDX-License-Identifier: EPL-2.0

package sfx

import (
	"errors"
	"fmt"
)

// frequencies holds the playback rate in Hz for each note index, rising by
// roughly a semitone per step.
var frequencies = [...]uint16{
	0x0CFF, 0x0DC3, 0x0E91, 0x0F6F, 0x1056, 0x114E, 0x1259, 0x136C,
	0x149F, 0x15D9, 0x1726, 0x1888, 0x19FD, 0x1B86, 0x1D21, 0x1EDE,
	0x20AB, 0x229C, 0x24B3, 0x26D7, 0x293F, 0x2BB2, 0x2E4C, 0x3110,
	0x33FB, 0x370D, 0x3A43, 0x3DDF, 0x4157, 0x4538, 0x4998, 0x4DAE,
	0x5240, 0x5764, 0x5C9A, 0x61C8, 0x6793, 0x6E19, 0x7485, 0x7BBD,
}

// NumNotes is the number of entries in the note table.
const NumNotes = len(frequencies)

var ErrNoteOutOfRange = errors.New("note index out of range")

// Frequency returns the playback rate for a note index.
func Frequency(index int) (uint16, error) {
	if index < 0 || index >= NumNotes {
		return 0, fmt.Errorf("note %d: %w", index, ErrNoteOutOfRange)
	}
	return frequencies[index], nil
}
