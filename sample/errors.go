// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	// ErrUnsupportedRate is returned for sources whose rate cannot be
	// expressed as a mixer playback frequency.
	ErrUnsupportedRate = errors.New("sample rate outside 1..65535 Hz")

	ErrNoChannels = errors.New("source has no channels")
)
