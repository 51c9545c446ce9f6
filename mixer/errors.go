// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrChannelOutOfRange = errors.New("channel out of range")
	ErrInvalidLoop       = errors.New("loop region exceeds chunk")
	ErrInvalidSampleRate = errors.New("output sample rate must be positive")
	ErrAlreadyRunning    = errors.New("mixer already initialized")
	ErrNotRunning        = errors.New("mixer not initialized")
)
