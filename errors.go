// SPDX-License-Identifier: EPL-2.0

package mix8

import "errors"

var (
	// ErrOutputStopped is returned by Render when the headless output has
	// no mixer attached.
	ErrOutputStopped = errors.New("output has no mix callback")

	ErrInvalidBlockSize = errors.New("block size must be positive")
)
