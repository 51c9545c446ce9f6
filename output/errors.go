// SPDX-License-Identifier: EPL-2.0

package output

import "errors"

var (
	ErrAlreadyStarted = errors.New("audio output already started")
	ErrNotStarted     = errors.New("audio output not started")
)
