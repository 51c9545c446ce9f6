// SPDX-License-Identifier: EPL-2.0

package mixer

import "log/slog"

// Option configures a Mixer.
type Option func(*Mixer)

// WithLogger sets the logger used for debug traces of channel activity.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mixer) {
		if l != nil {
			m.log = l
		}
	}
}
