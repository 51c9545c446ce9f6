// SPDX-License-Identifier: EPL-2.0

package mixer

// fakeSystem records how the mixer drives its System.
type fakeSystem struct {
	rate     int
	startErr error
	stopErr  error

	fn     MixFunc
	starts int
	stops  int
}

func newFakeSystem(rate int) *fakeSystem {
	return &fakeSystem{rate: rate}
}

func (s *fakeSystem) StartAudio(fn MixFunc) error {
	if s.startErr != nil {
		return s.startErr
	}
	s.fn = fn
	s.starts++
	return nil
}

func (s *fakeSystem) StopAudio() error {
	s.fn = nil
	s.stops++
	return s.stopErr
}

func (s *fakeSystem) OutputSampleRate() int { return s.rate }

// pull asks the registered callback for n samples.
func (s *fakeSystem) pull(n int) []int8 {
	buf := make([]int8, n)
	if s.fn != nil {
		s.fn(buf)
	}
	return buf
}
