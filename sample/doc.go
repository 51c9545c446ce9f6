// SPDX-License-Identifier: EPL-2.0

// Package sample turns decoded audio into signed 8-bit mono PCM the mixer
// can play.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	s, err := sample.FromSource(src, sample.WithLoop(1000, 4000))
//	if err != nil {
//	    return err
//	}
//	m.Play(0, s.Chunk(), s.Freq(), mixer.UnityVolume)
//
// Multi-channel input is averaged to mono. Samples keep their native rate;
// the mixer resamples on playback.
package sample
