// SPDX-License-Identifier: EPL-2.0

// Package mix8 ties the mixer to the decoders and outputs of this module.
//
// The mixer itself lives in package mixer: four channels of signed 8-bit
// PCM, resampled with linear interpolation and summed with saturation into
// a signed 8-bit mono stream. This package adds the pieces most programs
// need around it.
//
// # Loading Sounds
//
// LoadSample decodes WAV, AIFF, MP3 and Ogg Vorbis files into 8-bit mono
// samples at their native rate:
//
//	s, err := mix8.LoadSample("laser.wav")
//	if err != nil {
//	    return err
//	}
//	m.Play(0, s.Chunk(), s.Freq(), mixer.UnityVolume)
//
// Raw game sound resources are read with LoadSFX, see package formats/sfx.
//
// # Output
//
// A mixer pulls from a System. output/device plays through the sound card
// with oto; output.Headless renders on demand:
//
//	h := output.NewHeadless(22050)
//	m := mixer.New(h)
//	_ = m.Init()
//	defer m.Free()
//
//	f, _ := os.Create("out.wav")
//	w := wav.NewWriter(f, h.OutputSampleRate())
//	err := mix8.Render(h, w, 22050*5, 1024)
//
// # Format Decoders
//
// Each decoder lives in its own package and satisfies audio.Decoder:
//   - WAV (8, 16, 24, 32-bit PCM) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
package mix8
