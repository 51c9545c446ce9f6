// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV files and records mixer output to WAV,
// both on top of github.com/go-audio/wav.
//
// # Decoding
//
//	file, _ := os.Open("door.wav")
//	src, err := wav.Decoder{}.Decode(file)
//
// 8, 16, 24 and 32-bit integer PCM is accepted, any channel count and rate.
// Samples come out as float32 in [-1, 1]; 8-bit data is re-centered from
// its unsigned storage.
//
// # Recording
//
// Writer takes the signed 8-bit blocks produced by mixer.Mixer.Mix and
// stores them as mono 16-bit PCM:
//
//	out, _ := os.Create("mix.wav")
//	w := wav.NewWriter(out, 22050)
//	w.Write(block)
//	w.Close()
package wav
