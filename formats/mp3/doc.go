// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always yields stereo 16-bit PCM, so sources from this package
// report two channels; use audio.NewDownmixer before building a chunk.
package mp3
