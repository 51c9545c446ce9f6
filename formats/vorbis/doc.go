// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams using github.com/jfreymuth/oggvorbis.
//
// Samples are already float32 in [-1, 1] and interleaved, so the source
// passes them through unchanged.
package vorbis
