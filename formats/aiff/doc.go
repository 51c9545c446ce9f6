// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files using github.com/go-audio/aiff.
//
//	file, _ := os.Open("organ.aiff")
//	src, err := aiff.Decoder{}.Decode(file)
//
// Integer PCM at 8, 16 and 24 bits is supported. The decoder needs to seek;
// readers that cannot are buffered in memory first.
package aiff
