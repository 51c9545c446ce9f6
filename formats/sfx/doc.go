// SPDX-License-Identifier: EPL-2.0

// Package sfx parses raw game sound resources into mixer chunks.
//
// A resource is an eight byte big-endian header followed by signed 8-bit
// PCM:
//
//	offset  size  field
//	0       2     one-shot length in 16-bit words
//	2       2     loop length in 16-bit words, zero for one-shot sounds
//	4       4     reserved
//	8       ...   samples
//
// A looping resource plays its one-shot part once and then repeats the loop
// part that follows it.
package sfx
