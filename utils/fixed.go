// SPDX-License-Identifier: EPL-2.0

package utils

// FracBits is the number of fractional bits in a 24.8 fixed-point position.
const FracBits = 8

// FracMask selects the fractional part of a 24.8 fixed-point position.
const FracMask = 1<<FracBits - 1

// UnityVolume is the divisor applied to channel volumes.
// Volumes conventionally run 0..63, so 63 is just under unity gain.
const UnityVolume = 0x40

// Lerp8 linearly interpolates between b1 and b2 using frac (0..255) as the
// weight of b2. The intermediate is computed in int and narrowed back to
// int8 with truncation, not saturation.
func Lerp8(b1, b2 int8, frac uint32) int8 {
	w := int(frac & FracMask)
	return int8((int(b1)*(FracMask-w) + int(b2)*w) >> FracBits)
}

// ScaleVolume applies a channel volume to a sample. The division truncates
// toward zero. Volumes above 63 amplify.
func ScaleVolume(b int8, volume uint8) int {
	return int(b) * int(volume) / UnityVolume
}

// AddClamp8 adds b to a and saturates the result to the int8 range.
func AddClamp8(a int8, b int) int8 {
	sum := int(a) + b
	if sum < -128 {
		return -128
	}
	if sum > 127 {
		return 127
	}
	return int8(sum)
}

// Increment returns the 24.8 fixed-point advance per output sample for a
// source played at freq Hz into an output running at rate Hz.
func Increment(freq uint16, rate int) uint32 {
	return (uint32(freq) << FracBits) / uint32(rate)
}
