// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt8 clamps x to [-1, 1] and scales it to a signed 8-bit sample.
func Float32ToInt8(x float32) int8 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 127 keeps +1.0 in range
	return int8(x * 127.0)
}

// Int8ToInt16 widens a signed 8-bit sample to 16 bits.
func Int8ToInt16(s int8) int16 {
	return int16(s) << 8
}

// Int8ToUint8 converts a signed 8-bit sample to the offset-binary form
// used by unsigned 8-bit PCM devices.
func Int8ToUint8(s int8) uint8 {
	return uint8(s) ^ 0x80
}
