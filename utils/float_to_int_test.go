// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int8
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt8},
		{name: "max negative", input: -1.0, want: -math.MaxInt8},
		{name: "half positive", input: 0.5, want: 63},
		{name: "half negative", input: -0.5, want: -63},
		{name: "clamp over max", input: 1.5, want: math.MaxInt8},
		{name: "clamp under min", input: -1.5, want: -math.MaxInt8},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt8(tt.input); got != tt.want {
				t.Errorf("Float32ToInt8(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt8Monotonic tests that function is monotonic
func TestFloat32ToInt8Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt8(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt8(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt8 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

func TestInt8ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int8
		want  int16
	}{
		{0, 0},
		{1, 256},
		{-1, -256},
		{127, 32512},
		{-128, math.MinInt16},
	}

	for _, tt := range tests {
		if got := Int8ToInt16(tt.input); got != tt.want {
			t.Errorf("Int8ToInt16(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestInt8ToUint8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int8
		want  uint8
	}{
		{0, 128},
		{-128, 0},
		{127, 255},
		{-1, 127},
		{1, 129},
	}

	for _, tt := range tests {
		if got := Int8ToUint8(tt.input); got != tt.want {
			t.Errorf("Int8ToUint8(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// BenchmarkFloat32ToInt8Realistic simulates converting a decoded buffer
func BenchmarkFloat32ToInt8Realistic(b *testing.B) {
	floatSamples := make([]float32, 8000)
	int8Samples := make([]int8, 8000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j := range floatSamples {
			int8Samples[j] = Float32ToInt8(floatSamples[j])
		}
	}
}
