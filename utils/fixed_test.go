// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestLerp8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		b1, b2 int8
		frac   uint32
		want   int8
	}{
		{name: "silence", b1: 0, b2: 0, frac: 0, want: 0},
		{name: "weight 255 loses a fraction", b1: 64, b2: 0, frac: 0, want: 63},
		{name: "max positive", b1: 127, b2: 127, frac: 0, want: 126},
		{name: "max positive midpoint", b1: 127, b2: 127, frac: 128, want: 126},
		{name: "max negative floors", b1: -128, b2: -128, frac: 0, want: -128},
		{name: "midpoint towards b2", b1: 0, b2: 100, frac: 128, want: 50},
		{name: "negative floors", b1: -100, b2: 0, frac: 0, want: -100},
		{name: "frac is masked", b1: 0, b2: 100, frac: 0x1FF, want: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Lerp8(tt.b1, tt.b2, tt.frac); got != tt.want {
				t.Errorf("Lerp8(%d, %d, %d) = %d, want %d", tt.b1, tt.b2, tt.frac, got, tt.want)
			}
		})
	}
}

func TestScaleVolume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		b      int8
		volume uint8
		want   int
	}{
		{127, 64, 127},
		{127, 63, 125},
		{-127, 63, -125}, // truncates toward zero
		{-1, 63, 0},
		{100, 0, 0},
		{100, 128, 200},
	}

	for _, tt := range tests {
		if got := ScaleVolume(tt.b, tt.volume); got != tt.want {
			t.Errorf("ScaleVolume(%d, %d) = %d, want %d", tt.b, tt.volume, got, tt.want)
		}
	}
}

func TestAddClamp8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a    int8
		b    int
		want int8
	}{
		{100, 100, 127},
		{-100, -100, -128},
		{10, -5, 5},
		{127, 0, 127},
		{-128, 0, -128},
		{0, 500, 127},
	}

	for _, tt := range tests {
		if got := AddClamp8(tt.a, tt.b); got != tt.want {
			t.Errorf("AddClamp8(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIncrement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		freq uint16
		rate int
		want uint32
	}{
		{22050, 22050, 256},
		{11025, 22050, 128},
		{44100, 22050, 512},
		{0x0CFF, 22050, 38},
	}

	for _, tt := range tests {
		if got := Increment(tt.freq, tt.rate); got != tt.want {
			t.Errorf("Increment(%d, %d) = %d, want %d", tt.freq, tt.rate, got, tt.want)
		}
	}
}

// TestFixedMath_ZeroAllocs verifies the per-sample path stays off the heap
func TestFixedMath_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		b := Lerp8(10, 20, 64)
		_ = AddClamp8(b, ScaleVolume(b, 63))
	})

	if allocs > 0 {
		t.Errorf("fixed-point math allocated %v times, want 0", allocs)
	}
}

func BenchmarkLerp8(b *testing.B) {
	var result int8

	b.ReportAllocs()

	for i := range b.N {
		result = Lerp8(int8(i), int8(i+1), uint32(i))
	}

	_ = result
}
