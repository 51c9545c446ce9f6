// SPDX-License-Identifier: EPL-2.0

package mix8

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/mix8/audio"
	"github.com/ik5/mix8/formats/sfx"
	"github.com/ik5/mix8/formats/wav"
	"github.com/ik5/mix8/sample"
)

func writeWAV(t *testing.T, dir string, rate int, samples []int8) string {
	t.Helper()

	path := filepath.Join(dir, "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	w := wav.NewWriter(f, rate)
	if err := w.Write(samples); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return path
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	got := NewRegistry().Formats()
	want := []string{"aif", "aiff", "mp3", "ogg", "wav"}
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestLoadSample_WAV(t *testing.T) {
	t.Parallel()

	path := writeWAV(t, t.TempDir(), 11025, []int8{0, 64, -64, 127, -128})

	s, err := LoadSample(path, sample.WithLoop(1, 3))
	if err != nil {
		t.Fatalf("LoadSample() error = %v", err)
	}

	// 16-bit storage scales by 127/128 on the way back.
	want := []int8{0, 63, -63, 126, -127}
	if !slices.Equal(s.Data, want) {
		t.Errorf("Data = %v, want %v", s.Data, want)
	}
	if s.Rate != 11025 {
		t.Errorf("Rate = %d, want 11025", s.Rate)
	}
	if c := s.Chunk(); c.LoopPos != 1 || c.LoopLen != 3 {
		t.Errorf("loop = %d+%d, want 1+3", c.LoopPos, c.LoopLen)
	}
}

func TestLoadSample_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(garbage, []byte("definitely not RIFF"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"no extension", filepath.Join(dir, "noext"), audio.ErrNoExtension},
		{"unknown extension", filepath.Join(dir, "a.flac"), audio.ErrUnknownFormat},
		{"missing file", filepath.Join(dir, "missing.wav"), os.ErrNotExist},
		{"bad data", garbage, wav.ErrNotWavFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadSample(tt.path); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadSample() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSFX(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "door.sfx")
	data := []byte{0, 1, 0, 1, 0, 0, 0, 0, 1, 2, 3, 4}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	chunk, err := LoadSFX(path)
	if err != nil {
		t.Fatalf("LoadSFX() error = %v", err)
	}
	if chunk.Len() != 4 || chunk.LoopPos != 2 || chunk.LoopLen != 2 {
		t.Errorf("chunk = len %d loop %d+%d", chunk.Len(), chunk.LoopPos, chunk.LoopLen)
	}

	short := filepath.Join(dir, "short.sfx")
	if err := os.WriteFile(short, data[:9], 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSFX(short); !errors.Is(err, sfx.ErrTruncated) {
		t.Errorf("LoadSFX(short) error = %v, want ErrTruncated", err)
	}
}
