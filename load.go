// SPDX-License-Identifier: EPL-2.0

package mix8

import (
	"fmt"
	"os"

	"github.com/ik5/mix8/audio"
	"github.com/ik5/mix8/formats/aiff"
	"github.com/ik5/mix8/formats/mp3"
	"github.com/ik5/mix8/formats/sfx"
	"github.com/ik5/mix8/formats/vorbis"
	"github.com/ik5/mix8/formats/wav"
	"github.com/ik5/mix8/mixer"
	"github.com/ik5/mix8/sample"
)

// NewRegistry returns a registry with every decoder in this module,
// keyed by file extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

var defaultRegistry = NewRegistry()

// LoadSample decodes the file at path with the decoder registered for its
// extension.
func LoadSample(path string, opts ...sample.Option) (*sample.Sample, error) {
	return LoadSampleWith(defaultRegistry, path, opts...)
}

// LoadSampleWith is LoadSample with a caller supplied registry.
func LoadSampleWith(reg *audio.Registry, path string, opts ...sample.Option) (*sample.Sample, error) {
	dec, err := reg.Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	s, err := sample.FromSource(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}
	return s, nil
}

// LoadSFX reads a raw sound resource. The returned chunk owns the file
// contents.
func LoadSFX(path string) (mixer.Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mixer.Chunk{}, fmt.Errorf("read sfx: %w", err)
	}

	chunk, err := sfx.Parse(data)
	if err != nil {
		return mixer.Chunk{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return chunk, nil
}
