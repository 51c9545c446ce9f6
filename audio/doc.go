// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoded-PCM contract shared by the format
// decoders, plus the helpers used to turn a decoded file into mixer input.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Every decoder under formats/ returns a Source. Samples are interleaved
// float32 values in [-1.0, 1.0].
//
// # Downmixing
//
// The mixer plays mono data, so multi-channel sources are averaged first:
//
//	mono := audio.NewDownmixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, err := registry.Lookup("boom.wav")
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
