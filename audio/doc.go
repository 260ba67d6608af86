// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample buffer model and the editing primitives.
//
// This package contains the core building blocks:
//   - Source and Decoder interfaces for the decode boundary
//   - Registry for decoder lookup by format key or file extension
//   - Buffer, a planar float32 sample buffer
//   - ReadBuffer to collect a Source into a Buffer
//   - Edit, Trim and ApplyFades for range extraction and fade envelopes
//   - Resample and Downmix for output rate and channel conversion
//
// # Source Interface
//
// Decoders under formats/ return a Source that streams interleaved float32
// samples in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadBuffer drains a Source into a Buffer. Decoder failures are wrapped in
// ErrDecodeFailed so callers can tell them apart from invalid input:
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadBuffer(src)
//	if errors.Is(err, audio.ErrDecodeFailed) {
//	    // the input could not be decoded
//	}
//
// # Editing
//
// Edit extracts a time range and applies linear fades:
//
//	edited, err := audio.Edit(buf, audio.EditOptions{
//	    Start:   1.5,
//	    End:     9.0,
//	    FadeIn:  0.5,
//	    FadeOut: 2.0,
//	})
//
// Start and End are converted to sample indices by truncation and clamped to
// the buffer, so out of range values never fail. The fade-in multiplies
// sample i by i/n where n is the fade length in samples; the fade-out does
// the same from the last sample backwards. When the two windows overlap the
// gains multiply. FadeInclusive switches to i/(n-1), reaching full gain on
// the last sample of the window.
//
// The returned buffer is always a fresh allocation; the input buffer is left
// untouched.
//
// # Conversion
//
// Resample changes the sample rate with Catmull-Rom interpolation, running a
// one-pole low-pass filter first when the rate drops. Downmix averages all
// channels into one. Both return new buffers.
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForFile("take1.WAV")
package audio
