// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE audio.
//
// # Encoding
//
// Encode turns a planar audio.Buffer into a complete 16-bit PCM file: the
// 44 byte canonical header followed by interleaved little-endian samples.
// The file length is always
//
//	44 + channels*frames*2
//
// Samples are clipped to [-1, 1] and quantized by Quantize: negative values
// are scaled by 32768, the rest by 32767, truncating toward zero. -1.0 maps
// to -32768 and 1.0 maps to 32767.
//
// WriteWAV16 is the lower level writer for callers that already hold
// interleaved int16 samples:
//
//	f, _ := os.Create("out.wav")
//	err := wav.WriteWAV16(f, 8000, 2, samples)
//
// The Encoder type exposes Encode together with its media type so it can be
// registered with an export dispatcher.
//
// # Decoding
//
// Decoder reads integer PCM files (8, 16, 24 and 32 bit, including
// WAVE_FORMAT_EXTENSIBLE) through github.com/go-audio/wav. Chunks other than
// "fmt " and "data" are skipped and reading stops at the end of the data
// chunk. Samples are normalized to [-1, 1).
//
// Decode failures wrap both audio.ErrDecodeFailed and one of the package
// errors (ErrNotWavFile, ErrUnsupportedWavLayout, ErrOnlyPCMSupported), so
// callers can test for either with errors.Is.
package wav
