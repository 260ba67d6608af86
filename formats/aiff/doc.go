// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) files
// through github.com/go-audio/aiff.
//
// Decoder accepts uncompressed AIFF with 8, 16, 24 or 32 bit samples and
// returns an audio.Source producing values in [-1, 1). Inputs that are not
// an io.ReadSeeker are buffered in memory first.
//
// Encoder writes 16-bit big-endian AIFF using the same quantizer as the WAV
// encoder, so both containers carry identical sample values:
//
//	data, err := aiff.Encode(buf)
//
// AIFF differs from WAV mainly in byte order (big-endian) and in storing
// the sample rate as an 80-bit extended float. Compressed AIFF-C is not
// supported.
//
// Decode failures wrap audio.ErrDecodeFailed together with ErrNotAiffFile,
// ErrUnsupportedAiffLayout or ErrUnsupportedBitDepth.
package aiff
