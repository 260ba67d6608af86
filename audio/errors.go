// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidBuffer reports a buffer with no channels, channels of
	// different lengths or a non-positive sample rate.
	ErrInvalidBuffer = errors.New("invalid sample buffer")

	// ErrDecodeFailed wraps any failure reported by a format decoder.
	ErrDecodeFailed = errors.New("decode failed")

	// ErrPartialFrame is returned when a source hands back a sample count
	// that is not a multiple of its channel count.
	ErrPartialFrame = errors.New("source returned a partial frame")

	// ErrInvalidRate reports a non-positive target sample rate.
	ErrInvalidRate = errors.New("invalid target sample rate")
)
