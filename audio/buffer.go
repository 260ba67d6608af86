// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Buffer holds fully decoded audio as planar float32 channels.
//
// Data[c][f] is the sample of channel c at frame f. Every channel has the
// same length and samples are nominally in [-1, 1]; values outside that
// range are allowed until the buffer is quantized by an encoder.
type Buffer struct {
	SampleRate int
	Data       [][]float32
}

// NewBuffer allocates a zeroed buffer with the given layout.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Buffer{
		SampleRate: sampleRate,
		Data:       data,
	}
}

// Channels returns the number of channels.
func (b *Buffer) Channels() int { return len(b.Data) }

// Frames returns the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration returns the playing time of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(b.Frames()) * int64(time.Second) / int64(b.SampleRate))
}

// Validate reports ErrInvalidBuffer when the buffer breaks its layout
// invariants.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidBuffer, b.SampleRate)
	}
	if len(b.Data) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidBuffer)
	}

	frames := len(b.Data[0])
	for c, ch := range b.Data[1:] {
		if len(ch) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				ErrInvalidBuffer, c+1, len(ch), frames)
		}
	}

	return nil
}

// Clone returns a deep copy that shares no memory with b.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		SampleRate: b.SampleRate,
		Data:       make([][]float32, len(b.Data)),
	}
	for c, ch := range b.Data {
		out.Data[c] = append([]float32(nil), ch...)
	}

	return out
}

// Interleave returns the samples frame by frame, channel-minor.
func (b *Buffer) Interleave() []float32 {
	channels := b.Channels()
	frames := b.Frames()
	out := make([]float32, channels*frames)

	for f := range frames {
		base := f * channels
		for c := range channels {
			out[base+c] = b.Data[c][f]
		}
	}

	return out
}
