// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/utils"
)

// MediaType is the media type of the files produced by this package.
const MediaType = "audio/wav"

// Encoder serializes a Buffer into a 16-bit PCM WAV file.
type Encoder struct{}

// MediaType returns "audio/wav".
func (Encoder) MediaType() string { return MediaType }

// Encode implements the export encoder contract; see Encode.
func (Encoder) Encode(buf *audio.Buffer) ([]byte, error) {
	return Encode(buf)
}

// Encode returns a complete WAV file for buf: the 44 byte canonical header
// followed by interleaved little-endian 16-bit samples. The output is
// exactly FileSize(buf.Channels(), buf.Frames()) bytes long and is a fresh
// allocation owned by the caller.
func Encode(buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	channels := buf.Channels()
	frames := buf.Frames()
	if _, err := checkLayout(buf.SampleRate, channels, channels*frames); err != nil {
		return nil, err
	}

	out := bytes.NewBuffer(make([]byte, 0, FileSize(channels, frames)))
	if err := WriteWAV16(out, buf.SampleRate, channels, Quantize(buf)); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Quantize interleaves buf into signed 16-bit samples, frame by frame in
// ascending channel order.
func Quantize(buf *audio.Buffer) []int16 {
	channels := buf.Channels()
	frames := buf.Frames()
	samples := make([]int16, channels*frames)

	for c, ch := range buf.Data {
		for f, s := range ch[:frames] {
			samples[f*channels+c] = utils.Float32ToInt16(s)
		}
	}

	return samples
}
