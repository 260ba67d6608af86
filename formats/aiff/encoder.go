// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/utils"
)

// MediaType is the media type of the files produced by Encoder.
const MediaType = "audio/aiff"

const bitDepth = 16

// Encoder serializes a Buffer into a 16-bit big-endian AIFF file.
type Encoder struct{}

func (Encoder) MediaType() string { return MediaType }

func (Encoder) Encode(buf *audio.Buffer) ([]byte, error) {
	return Encode(buf)
}

// Encode returns a complete 16-bit AIFF file for buf. Samples are quantized
// the same way as the WAV encoder does.
func Encode(buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	interleaved := buf.Interleave()
	data := make([]int, len(interleaved))
	for i, s := range interleaved {
		data[i] = int(utils.Float32ToInt16(s))
	}

	ws := &writeSeeker{}
	enc := aiff.NewEncoder(ws, buf.SampleRate, bitDepth, buf.Channels())

	err := enc.Write(&goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels(),
			SampleRate:  buf.SampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("writing AIFF data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finalizing AIFF header: %w", err)
	}

	return ws.buf, nil
}

// writeSeeker is an in-memory io.WriteSeeker; the AIFF encoder seeks back
// to patch chunk sizes once all samples are written.
type writeSeeker struct {
	buf []byte
	pos int
}

func (w *writeSeeker) Write(p []byte) (int, error) {
	if end := w.pos + len(p); end > len(w.buf) {
		w.buf = append(w.buf, make([]byte, end-len(w.buf))...)
	}
	n := copy(w.buf[w.pos:], p)
	w.pos += n

	return n, nil
}

func (w *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(w.pos) + offset
	case io.SeekEnd:
		pos = int64(len(w.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, errors.New("negative position")
	}

	w.pos = int(pos)
	return pos, nil
}
