// SPDX-License-Identifier: EPL-2.0

// Package pcmsource adapts the integer PCM decoders of the go-audio
// family (wav, aiff) to audio.Source.
package pcmsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audcut/audio"
)

// defaultBufSize is the preferred read size in samples.
const defaultBufSize = 4096

// Reader is the subset of the go-audio decoders used by Source.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Config describes the stream behind a Reader.
type Config struct {
	SampleRate int
	Channels   int
	BitDepth   int
	// Unsigned marks 8-bit data stored with a 128 offset, as WAV does.
	Unsigned bool
	// Limit caps the number of samples read; a negative value means no cap.
	Limit int
}

// Source wraps a go-audio decoder and normalizes its integer samples to
// [-1, 1).
type Source struct {
	dec    Reader
	cfg    Config
	scale  float32
	offset int
	read   int
	intBuf *goaudio.IntBuffer
	eof    bool
}

// New returns a Source reading from dec. It fails when cfg describes a
// stream that cannot be decoded.
func New(dec Reader, cfg Config) (*Source, error) {
	if cfg.Channels < 1 || cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz",
			audio.ErrInvalidBuffer, cfg.Channels, cfg.SampleRate)
	}

	scale, err := Scale(cfg.BitDepth)
	if err != nil {
		return nil, err
	}

	s := &Source{
		dec:   dec,
		cfg:   cfg,
		scale: scale,
	}
	if cfg.Unsigned && cfg.BitDepth == 8 {
		s.offset = 128
	}

	return s, nil
}

// Scale returns the divisor that maps a signed sample of the given bit depth
// into [-1, 1).
func Scale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8:
		return 1 << 7, nil
	case 16:
		return 1 << 15, nil
	case 24:
		return 1 << 23, nil
	case 32:
		return 1 << 31, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}

func (s *Source) SampleRate() int { return s.cfg.SampleRate }
func (s *Source) Channels() int   { return s.cfg.Channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	size := max(defaultBufSize, s.cfg.Channels)
	if s.intBuf != nil && cap(s.intBuf.Data) >= s.cfg.Channels {
		size = cap(s.intBuf.Data)
	}
	return size - size%s.cfg.Channels
}

// ReadSamples fills dst with whole frames only. It returns io.EOF once the
// stream, or the configured sample limit, is exhausted.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.cfg.Channels
	if want == 0 {
		return 0, fmt.Errorf("%w: room for %d samples, %d channels",
			audio.ErrPartialFrame, len(dst), s.cfg.Channels)
	}
	if s.cfg.Limit >= 0 {
		want = min(want, s.cfg.Limit-s.read)
		if want <= 0 {
			s.eof = true
			return 0, io.EOF
		}
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, want),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:want]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	switch {
	case errors.Is(err, io.EOF):
		s.eof = true
	case err != nil:
		return 0, err
	}

	// a truncated trailing frame is dropped
	n -= n % s.cfg.Channels
	if n == 0 {
		s.eof = true
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v-s.offset) / s.scale
	}
	s.read += n

	return n, nil
}

// ReadSeeker returns r when it already supports seeking and otherwise
// buffers the whole stream in memory, as the go-audio decoders require
// random access.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
