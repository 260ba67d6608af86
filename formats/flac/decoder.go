// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

const defaultBufSize = 4096

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	scale      float32

	// interleaved samples of the current frame not yet returned
	pending []float32
	buf     []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.stream.Close() }

func (s *source) BufSize() int {
	size := max(defaultBufSize, s.channels)
	return size - size%s.channels
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, fmt.Errorf("%w: room for %d samples, %d channels",
			audio.ErrPartialFrame, len(dst), s.channels)
	}

	n := 0
	for n < want {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.nextFrame(); err != nil {
				if errors.Is(err, io.EOF) {
					s.eof = true
					continue
				}
				return n, err
			}
			continue
		}

		c := copy(dst[n:want], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 && s.eof {
		return 0, io.EOF
	}
	return n, nil
}

// nextFrame decodes one FLAC frame into s.pending.
func (s *source) nextFrame() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		return err
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: %d subframes, want %d", ErrInvalidFrame, len(f.Subframes), s.channels)
	}

	blockSize := len(f.Subframes[0].Samples)
	for c, sub := range f.Subframes[1:] {
		if len(sub.Samples) != blockSize {
			return fmt.Errorf("%w: subframe %d has %d samples, want %d",
				ErrInvalidFrame, c+1, len(sub.Samples), blockSize)
		}
	}

	s.buf = s.buf[:0]
	for i := range blockSize {
		for _, sub := range f.Subframes {
			s.buf = append(s.buf, float32(sub.Samples[i])/s.scale)
		}
	}
	s.pending = s.buf

	return nil
}

// Decoder reads FLAC streams through github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: flac: %w", audio.ErrDecodeFailed, err)
	}

	src, err := newSource(stream, int(stream.Info.SampleRate), int(stream.Info.NChannels), int(stream.Info.BitsPerSample))
	if err != nil {
		stream.Close()
		return nil, err
	}

	return src, nil
}

func newSource(stream frameParser, sampleRate, channels, bitsPerSample int) (*source, error) {
	if sampleRate <= 0 || channels < 1 || bitsPerSample < 1 || bitsPerSample > 32 {
		return nil, fmt.Errorf("%w: %w: %d Hz, %d channels, %d bits",
			audio.ErrDecodeFailed, ErrUnsupportedStream, sampleRate, channels, bitsPerSample)
	}

	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      float32(uint64(1) << (bitsPerSample - 1)),
	}, nil
}
