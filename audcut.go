// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/export"
)

// DefaultOutputBase is the file name, without extension, offered for an
// edited recording.
const DefaultOutputBase = "edited_audio"

var (
	// ErrInvalidRequest indicates a Request that fails Validate
	ErrInvalidRequest = errors.New("invalid processing request")
)

// Request describes one edit: the range to keep, the fades to apply inside
// it and the container to produce. Times are in seconds. An empty Format
// means WAV.
type Request struct {
	Start   float64
	End     float64
	FadeIn  float64
	FadeOut float64
	Format  string

	// FadeMode selects the fade envelope; the zero value is audio.FadeCompat.
	FadeMode audio.FadeMode

	// Mono mixes the edit down to one channel before encoding.
	Mono bool
	// SampleRate converts the edit to this rate before encoding; zero keeps
	// the input rate.
	SampleRate int
}

// Validate checks that the times are finite, that 0 <= Start < End, that
// both fades are non-negative and that SampleRate is not negative. Times
// past the end of the recording are not an error; the editor clamps them.
func (r Request) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"start", r.Start},
		{"end", r.End},
		{"fade-in", r.FadeIn},
		{"fade-out", r.FadeOut},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidRequest, v.name, v.value)
		}
		if v.value < 0 {
			return fmt.Errorf("%w: %s is negative (%v)", ErrInvalidRequest, v.name, v.value)
		}
	}

	if r.End <= r.Start {
		return fmt.Errorf("%w: end %v is not after start %v", ErrInvalidRequest, r.End, r.Start)
	}
	if r.SampleRate < 0 {
		return fmt.Errorf("%w: sample rate is negative (%d)", ErrInvalidRequest, r.SampleRate)
	}

	return nil
}

// EditOptions converts r into editor options.
func (r Request) EditOptions() audio.EditOptions {
	return audio.EditOptions{
		Start:   r.Start,
		End:     r.End,
		FadeIn:  r.FadeIn,
		FadeOut: r.FadeOut,
		Mode:    r.FadeMode,
	}
}

func (r Request) format() string {
	if r.Format == "" {
		return string(export.WAV)
	}
	return r.Format
}

type config struct {
	dispatcher *export.Dispatcher
	logger     *log.Logger
}

// Option configures Process and ProcessBuffer.
type Option func(*config)

// WithDispatcher replaces the default export.Default() dispatcher.
func WithDispatcher(d *export.Dispatcher) Option {
	return func(c *config) {
		c.dispatcher = d
	}
}

// WithLogger sets the logger for pipeline progress and downgrade notices.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(c)
	}
	if c.dispatcher == nil {
		c.dispatcher = export.Default(export.WithLogger(c.logger))
	}

	return c
}

// Process decodes r with dec, cuts and fades the result as req asks and
// encodes it in req.Format.
//
// The request and its format are checked before anything is decoded. Decoder
// failures wrap audio.ErrDecodeFailed.
func Process(dec audio.Decoder, r io.Reader, req Request, opts ...Option) (export.Output, error) {
	c := newConfig(opts)
	if err := c.check(req); err != nil {
		return export.Output{}, err
	}

	src, err := dec.Decode(r)
	if err != nil {
		if !errors.Is(err, audio.ErrDecodeFailed) {
			err = fmt.Errorf("%w: %w", audio.ErrDecodeFailed, err)
		}
		return export.Output{}, err
	}
	defer src.Close()

	buf, err := audio.ReadBuffer(src)
	if err != nil {
		return export.Output{}, err
	}
	c.logger.Printf("decoded %d channel(s), %d frames at %d Hz", buf.Channels(), buf.Frames(), buf.SampleRate)

	return c.process(buf, req)
}

// ProcessBuffer is Process for audio that is already decoded. buf is not
// modified.
func ProcessBuffer(buf *audio.Buffer, req Request, opts ...Option) (export.Output, error) {
	c := newConfig(opts)
	if err := c.check(req); err != nil {
		return export.Output{}, err
	}

	return c.process(buf, req)
}

func (c *config) check(req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !c.dispatcher.Recognizes(req.format()) {
		return fmt.Errorf("%w: %q", export.ErrUnsupportedFormat, req.Format)
	}

	return nil
}

func (c *config) process(buf *audio.Buffer, req Request) (export.Output, error) {
	edited, err := audio.Edit(buf, req.EditOptions())
	if err != nil {
		return export.Output{}, err
	}
	c.logger.Printf("edited %.3fs..%.3fs: %d frames kept", req.Start, req.End, edited.Frames())

	if req.Mono && edited.Channels() > 1 {
		if edited, err = audio.Downmix(edited); err != nil {
			return export.Output{}, err
		}
		c.logger.Printf("mixed down to mono")
	}
	if req.SampleRate > 0 && req.SampleRate != edited.SampleRate {
		from := edited.SampleRate
		if edited, err = audio.Resample(edited, req.SampleRate); err != nil {
			return export.Output{}, err
		}
		c.logger.Printf("resampled %d Hz to %d Hz: %d frames", from, edited.SampleRate, edited.Frames())
	}

	return c.dispatcher.Export(edited, req.format())
}

// OutputName returns the file name for an edit saved as format. An empty
// base yields DefaultOutputBase. The extension is the requested one even
// when the content was downgraded to another container.
func OutputName(base, format string) string {
	if base == "" {
		base = DefaultOutputBase
	}
	if format == "" {
		format = string(export.WAV)
	}

	return base + "." + string(export.Normalize(format))
}
