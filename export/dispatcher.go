// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"io"
	"log"
	"slices"
	"sync"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/aiff"
	"github.com/ik5/audcut/formats/wav"
)

// Encoder serializes a buffer into a complete file of one container format.
type Encoder interface {
	Encode(buf *audio.Buffer) ([]byte, error)
	MediaType() string
}

// Output is an encoded file. Data is owned by the caller.
type Output struct {
	Data      []byte
	MediaType string

	// Requested is the normalized format asked for and Produced the one
	// actually written. They differ only when Downgraded is set.
	Requested  Format
	Produced   Format
	Downgraded bool
}

// Dispatcher selects an encoder per format. Recognized formats without a
// native encoder are written by the fallback encoder and flagged as
// downgraded.
type Dispatcher struct {
	mtx        sync.RWMutex
	encoders   map[Format]Encoder
	recognized map[Format]struct{}

	fallback        Format
	fallbackEncoder Encoder

	logger *log.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used to report downgrades.
func WithLogger(l *log.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithEncoder registers a native encoder.
func WithEncoder(f Format, e Encoder) Option {
	return func(d *Dispatcher) {
		d.register(f, e)
	}
}

// WithFallback replaces the encoder used for recognized formats that have
// no native encoder. The fallback is registered natively for f as well.
func WithFallback(f Format, e Encoder) Option {
	return func(d *Dispatcher) {
		d.register(f, e)
		d.fallback = Normalize(string(f))
		d.fallbackEncoder = e
	}
}

// NewDispatcher returns a dispatcher recognizing the builtin formats, with
// WAV as native and fallback encoder.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		encoders:        make(map[Format]Encoder),
		recognized:      make(map[Format]struct{}),
		fallback:        WAV,
		fallbackEncoder: wav.Encoder{},
		logger:          log.New(io.Discard, "", 0),
	}

	for _, f := range Builtin {
		d.recognized[f] = struct{}{}
	}
	d.encoders[WAV] = wav.Encoder{}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Default returns a dispatcher with every encoder this module ships: WAV
// and AIFF.
func Default(opts ...Option) *Dispatcher {
	return NewDispatcher(append([]Option{WithEncoder(AIFF, aiff.Encoder{})}, opts...)...)
}

func (d *Dispatcher) register(f Format, e Encoder) {
	f = Normalize(string(f))
	d.encoders[f] = e
	d.recognized[f] = struct{}{}
}

// Register adds or replaces the native encoder for f and makes f a
// recognized format.
func (d *Dispatcher) Register(f Format, e Encoder) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.register(f, e)
}

// Lookup returns the native encoder for format, if any.
func (d *Dispatcher) Lookup(format string) (Encoder, bool) {
	d.mtx.RLock()
	defer d.mtx.RUnlock()

	e, ok := d.encoders[Normalize(format)]
	return e, ok
}

// Recognizes reports whether Export accepts format.
func (d *Dispatcher) Recognizes(format string) bool {
	d.mtx.RLock()
	defer d.mtx.RUnlock()

	_, ok := d.recognized[Normalize(format)]
	return ok
}

// Recognized lists the formats Export accepts, sorted.
func (d *Dispatcher) Recognized() []Format {
	d.mtx.RLock()
	defer d.mtx.RUnlock()

	out := make([]Format, 0, len(d.recognized))
	for f := range d.recognized {
		out = append(out, f)
	}
	slices.Sort(out)

	return out
}

// Export encodes buf as format. An unrecognized format fails with
// ErrUnsupportedFormat before any encoding work. A recognized format
// without a native encoder is written by the fallback encoder and the
// returned Output has Downgraded set.
func (d *Dispatcher) Export(buf *audio.Buffer, format string) (Output, error) {
	requested := Normalize(format)

	d.mtx.RLock()
	_, known := d.recognized[requested]
	enc, native := d.encoders[requested]
	fallback, fallbackEncoder := d.fallback, d.fallbackEncoder
	d.mtx.RUnlock()

	if !known {
		return Output{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	out := Output{
		Requested: requested,
		Produced:  requested,
	}
	if !native {
		enc = fallbackEncoder
		out.Produced = fallback
		out.Downgraded = true
		d.logger.Printf("export: no %s encoder available, writing %s instead", requested, fallback)
	}

	data, err := enc.Encode(buf)
	if err != nil {
		return Output{}, fmt.Errorf("export %s: %w", out.Produced, err)
	}

	out.Data = data
	out.MediaType = enc.MediaType()

	return out, nil
}
