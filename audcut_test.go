// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"bytes"
	"errors"
	"io"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/export"
	"github.com/ik5/audcut/formats/wav"
	"github.com/ik5/audcut/internal/audiotest"
)

// rampBuffer returns seconds of mono audio whose samples count up from 0.
func rampBuffer(sampleRate int, seconds float64) *audio.Buffer {
	frames := int(float64(sampleRate) * seconds)
	buf := audio.NewBuffer(sampleRate, 1, frames)
	for i := range buf.Data[0] {
		buf.Data[0][i] = float32(i) / float32(frames)
	}
	return buf
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"range", Request{Start: 1, End: 2}, false},
		{"fades", Request{Start: 0, End: 10, FadeIn: 2, FadeOut: 3}, false},
		{"fades longer than range", Request{Start: 0, End: 1, FadeIn: 5, FadeOut: 5}, false},
		{"end past duration", Request{Start: 0, End: 1e6}, false},
		{"negative start", Request{Start: -1, End: 2}, true},
		{"end equals start", Request{Start: 2, End: 2}, true},
		{"end before start", Request{Start: 3, End: 2}, true},
		{"negative fade in", Request{End: 2, FadeIn: -0.1}, true},
		{"negative fade out", Request{End: 2, FadeOut: -0.1}, true},
		{"NaN end", Request{End: math.NaN()}, true},
		{"infinite end", Request{End: math.Inf(1)}, true},
		{"NaN fade", Request{End: 1, FadeOut: math.NaN()}, true},
		{"resample", Request{End: 1, SampleRate: 8000, Mono: true}, false},
		{"negative sample rate", Request{End: 1, SampleRate: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("Validate() error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestProcessBuffer_TrimToOneSecond(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(8000, 3)
	out, err := ProcessBuffer(buf, Request{Start: 1, End: 2, Format: "wav"})
	if err != nil {
		t.Fatalf("ProcessBuffer() error = %v", err)
	}

	if len(out.Data) != wav.FileSize(1, 8000) {
		t.Errorf("len = %d, want %d", len(out.Data), wav.FileSize(1, 8000))
	}
	if out.Downgraded {
		t.Error("Downgraded = true for wav")
	}

	// the source buffer is left alone
	if buf.Frames() != 24000 || buf.Data[0][8000] != float32(8000)/24000 {
		t.Error("ProcessBuffer modified its input")
	}
}

func TestProcessBuffer_MP3Downgrade(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(8000, 1)
	req := Request{Start: 0.25, End: 0.75, FadeIn: 0.1, FadeOut: 0.1, Format: "mp3"}

	out, err := ProcessBuffer(buf, req)
	if err != nil {
		t.Fatalf("ProcessBuffer() error = %v", err)
	}
	if !out.Downgraded || out.MediaType != "audio/wav" {
		t.Errorf("Output = %v/%q, want downgraded audio/wav", out.Downgraded, out.MediaType)
	}

	req.Format = "wav"
	native, err := ProcessBuffer(buf, req)
	if err != nil {
		t.Fatalf("ProcessBuffer(wav) error = %v", err)
	}
	if !bytes.Equal(out.Data, native.Data) {
		t.Error("downgraded mp3 differs from the wav encoding")
	}
}

func TestProcessBuffer_EmptyFormatIsWAV(t *testing.T) {
	t.Parallel()

	out, err := ProcessBuffer(rampBuffer(8000, 1), Request{End: 1})
	if err != nil {
		t.Fatalf("ProcessBuffer() error = %v", err)
	}
	if out.Produced != export.WAV || out.Downgraded {
		t.Errorf("Produced = %q downgraded=%v, want native wav", out.Produced, out.Downgraded)
	}
}

func TestProcessBuffer_MonoResample(t *testing.T) {
	t.Parallel()

	buf := &audio.Buffer{SampleRate: 16000, Data: audiotest.ConstantChannels(2, 16000, 0.5)}

	var logs bytes.Buffer
	out, err := ProcessBuffer(buf, Request{End: 0.5, Mono: true, SampleRate: 8000},
		WithLogger(log.New(&logs, "", 0)))
	if err != nil {
		t.Fatalf("ProcessBuffer() error = %v", err)
	}

	if len(out.Data) != wav.FileSize(1, 4000) {
		t.Errorf("len = %d, want %d", len(out.Data), wav.FileSize(1, 4000))
	}
	for _, want := range []string{"mixed down to mono", "resampled 16000 Hz to 8000 Hz"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log %q does not contain %q", logs.String(), want)
		}
	}

	// same rate and a single channel leave the edit as it is
	mono := &audio.Buffer{SampleRate: 8000, Data: audiotest.ConstantChannels(1, 8000, 0.5)}
	plain, _ := ProcessBuffer(mono, Request{End: 1})
	same, err := ProcessBuffer(mono, Request{End: 1, Mono: true, SampleRate: 8000})
	if err != nil {
		t.Fatalf("ProcessBuffer() error = %v", err)
	}
	if !bytes.Equal(plain.Data, same.Data) {
		t.Error("no-op conversion changed the output")
	}
}

func TestProcessBuffer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  *audio.Buffer
		req  Request
		want error
	}{
		{"bad request", rampBuffer(8000, 1), Request{Start: 2, End: 1}, ErrInvalidRequest},
		{"unknown format", rampBuffer(8000, 1), Request{End: 1, Format: "xyz"}, export.ErrUnsupportedFormat},
		{"invalid buffer", &audio.Buffer{SampleRate: 8000}, Request{End: 1}, audio.ErrInvalidBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ProcessBuffer(tt.buf, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("ProcessBuffer() error = %v, want %v", err, tt.want)
			}
		})
	}
}

// countingDecoder wraps another decoder and counts Decode calls.
type countingDecoder struct {
	audio.Decoder
	calls int
}

func (d *countingDecoder) Decode(r io.Reader) (audio.Source, error) {
	d.calls++
	return d.Decoder.Decode(r)
}

func TestProcess_WAVRoundTrip(t *testing.T) {
	t.Parallel()

	in, err := wav.Encode(rampBuffer(8000, 3))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	out, err := Process(wav.Decoder{}, bytes.NewReader(in), Request{Start: 1, End: 2, Format: "wav"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out.Data) != wav.FileSize(1, 8000) {
		t.Errorf("len = %d, want %d", len(out.Data), wav.FileSize(1, 8000))
	}
}

func TestProcess_ChecksBeforeDecoding(t *testing.T) {
	t.Parallel()

	dec := &countingDecoder{Decoder: wav.Decoder{}}

	if _, err := Process(dec, strings.NewReader(""), Request{End: 1, Format: "xyz"}); !errors.Is(err, export.ErrUnsupportedFormat) {
		t.Errorf("Process() error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Process(dec, strings.NewReader(""), Request{End: -1}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Process() error = %v, want ErrInvalidRequest", err)
	}
	if dec.calls != 0 {
		t.Errorf("Decode called %d times, want 0", dec.calls)
	}
}

// sourceDecoder hands out a prepared source.
type sourceDecoder struct {
	src audio.Source
	err error
}

func (d sourceDecoder) Decode(io.Reader) (audio.Source, error) { return d.src, d.err }

func TestProcess_DecodeFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt input")

	// a decoder error that does not wrap ErrDecodeFailed gets wrapped
	_, err := Process(sourceDecoder{err: boom}, nil, Request{End: 1})
	if !errors.Is(err, boom) || !errors.Is(err, audio.ErrDecodeFailed) {
		t.Errorf("Process() error = %v, want %v wrapped in ErrDecodeFailed", err, boom)
	}

	// as does a failure while reading samples
	src := audiotest.NewIndexSource(8000, 1, 8000).FailAfter(100, boom)
	_, err = Process(sourceDecoder{src: src}, nil, Request{End: 1})
	if !errors.Is(err, boom) || !errors.Is(err, audio.ErrDecodeFailed) {
		t.Errorf("Process() error = %v, want %v wrapped in ErrDecodeFailed", err, boom)
	}
	if !src.Closed() {
		t.Error("source was not closed")
	}

	// real decoder on garbage
	_, err = Process(wav.Decoder{}, strings.NewReader("garbage"), Request{End: 1})
	if !errors.Is(err, audio.ErrDecodeFailed) {
		t.Errorf("Process(garbage) error = %v, want ErrDecodeFailed", err)
	}
}

func TestProcess_Options(t *testing.T) {
	t.Parallel()

	var logs strings.Builder
	logger := log.New(&logs, "", 0)

	src := audiotest.NewSineSource(8000, 2, 8000, 440)
	out, err := Process(sourceDecoder{src: src}, nil, Request{End: 0.5, Format: "ogg"}, WithLogger(logger))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !out.Downgraded {
		t.Error("Downgraded = false for ogg")
	}
	for _, want := range []string{"decoded 2 channel(s), 8000 frames", "4000 frames kept", "writing wav instead"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log %q does not mention %q", logs.String(), want)
		}
	}

	// a custom dispatcher decides what is recognized
	d := export.NewDispatcher()
	d.Register("flac", wav.Encoder{})
	if _, err := ProcessBuffer(rampBuffer(8000, 1), Request{End: 1, Format: "flac"}, WithDispatcher(d)); err != nil {
		t.Errorf("ProcessBuffer(flac) with custom dispatcher error = %v", err)
	}
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, format string
		want         string
	}{
		{"", "wav", "edited_audio.wav"},
		{"", "mp3", "edited_audio.mp3"},
		{"", "OGG", "edited_audio.ogg"},
		{"", "", "edited_audio.wav"},
		{"take2", ".aif", "take2.aiff"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.base, tt.format); got != tt.want {
			t.Errorf("OutputName(%q, %q) = %q, want %q", tt.base, tt.format, got, tt.want)
		}
	}
}
