// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audcut/audio"
)

func TestEncode_Container(t *testing.T) {
	t.Parallel()

	buf := audio.NewBuffer(8000, 1, 100)
	data, err := Encode(buf)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if string(data[0:4]) != "FORM" {
		t.Errorf("container id = %q, want FORM", data[0:4])
	}
	if string(data[8:12]) != "AIFF" {
		t.Errorf("form type = %q, want AIFF", data[8:12])
	}
	// 100 mono frames of 16 bits plus chunk headers
	if len(data) <= 200 {
		t.Errorf("len = %d, want more than the raw sample data", len(data))
	}
	if !bytes.Contains(data, []byte("COMM")) || !bytes.Contains(data, []byte("SSND")) {
		t.Error("missing COMM or SSND chunk")
	}
}

func TestEncode_InvalidBuffer(t *testing.T) {
	t.Parallel()

	for _, buf := range []*audio.Buffer{
		nil,
		{SampleRate: 8000},
		{Data: [][]float32{{0}}},
	} {
		if _, err := Encode(buf); !errors.Is(err, audio.ErrInvalidBuffer) {
			t.Errorf("Encode(%v) error = %v, want ErrInvalidBuffer", buf, err)
		}
	}
}

func TestEncoder_Contract(t *testing.T) {
	t.Parallel()

	var enc Encoder
	if enc.MediaType() != "audio/aiff" {
		t.Errorf("MediaType() = %q, want audio/aiff", enc.MediaType())
	}

	data, err := enc.Encode(audio.NewBuffer(22050, 2, 10))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(data[0:4]) != "FORM" {
		t.Errorf("container id = %q, want FORM", data[0:4])
	}
}

func TestWriteSeeker(t *testing.T) {
	t.Parallel()

	ws := &writeSeeker{}
	ws.Write([]byte("hello world"))

	if _, err := ws.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	ws.Write([]byte("J"))

	if pos, _ := ws.Seek(-5, io.SeekEnd); pos != 6 {
		t.Errorf("Seek(-5, end) = %d, want 6", pos)
	}
	ws.Write([]byte("there!"))

	if got := string(ws.buf); got != "Jello there!" {
		t.Errorf("buf = %q, want %q", got, "Jello there!")
	}

	if _, err := ws.Seek(-100, io.SeekCurrent); err == nil {
		t.Error("Seek() to negative position succeeded")
	}
	if _, err := ws.Seek(0, 42); err == nil {
		t.Error("Seek() with invalid whence succeeded")
	}

	// seeking past the end and writing zero-fills the gap
	ws.Seek(2, io.SeekEnd)
	ws.Write([]byte("x"))
	if got := ws.buf[len(ws.buf)-3:]; !bytes.Equal(got, []byte{0, 0, 'x'}) {
		t.Errorf("tail = %v, want [0 0 x]", got)
	}
}

func BenchmarkEncode(b *testing.B) {
	buf := audio.NewBuffer(44100, 2, 44100)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := Encode(buf); err != nil {
			b.Fatal(err)
		}
	}
}
