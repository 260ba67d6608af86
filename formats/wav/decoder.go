// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/internal/pcmsource"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// Decoder reads integer PCM WAV files of 8, 16, 24 or 32 bits. Chunks other
// than "fmt " and "data" are skipped.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcmsource.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailed, err)
	}

	if err := checkRIFF(rs); err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", audio.ErrDecodeFailed, ErrUnsupportedWavLayout, err)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: %w: missing fmt chunk", audio.ErrDecodeFailed, ErrUnsupportedWavLayout)
	}

	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return nil, fmt.Errorf("%w: %w: format tag %#x", audio.ErrDecodeFailed, ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", audio.ErrDecodeFailed, ErrUnsupportedWavLayout, err)
	}

	bitDepth := int(dec.BitDepth)
	limit := -1
	if bitDepth >= 8 {
		// the data chunk size bounds the read; trailing chunks are not audio
		limit = dec.PCMSize / (bitDepth / 8)
	}

	src, err := pcmsource.New(dec, pcmsource.Config{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   bitDepth,
		Unsigned:   true,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", audio.ErrDecodeFailed, ErrOnlyPCMSupported, err)
	}

	return src, nil
}

// checkRIFF verifies the RIFF/WAVE preamble and rewinds rs.
func checkRIFF(rs io.ReadSeeker) error {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrDecodeFailed, err)
	}

	preamble := make([]byte, 12)
	if _, err := io.ReadFull(rs, preamble); err != nil {
		return fmt.Errorf("%w: %w: %w", audio.ErrDecodeFailed, ErrNotWavFile, err)
	}
	if !bytes.Equal(preamble[:4], []byte("RIFF")) || !bytes.Equal(preamble[8:12], []byte("WAVE")) {
		return fmt.Errorf("%w: %w", audio.ErrDecodeFailed, ErrNotWavFile)
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrDecodeFailed, err)
	}

	return nil
}
