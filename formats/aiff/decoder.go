// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/internal/pcmsource"
)

// Decoder reads uncompressed AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := pcmsource.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailed, err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailed, ErrNotAiffFile)
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailed, ErrUnsupportedAiffLayout)
	}

	src, err := pcmsource.New(dec, pcmsource.Config{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   int(dec.BitDepth),
		Limit:      -1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", audio.ErrDecodeFailed, ErrUnsupportedBitDepth, err)
	}

	return src, nil
}
