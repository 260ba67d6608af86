// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const defaultReadSize = 4096

// ReadBuffer drains src and returns its content as a planar Buffer.
//
// The source is read until io.EOF; it is not closed. Any other error from
// the source is wrapped with ErrDecodeFailed.
func ReadBuffer(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: source reports %d channels at %d Hz",
			ErrInvalidBuffer, channels, src.SampleRate())
	}

	size := src.BufSize()
	if size < channels {
		size = defaultReadSize
	}
	// keep every read frame aligned
	size -= size % channels
	if size == 0 {
		size = channels
	}

	buf := NewBuffer(src.SampleRate(), channels, 0)
	tmp := make([]float32, size)

	for {
		n, err := src.ReadSamples(tmp)
		if n > 0 {
			if n%channels != 0 {
				return nil, fmt.Errorf("%w: %d values for %d channels", ErrPartialFrame, n, channels)
			}

			for f := range n / channels {
				base := f * channels
				for c := range channels {
					buf.Data[c] = append(buf.Data[c], tmp[base+c])
				}
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
		}
		if n == 0 {
			// no progress and no error: treat as end of stream
			break
		}
	}

	return buf, nil
}
