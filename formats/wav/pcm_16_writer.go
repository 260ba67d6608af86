// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE header.
	HeaderSize = 44

	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
	pcmFormat      = 1
	fmtChunkSize   = 16
)

// FileSize returns the size in bytes of a 16-bit PCM WAV file holding
// frames frames of channels channels.
func FileSize(channels, frames int) int {
	return HeaderSize + channels*frames*bytesPerSample
}

// putHeader fills the 44 byte canonical header into dst.
func putHeader(dst []byte, sampleRate, channels int, dataSize uint32) {
	byteRate := uint32(sampleRate) * uint32(channels) * bytesPerSample
	blockAlign := uint16(channels) * bytesPerSample

	// RIFF header (12 bytes)
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], HeaderSize-8+dataSize)
	copy(dst[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(dst[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(dst[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], byteRate)
	binary.LittleEndian.PutUint16(dst[32:34], blockAlign)
	binary.LittleEndian.PutUint16(dst[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}

// checkLayout verifies that the header fields can hold the given layout.
func checkLayout(sampleRate, channels, samples int) (uint32, error) {
	if channels < 1 || channels > math.MaxUint16/bytesPerSample {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannelNum, channels)
	}
	if sampleRate <= 0 || uint64(sampleRate)*uint64(channels)*bytesPerSample > math.MaxUint32 {
		return 0, fmt.Errorf("%w: sample rate %d", ErrUnsupportedWavLayout, sampleRate)
	}
	if samples%channels != 0 {
		return 0, fmt.Errorf("%w: %d samples, %d channels", ErrSampleCountMismatch, samples, channels)
	}

	dataSize := uint64(samples) * bytesPerSample
	if dataSize > math.MaxUint32-(HeaderSize-8) {
		return 0, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, dataSize)
	}

	return uint32(dataSize), nil
}

// WriteWAV16 writes a 16-bit PCM WAV at sampleRate. samples must be
// interleaved int16 PCM, channel-minor, with len(samples) a multiple of
// channels.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	dataSize, err := checkLayout(sampleRate, channels, len(samples))
	if err != nil {
		return err
	}

	header := make([]byte, HeaderSize)
	putHeader(header, sampleRate, channels, dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// 8KB writes
	const chunkSize = 4096
	buf := make([]byte, min(len(samples), chunkSize)*bytesPerSample)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*bytesPerSample]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing WAV data: %w", err)
		}
	}

	return nil
}
