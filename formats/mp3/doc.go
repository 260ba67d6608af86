// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 (MPEG-1/2 Layer III) audio through
// github.com/hajimehoshi/go-mp3.
//
// The decoder always produces interleaved stereo; mono files are upmixed by
// go-mp3 itself. Samples are normalized from 16-bit PCM to [-1, 1).
//
//	f, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, audio.ErrDecodeFailed) holds
//	}
//	buf, err := audio.ReadBuffer(src)
//
// Encoding MP3 is not supported. An export request for MP3 is served by the
// WAV encoder instead; see package export.
package mp3
