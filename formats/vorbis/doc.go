// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio through
// github.com/jfreymuth/oggvorbis.
//
// Samples are delivered as the float32 values produced by the Vorbis
// decoder, interleaved in the stream's channel order:
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	buf, err := audio.ReadBuffer(src)
//
// Encoding Vorbis is not supported. An export request for OGG is served by
// the WAV encoder instead; see package export.
package vorbis
