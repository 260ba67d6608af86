// SPDX-License-Identifier: EPL-2.0

// Package export turns an edited audio.Buffer into an encoded file.
//
// A Dispatcher maps output formats to encoders. Adding a native encoder is
// a registration, not a change of control flow:
//
//	d := export.Default()
//	d.Register("flac", myFlacEncoder)
//
// Formats the dispatcher recognizes but cannot encode natively (MP3 and OGG
// out of the box) are written as WAV. The Output then carries
// Downgraded=true, Produced=WAV and the audio/wav media type so callers can
// tell the user that the file is not in the requested container.
// Unrecognized identifiers fail with ErrUnsupportedFormat.
package export
