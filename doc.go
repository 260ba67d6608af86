// SPDX-License-Identifier: EPL-2.0

// Package audcut trims a recording to a time range, applies linear fades and
// writes the result in a requested container format.
//
// # Quick Start
//
//	f, _ := os.Open("interview.mp3")
//	out, err := audcut.Process(mp3.Decoder{}, f, audcut.Request{
//	    Start:   12.5,
//	    End:     47,
//	    FadeIn:  0.5,
//	    FadeOut: 2,
//	    Format:  "mp3",
//	})
//	if err != nil {
//	    // errors.Is(err, audcut.ErrInvalidRequest), audio.ErrDecodeFailed,
//	    // export.ErrUnsupportedFormat ...
//	}
//	os.WriteFile(audcut.OutputName("", "mp3"), out.Data, 0o644)
//
// The decoder is always passed in; see formats/registry for picking one by
// file extension.
//
// # Pipeline
//
// Process runs three stages, each available on its own:
//
//   - decode: an audio.Decoder produces an audio.Source, drained into a
//     planar audio.Buffer by audio.ReadBuffer
//   - edit: audio.Edit cuts [Start, End) and applies the fades, then
//     audio.Downmix and audio.Resample run when Request.Mono or
//     Request.SampleRate ask for them
//   - export: an export.Dispatcher encodes the buffer
//
// # Format Downgrade
//
// Only WAV and AIFF are encoded natively. MP3 and OGG requests are written
// as 16-bit WAV and the returned export.Output has Downgraded set, with
// MediaType "audio/wav". OutputName still uses the requested extension, so
// a downgraded "edited_audio.mp3" holds WAV data; callers should surface
// the flag to the user.
//
// # Formats
//
// Decoders live under formats/:
//   - WAV (integer PCM) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
package audcut
