// SPDX-License-Identifier: EPL-2.0

// Package registry wires every decoder under formats/ into an
// audio.Registry keyed by file extension.
package registry

import (
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/aiff"
	"github.com/ik5/audcut/formats/flac"
	"github.com/ik5/audcut/formats/mp3"
	"github.com/ik5/audcut/formats/vorbis"
	"github.com/ik5/audcut/formats/wav"
)

// New returns a registry holding all built-in decoders.
func New() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}
