// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"strings"
)

// Format identifies an output container by its usual file extension.
type Format string

const (
	WAV  Format = "wav"
	MP3  Format = "mp3"
	OGG  Format = "ogg"
	AIFF Format = "aiff"
)

// Builtin lists the formats every Dispatcher recognizes.
var Builtin = []Format{WAV, MP3, OGG, AIFF}

var aliases = map[string]Format{
	"wave": WAV,
	"aif":  AIFF,
	"oga":  OGG,
}

// Normalize maps an identifier such as ".WAV" or "aif" onto its canonical
// Format. It does not check that the format is known.
func Normalize(s string) Format {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if f, ok := aliases[key]; ok {
		return f
	}
	return Format(key)
}

// ParseFormat normalizes s and checks it against the builtin formats.
func ParseFormat(s string) (Format, error) {
	f := Normalize(s)
	for _, b := range Builtin {
		if f == b {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

func (f Format) String() string { return string(f) }
