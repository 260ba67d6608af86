package export

import "errors"

var (
	// ErrUnsupportedFormat indicates a format identifier outside the recognized set
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
