package flac

import "errors"

var (
	// ErrUnsupportedStream indicates stream parameters the decoder cannot handle
	ErrUnsupportedStream = errors.New("unsupported FLAC stream")

	// ErrInvalidFrame indicates a frame whose subframes disagree with the stream info
	ErrInvalidFrame = errors.New("invalid FLAC frame")
)
