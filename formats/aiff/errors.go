package aiff

import "errors"

var (
	// ErrNotAiffFile reports input without a FORM/AIFF header
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth reports a sample size other than 8, 16, 24 or 32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")

	// ErrUnsupportedAiffLayout reports a COMM chunk with no channels or no sample rate
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
