package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported      = errors.New("only integer PCM WAV is supported")
	ErrSampleCountMismatch   = errors.New("sample count is not a multiple of the channel count")
	ErrDataTooLarge          = errors.New("audio data exceeds the WAV size limit")
	ErrUnsupportedChannelNum = errors.New("unsupported number of channels")
)
