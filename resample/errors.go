package resample

import "errors"

var (
	// ErrInvalidCodecParameters is returned by New when the source track's
	// sample rate or channel count is unknown.
	ErrInvalidCodecParameters = errors.New("resample: invalid codec parameters")
	// ErrChannelMismatch is returned by Engine.Push when a packet's channel
	// count doesn't match the engine's configured channel count.
	ErrChannelMismatch = errors.New("resample: packet channel count mismatch")
	// ErrBackend wraps a failure from the underlying resampling library.
	ErrBackend = errors.New("resample: backend error")
)
