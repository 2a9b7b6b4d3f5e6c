package output

import "errors"

var (
	// ErrInitialize is returned when the underlying audio backend fails to
	// initialize.
	ErrInitialize = errors.New("output: failed to initialize audio backend")
	// ErrNoDefaultDevice is returned when the host API reports no default
	// output device.
	ErrNoDefaultDevice = errors.New("output: no default output device")
	// ErrNoSupportedConfig is returned when no stream configuration could
	// be negotiated for the requested channel count and sample rate.
	ErrNoSupportedConfig = errors.New("output: no supported stream configuration")
	// ErrUnsupportedSampleFormat is returned when asked to build an Output
	// for a sample type the audio backend cannot stream natively.
	ErrUnsupportedSampleFormat = errors.New("output: unsupported native sample format")
	// ErrBuildStream wraps a failure opening the audio stream.
	ErrBuildStream = errors.New("output: failed to open stream")
	// ErrControl wraps a failure starting, stopping, or closing the stream.
	ErrControl = errors.New("output: stream control failed")
)
