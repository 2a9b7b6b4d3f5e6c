package decode

import "errors"

// Sentinel errors returned by DecodedTrack.Next and DecodedTrack.Progress.
// Callers should compare with errors.Is.
var (
	// ErrEndOfStream is returned by Next once the underlying demux/decode
	// pipeline has no more samples.
	ErrEndOfStream = errors.New("decode: end of stream")
	// ErrDecode wraps a failure from the external demuxer/decoder process.
	ErrDecode = errors.New("decode: decode failed")
	// ErrIO wraps a failure reading the decode pipeline's output or
	// opening the source file.
	ErrIO = errors.New("decode: io error")
	// ErrTrackUnavailable is returned by Open when the file has no usable
	// audio stream.
	ErrTrackUnavailable = errors.New("decode: no audio track available")
	// ErrProgressUnavailable is returned by Progress when the codec's
	// time base (sample rate) is not known.
	ErrProgressUnavailable = errors.New("decode: progress unavailable, missing time base")
)
