// Package resample converts a decoded track's native sample rate to an
// output device's sample rate using a windowed-sinc resampler, buffering
// across packet boundaries so the resampler always sees fixed-size chunks
// regardless of how the decoder packetized the source.
package resample

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"

	"github.com/richinsley/spindle/buffer"
	"github.com/richinsley/spindle/decode"
)

const defaultChunkFrames = 1024
const mp3ChunkFrames = 1152

// sincLength, sincCutoff, sincOversampling, and the Blackman-Harris² window
// reproduce original_source/audio-player/src/resampler.rs's
// SincInterpolationParameters exactly: a 256-tap windowed-sinc kernel,
// 0.95 cutoff, 256x oversampling table, linear inter-sinc interpolation.
const (
	sincLength       = 256
	sincCutoff       = 0.95
	sincOversampling = 256
)

// Engine resamples one track's decoded packets to a fixed output sample
// rate. It is not safe for concurrent use.
type Engine struct {
	channels int
	frames   int
	cfg      *resampling.Config

	bypass  bool
	backend resampling.Resampler

	ring *ring
}

// New builds an Engine for a track's codec parameters and a target output
// sample rate. When the rates already match, the Engine runs in bypass
// mode and never touches the resampling backend.
func New(params decode.CodecParameters, outputSampleRate uint32) (*Engine, error) {
	if params.SampleRate == 0 || params.Channels == 0 {
		return nil, ErrInvalidCodecParameters
	}

	e := &Engine{
		channels: int(params.Channels),
		frames:   chunkFramesFor(params),
	}
	e.ring = newRing(e.channels, e.frames)

	if params.SampleRate == outputSampleRate {
		e.bypass = true
		return e, nil
	}

	e.cfg = &resampling.Config{
		InputRate:  float64(params.SampleRate),
		OutputRate: float64(outputSampleRate),
		Channels:   e.channels,
		Quality: resampling.QualitySpec{
			Preset: resampling.QualityHigh,
			Sinc: &resampling.SincParameters{
				Length:             sincLength,
				Cutoff:             sincCutoff,
				OversamplingFactor: sincOversampling,
				Interpolation:      resampling.InterpolationLinear,
				Window:             resampling.WindowBlackmanHarris2,
			},
		},
	}

	backend, err := resampling.New(e.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	e.backend = backend
	return e, nil
}

// Push enqueues one decoded packet into the cross-packet buffering ring.
func (e *Engine) Push(pkt buffer.Buffer) error {
	if pkt.Channels() != 0 && pkt.Channels() != e.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, pkt.Channels(), e.channels)
	}
	e.ring.push(pkt)
	return nil
}

// Pop drains and resamples one ready fixed-size chunk from the ring. It
// returns ok=false, not an error, when no full chunk is currently buffered
// — callers should keep calling Push with further packets and retry.
func (e *Engine) Pop() (buffer.Buffer, bool, error) {
	chunk, ok := e.ring.pop()
	if !ok {
		return buffer.Buffer{}, false, nil
	}
	if e.bypass {
		return chunk, true, nil
	}

	out, err := e.backend.Process(chunk.Interleave())
	if err != nil {
		return buffer.Buffer{}, false, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return buffer.FromInterleaved(out, e.channels), true, nil
}

// Flush resamples and returns whatever is left buffered once the source
// has no more packets, even if it never filled a whole chunk. Call it once
// after Push stops being called for a track, in place of a final Pop.
func (e *Engine) Flush() (buffer.Buffer, bool, error) {
	chunk, ok := e.ring.flush()
	if !ok {
		return buffer.Buffer{}, false, nil
	}
	if e.bypass {
		return chunk, true, nil
	}

	out, err := e.backend.Process(chunk.Interleave())
	if err != nil {
		return buffer.Buffer{}, false, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return buffer.FromInterleaved(out, e.channels), true, nil
}

// Reset discards buffered-but-not-yet-resampled frames and, for a real
// (non-bypass) backend, rebuilds it — a seek invalidates the sinc
// interpolator's internal history along with the ring, and starting the new
// position with stale history would audibly bleed the old position into it.
func (e *Engine) Reset() error {
	e.ring.reset()
	if e.bypass {
		return nil
	}
	backend, err := resampling.New(e.cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	e.backend = backend
	return nil
}

// Channels reports the engine's channel count.
func (e *Engine) Channels() int {
	return e.channels
}

// chunkFramesFor picks the ring's fixed chunk width: the demuxer's reported
// packet size when known, else 1152 for MP3 (one MPEG audio frame) or 1024
// for everything else.
func chunkFramesFor(params decode.CodecParameters) int {
	if params.MaxFramesPerPacket != nil {
		return int(*params.MaxFramesPerPacket)
	}
	if params.IsMP3() {
		return mp3ChunkFrames
	}
	return defaultChunkFrames
}
