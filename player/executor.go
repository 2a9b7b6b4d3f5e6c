package player

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/richinsley/spindle/decode"
	"github.com/richinsley/spindle/output"
	"github.com/richinsley/spindle/resample"
	"github.com/richinsley/spindle/transport"
)

// executor is the background playback loop, grounded on
// original_source/audio-player/src/player.rs's AudioPlayerExecutor: it
// pulls queued track paths off a channel and, for each one, alternates
// between servicing pause/seek requests and decoding the next packet
// until the track runs out.
//
// Unlike the original, a decode or device error for one track is logged
// and skipped rather than aborting the whole executor — a single bad file
// shouldn't end playback of everything queued after it.
type executor struct {
	transport *transport.Executor
	output    *output.Output[float32]
	tracks    <-chan string
}

func newExecutor(t *transport.Executor, out *output.Output[float32], tracks <-chan string) *executor {
	return &executor{transport: t, output: out, tracks: tracks}
}

func (e *executor) run() {
	for path := range e.tracks {
		if err := e.playTrack(path); err != nil {
			log.Printf("spindle: %s: %v", path, err)
		}
	}
}

func (e *executor) playTrack(path string) error {
	track, err := decode.Open(path)
	if err != nil {
		return fmt.Errorf("opening track: %w", err)
	}
	defer track.Decoded.Close()

	var duration time.Duration
	if track.Details.Duration != nil {
		duration = *track.Details.Duration
	}
	e.transport.BeginTrack(duration)
	defer e.transport.EndTrack()

	engine, err := resample.New(track.Decoded.CodecParams(), e.output.SampleRate())
	if err != nil {
		return fmt.Errorf("building resampler: %w", err)
	}

	for {
		if target, ok := e.transport.ConsumeSeek(); ok {
			if err := track.Decoded.Seek(target); err != nil {
				return fmt.Errorf("seeking: %w", err)
			}
			if err := engine.Reset(); err != nil {
				return fmt.Errorf("resetting resampler: %w", err)
			}
			e.output.Drain()
		}

		if progress, err := track.Decoded.Progress(); err == nil {
			e.transport.SetPosition(progress)
		}

		// A seek must be serviced even while paused, so ConsumeSeek runs
		// before this check. was_paused brackets the pause: the output
		// stream is paused for as long as WaitUntilPlaying blocks, and
		// resumed exactly once coming out of it, leaving the queue intact
		// rather than letting the callback drain it into silence.
		wasPaused := !e.transport.Playing()
		if wasPaused {
			if err := e.output.Pause(); err != nil {
				return fmt.Errorf("pausing output: %w", err)
			}
			e.transport.WaitUntilPlaying()
			if err := e.output.Play(); err != nil {
				return fmt.Errorf("resuming output: %w", err)
			}
		}

		pkt, err := track.Decoded.Next()
		if errors.Is(err, decode.ErrEndOfStream) {
			return e.flushTrailing(engine)
		}
		if err != nil {
			return fmt.Errorf("decoding: %w", err)
		}

		if err := engine.Push(pkt); err != nil {
			return fmt.Errorf("buffering for resample: %w", err)
		}
		if err := e.flushReady(engine); err != nil {
			return err
		}
	}
}

// flushReady writes every chunk the resampler currently has ready; packets
// smaller than one resample chunk leave nothing ready most calls.
func (e *executor) flushReady(engine *resample.Engine) error {
	for {
		chunk, ok, err := engine.Pop()
		if err != nil {
			return fmt.Errorf("resampling: %w", err)
		}
		if !ok {
			return nil
		}
		if err := e.output.Write(chunk); err != nil {
			return fmt.Errorf("writing to output device: %w", err)
		}
	}
}

// flushTrailing writes the resampler's last, possibly partial, buffered
// chunk once a track has no more packets.
func (e *executor) flushTrailing(engine *resample.Engine) error {
	chunk, ok, err := engine.Flush()
	if err != nil {
		return fmt.Errorf("flushing resampler: %w", err)
	}
	if !ok {
		return nil
	}
	if err := e.output.Write(chunk); err != nil {
		return fmt.Errorf("writing to output device: %w", err)
	}
	return nil
}
