// Package player ties decode, resample, output, and transport together
// into a single gapless playback engine, grounded on
// original_source/audio-player/src/player.rs's AudioPlayer.
package player

import (
	"fmt"

	"github.com/richinsley/spindle/decode"
	"github.com/richinsley/spindle/output"
	"github.com/richinsley/spindle/transport"
)

// Track is decode's notion of an open, playable file. Re-exported here so
// callers never need to import the decode package themselves just to hold
// one.
type Track = decode.Track

// queueCapacity bounds the playlist backlog. The original's mpsc channel
// is unbounded; a generous fixed bound is simpler and a player queued with
// more than a few hundred tracks ahead of playback is already a design
// smell worth surfacing as ErrQueueFull.
const queueCapacity = 256

// Options configures the output device a Player opens.
type Options struct {
	// Channels is the output device's channel count. Defaults to 2.
	Channels uint32
	// SampleRate is the output device's sample rate in Hz. Defaults to
	// 48000.
	SampleRate uint32
	// QueueCapacity is the number of samples buffered between the
	// executor and the real-time audio callback. Defaults to 65536
	// (about 0.7s at 48kHz stereo).
	QueueCapacity int
}

func (o *Options) setDefaults() {
	if o.Channels == 0 {
		o.Channels = 2
	}
	if o.SampleRate == 0 {
		o.SampleRate = 48000
	}
	if o.QueueCapacity == 0 {
		o.QueueCapacity = 65536
	}
}

// Player is a gapless audio player: a caller-facing Controller plus a
// background executor goroutine that owns the output device and decode
// pipeline.
type Player struct {
	controller *transport.Controller
	tracks     chan string
	done       chan struct{}
}

// New opens the default output device and starts the playback executor.
// The device stream runs (pulling silence when nothing is queued) from New
// until WaitUntilEnd returns, except while the transport is paused during a
// track, when the executor stops it.
func New(opts Options) (*Player, error) {
	opts.setDefaults()

	out, err := output.Open(opts.Channels, opts.SampleRate, opts.QueueCapacity)
	if err != nil {
		return nil, fmt.Errorf("opening output device: %w", err)
	}
	if err := out.Start(); err != nil {
		out.Close()
		return nil, fmt.Errorf("starting output stream: %w", err)
	}

	controller, execState := transport.New()
	tracks := make(chan string, queueCapacity)
	done := make(chan struct{})

	exec := newExecutor(execState, out, tracks)
	go func() {
		exec.run()
		out.Stop()
		out.Close()
		close(done)
	}()

	return &Player{controller: controller, tracks: tracks, done: done}, nil
}

// Controller returns the shared transport controller used to play, pause,
// seek, and inspect playback position and duration.
func (p *Player) Controller() *transport.Controller {
	return p.controller
}

// Open queues path for playback once every track already queued ahead of
// it finishes. It does not block waiting for the file to decode; a bad
// path surfaces as a logged error from the executor, not a return value
// here.
func (p *Player) Open(path string) error {
	select {
	case p.tracks <- path:
		return nil
	default:
		return ErrQueueFull
	}
}

// WaitUntilEnd closes the playlist, so no further Open calls are honored,
// and blocks until the executor finishes the last queued track (or
// returns immediately if nothing was ever queued).
func (p *Player) WaitUntilEnd() {
	close(p.tracks)
	<-p.done
}
