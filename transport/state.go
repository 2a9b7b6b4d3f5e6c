// Package transport holds the mutex-and-condvar state shared between a
// player's caller-facing Controller and its background executor, grounded
// on original_source/audio-player/src/player.rs's
// AudioPlayerController/AudioPlayerControllerState split.
package transport

import (
	"sync"
	"time"
)

// state is the single piece of shared memory between a Controller and its
// Executor. All access goes through the embedded mutex; playingCond wakes
// the executor on Play/Pause, seekCond wakes a blocked Controller.Seek call
// once the executor has applied (or declined to wait on) a seek request.
type state struct {
	mu sync.Mutex

	playingCond *sync.Cond
	seekCond    *sync.Cond

	playing      bool
	duration     *time.Duration
	position     *time.Duration
	seekPosition *time.Duration
}

func newState() *state {
	s := &state{}
	s.playingCond = sync.NewCond(&s.mu)
	s.seekCond = sync.NewCond(&s.mu)
	return s
}

// New returns a Controller and its paired Executor, sharing one state.
// The player package holds the Controller out to callers and drives
// playback from a goroutine holding the Executor.
func New() (*Controller, *Executor) {
	s := newState()
	return &Controller{state: s}, &Executor{state: s}
}
