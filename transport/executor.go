package transport

import "time"

// Executor is the background playback loop's half of a player's transport
// state. It is intended for single-goroutine use (the player's decode
// loop); Controller is the half safe to share across goroutines.
type Executor struct {
	state *state
}

// BeginTrack resets per-track state (duration, position, any stale seek
// request) and records the new track's duration. A zero duration means the
// length is unknown: Controller.Duration then reports ErrUnavailable.
func (e *Executor) BeginTrack(duration time.Duration) {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	e.state.duration = nil
	if duration > 0 {
		e.state.duration = &duration
	}
	e.state.position = nil
	e.state.seekPosition = nil
}

// SetPosition reports the executor's current playback position.
func (e *Executor) SetPosition(position time.Duration) {
	e.state.mu.Lock()
	e.state.position = &position
	e.state.mu.Unlock()
}

// ConsumeSeek reports and clears a pending seek request, if any, and wakes
// any Controller.Seek call blocked waiting for it. Call this once per loop
// iteration, before WaitUntilPlaying — a seek must be serviced even while
// paused, the same iteration pause is checked.
func (e *Executor) ConsumeSeek() (time.Duration, bool) {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	if e.state.seekPosition == nil {
		return 0, false
	}
	target := *e.state.seekPosition
	e.state.seekPosition = nil
	e.state.seekCond.Broadcast()
	return target, true
}

// Playing reports whether the transport is currently unpaused, mirroring
// Controller.Playing for the executor side.
func (e *Executor) Playing() bool {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	return e.state.playing
}

// WaitUntilPlaying blocks until Controller.Play has been called, returning
// immediately if already unpaused.
func (e *Executor) WaitUntilPlaying() {
	e.state.mu.Lock()
	for !e.state.playing {
		e.state.playingCond.Wait()
	}
	e.state.mu.Unlock()
}

// EndTrack clears duration/position once a track finishes, so Controller
// callers see ErrUnavailable rather than a stale value until the next
// track starts.
func (e *Executor) EndTrack() {
	e.state.mu.Lock()
	e.state.duration = nil
	e.state.position = nil
	e.state.mu.Unlock()
}
