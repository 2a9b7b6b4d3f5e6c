package player

import "errors"

// ErrQueueFull is returned by Player.Open when the playlist backlog is
// already at capacity.
var ErrQueueFull = errors.New("player: playlist queue is full")
