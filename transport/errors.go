package transport

import "errors"

// ErrUnavailable is returned by Controller.Duration and Controller.Position
// before the executor has opened a track and reported its first state.
var ErrUnavailable = errors.New("transport: unavailable, no track state reported yet")
