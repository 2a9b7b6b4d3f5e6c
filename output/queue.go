package output

// Queue is a single-producer/single-consumer bounded sample queue realized
// as a buffered channel: the decode/resample side (producer) blocks on
// Push when the queue is full, while the real-time audio callback
// (consumer) never blocks — TryPop returns the queue's equilibrium value
// immediately if nothing is buffered, rather than stalling the hardware
// clock.
type Queue[T any] struct {
	ch          chan T
	equilibrium T
}

// NewQueue returns a Queue with room for capacity samples, silent (at
// equilibrium) until the producer pushes anything.
func NewQueue[T any](capacity int, equilibrium T) *Queue[T] {
	return &Queue[T]{ch: make(chan T, capacity), equilibrium: equilibrium}
}

// Push blocks until there is room for v. Called only from the
// decode/resample producer goroutine.
func (q *Queue[T]) Push(v T) {
	q.ch <- v
}

// TryPush attempts a non-blocking push, returning false if the queue is
// full.
func (q *Queue[T]) TryPush(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// TryPop is the real-time consumer's read: the next buffered sample, or
// the queue's equilibrium value if empty. Never blocks.
func (q *Queue[T]) TryPop() T {
	select {
	case v := <-q.ch:
		return v
	default:
		return q.equilibrium
	}
}

// Len reports how many samples are currently buffered.
func (q *Queue[T]) Len() int {
	return len(q.ch)
}

// Cap reports the queue's capacity in samples.
func (q *Queue[T]) Cap() int {
	return cap(q.ch)
}

// Drain empties the queue without consuming the samples for playback,
// used when a seek invalidates everything already queued.
func (q *Queue[T]) Drain() {
	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}
