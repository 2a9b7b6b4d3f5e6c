package resample

import "github.com/richinsley/spindle/buffer"

// chunk is one fixed-capacity (channels x frames) slot in the ring. filled
// tracks how many frames of it are populated; data[c] always has length
// filled (not frames) until the chunk is fully packed.
type chunk struct {
	data   [][]float64
	filled int
}

func newChunk(channels, frames int) *chunk {
	c := &chunk{data: make([][]float64, channels)}
	for ch := range c.data {
		c.data[ch] = make([]float64, 0, frames)
	}
	return c
}

// ring re-chunks a stream of variable-sized decoded packets into a sequence
// of fixed-size frames-per-chunk buffers, the shape the resampler's
// SincFixedIn-equivalent backend requires. It is adapted from
// original_source/audio-player/src/resampler.rs's ResamplerBuffer, with a
// FIFO of chunks in place of reused slots: packets
// narrower or wider than one chunk are split or concatenated across chunk
// boundaries with no data loss, and every channel advances through the ring
// in lockstep (a packet always contributes the same frame range to every
// channel of a given chunk).
type ring struct {
	channels int
	frames   int
	queue    []*chunk
}

func newRing(channels, frames int) *ring {
	return &ring{channels: channels, frames: frames}
}

// push absorbs one decoded packet into the ring, growing it with new chunks
// as needed. A zero-frame packet is a no-op.
func (r *ring) push(input buffer.Buffer) {
	n := input.Frames()
	if n == 0 || r.channels == 0 {
		return
	}

	pos := 0
	for pos < n {
		if len(r.queue) == 0 || r.queue[len(r.queue)-1].filled == r.frames {
			r.queue = append(r.queue, newChunk(r.channels, r.frames))
		}
		tail := r.queue[len(r.queue)-1]
		avail := r.frames - tail.filled
		take := avail
		if pos+take > n {
			take = n - pos
		}
		for c := 0; c < r.channels; c++ {
			tail.data[c] = append(tail.data[c], input.Channel(c)[pos:pos+take]...)
		}
		tail.filled += take
		pos += take
	}
}

// pop removes and returns the oldest fully-packed chunk, or ok=false if
// none is ready yet. The chunk currently being filled (the queue's tail) is
// only popped once it happens to be exactly full.
func (r *ring) pop() (buffer.Buffer, bool) {
	ready := len(r.queue)
	if ready > 0 && r.queue[ready-1].filled < r.frames {
		ready--
	}
	if ready == 0 {
		return buffer.Buffer{}, false
	}

	c := r.queue[0]
	r.queue = r.queue[1:]

	out := buffer.NewSized(r.channels, c.filled)
	for ch := 0; ch < r.channels; ch++ {
		copy(out.ChannelMut(ch), c.data[ch])
	}
	return out, true
}

// reset discards all buffered, not-yet-resampled frames, used when a seek
// invalidates everything queued so far.
func (r *ring) reset() {
	r.queue = nil
}

// flush forcibly returns everything still buffered, whether or not it
// fills a whole chunk, concatenated into one buffer, and empties the ring.
// Used once a track runs out of packets so the last partial chunk isn't
// silently dropped because it never reached full size.
func (r *ring) flush() (buffer.Buffer, bool) {
	total := 0
	for _, c := range r.queue {
		total += c.filled
	}
	if total == 0 {
		r.queue = nil
		return buffer.Buffer{}, false
	}

	out := buffer.NewSized(r.channels, total)
	offset := 0
	for _, c := range r.queue {
		for ch := 0; ch < r.channels; ch++ {
			copy(out.ChannelMut(ch)[offset:], c.data[ch])
		}
		offset += c.filled
	}
	r.queue = nil
	return out, true
}
