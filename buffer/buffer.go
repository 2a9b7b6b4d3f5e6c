// Package buffer holds the planar sample container shared by the decode,
// resample, and output stages.
package buffer

// Buffer is a planar (channel-major) container of double-precision audio
// frames: one ordered sequence of samples per channel, every channel the
// same length. It carries no format or rate information — that lives on
// the producer (decode.CodecParameters) or consumer (output.Output) side.
type Buffer struct {
	channels [][]float64
}

// New returns an empty buffer with no channels and no frames.
func New() Buffer {
	return Buffer{}
}

// NewSized returns a buffer with channels channels and frames frames per
// channel, every sample initialized to equilibrium (0.0).
func NewSized(channels, frames int) Buffer {
	b := Buffer{channels: make([][]float64, channels)}
	for c := range b.channels {
		b.channels[c] = make([]float64, frames)
	}
	return b
}

// Channels reports the number of channels.
func (b *Buffer) Channels() int {
	return len(b.channels)
}

// Frames reports the number of frames per channel, or 0 if there are no
// channels.
func (b *Buffer) Frames() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// Resize changes the buffer to channels channels and frames frames per
// channel, preserving existing samples up to the overlap and zero-filling
// anything new. Calling Resize twice with the same (channels, frames) is a
// no-op on the contents.
func (b *Buffer) Resize(channels, frames int) {
	if channels < len(b.channels) {
		b.channels = b.channels[:channels]
	}
	for len(b.channels) < channels {
		b.channels = append(b.channels, make([]float64, frames))
	}
	for c := range b.channels {
		ch := b.channels[c]
		if len(ch) == frames {
			continue
		}
		if frames <= cap(ch) {
			n := len(ch)
			ch = ch[:frames]
			for i := n; i < frames; i++ {
				ch[i] = 0
			}
		} else {
			grown := make([]float64, frames)
			copy(grown, ch)
			ch = grown
		}
		b.channels[c] = ch
	}
}

// Channel returns a read-only view of channel c's samples.
func (b *Buffer) Channel(c int) []float64 {
	return b.channels[c]
}

// ChannelMut returns a mutable view of channel c's samples.
func (b *Buffer) ChannelMut(c int) []float64 {
	return b.channels[c]
}

// SetChannel replaces channel c's samples wholesale. Used by decoders that
// already have per-channel slices and don't want to copy through Resize.
func (b *Buffer) SetChannel(c int, samples []float64) {
	for len(b.channels) <= c {
		b.channels = append(b.channels, nil)
	}
	b.channels[c] = samples
}

// Interleave returns the buffer's samples in frame-major, channel-minor
// order: (f0c0, f0c1, ..., f0c{C-1}, f1c0, ...).
func (b *Buffer) Interleave() []float64 {
	c, f := b.Channels(), b.Frames()
	out := make([]float64, c*f)
	for frame := 0; frame < f; frame++ {
		for ch := 0; ch < c; ch++ {
			out[frame*c+ch] = b.channels[ch][frame]
		}
	}
	return out
}

// FromInterleaved builds a planar Buffer from frame-major, channel-minor
// samples.
func FromInterleaved(samples []float64, channels int) Buffer {
	if channels == 0 {
		return New()
	}
	frames := len(samples) / channels
	b := NewSized(channels, frames)
	for frame := 0; frame < frames; frame++ {
		for ch := 0; ch < channels; ch++ {
			b.channels[ch][frame] = samples[frame*channels+ch]
		}
	}
	return b
}
