// Package output drives the system's default audio output device through
// portaudio, the way audio/microphone.go drives its input device: a pull
// callback on the host's real-time thread reads whatever has been queued
// and never blocks, while the decode/resample pipeline feeds it from an
// ordinary goroutine.
package output

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/richinsley/spindle/buffer"
)

// Native is the set of sample types the portaudio backend can stream
// directly. u16, u32, and f64 are part of Format's closed set but have no
// portaudio-native stream type (see Format.PortAudioNative), so Output
// can't be instantiated with them.
type Native interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~float32
}

// Output is an open audio output device streaming samples of type T.
// It is safe to call Write from one goroutine while the stream runs; it is
// not safe to call Write concurrently with itself.
type Output[T Native] struct {
	channels   int
	sampleRate uint32
	convert    func(float64) T

	queue  *Queue[T]
	stream *portaudio.Stream
}

// Open starts portaudio and opens the default output device for
// float32 samples, the practical universal choice — most host APIs
// support it without further conversion inside the driver.
func Open(channels, sampleRate uint32, queueCapacity int) (*Output[float32], error) {
	return OpenAs[float32](channels, sampleRate, queueCapacity)
}

// OpenAs is Open parameterized over the native sample type. Callers
// normally want Open; OpenAs exists for backends/devices that negotiate a
// narrower integer format.
func OpenAs[T Native](channels, sampleRate uint32, queueCapacity int) (*Output[T], error) {
	var zero T
	convert, err := converterFor(zero)
	if err != nil {
		return nil, err
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitialize, err)
	}

	host, err := portaudio.DefaultHostApi()
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrNoDefaultDevice, err)
	}
	if host.DefaultOutputDevice == nil {
		portaudio.Terminate()
		return nil, ErrNoDefaultDevice
	}

	params := portaudio.HighLatencyParameters(nil, host.DefaultOutputDevice)
	params.Output.Channels = int(channels)
	params.SampleRate = float64(sampleRate)

	out := &Output[T]{
		channels:   int(channels),
		sampleRate: sampleRate,
		convert:    convert,
		queue:      NewQueue[T](queueCapacity, convert(0)),
	}

	stream, err := portaudio.OpenStream(params, out.pullCallback)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrBuildStream, err)
	}
	out.stream = stream
	return out, nil
}

// pullCallback is invoked on portaudio's real-time thread. It must never
// block: TryPop falls back to the queue's equilibrium (silence) value
// whenever the producer hasn't kept up, which is the audible result of
// decode/resample falling behind or of no track being played.
func (o *Output[T]) pullCallback(out []T) {
	for i := range out {
		out[i] = o.queue.TryPop()
	}
}

// Write converts one resampled, already-device-rate buffer to this
// Output's native format and blocks until all of it is queued. Called from
// the player's executor goroutine, never from the audio callback.
func (o *Output[T]) Write(buf buffer.Buffer) error {
	if buf.Channels() != 0 && buf.Channels() != o.channels {
		return fmt.Errorf("%w: buffer has %d channels, device has %d", ErrNoSupportedConfig, buf.Channels(), o.channels)
	}
	for _, s := range buf.Interleave() {
		o.queue.Push(o.convert(s))
	}
	return nil
}

// Drain discards any samples already queued but not yet played, used when
// a seek makes them obsolete.
func (o *Output[T]) Drain() {
	o.queue.Drain()
}

// Start begins streaming; the callback starts pulling from the queue
// immediately (emitting silence until Write is called).
func (o *Output[T]) Start() error {
	if err := o.stream.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrControl, err)
	}
	return nil
}

// Stop pauses the stream; portaudio stops invoking the callback, rather
// than the callback continuing to emit silence.
func (o *Output[T]) Stop() error {
	if err := o.stream.Stop(); err != nil {
		return fmt.Errorf("%w: %v", ErrControl, err)
	}
	return nil
}

// Play toggles the stream to running: the callback resumes pulling from
// the queue right where it left off. Equivalent to Start, named to match
// the transport pause/resume cycle that calls it.
func (o *Output[T]) Play() error {
	return o.Start()
}

// Pause toggles the stream to stopped: portaudio stops invoking the
// callback entirely, so the queue is left exactly as it was rather than
// being drained into silence. Equivalent to Stop, named to match the
// transport pause/resume cycle that calls it.
func (o *Output[T]) Pause() error {
	return o.Stop()
}

// Close releases the stream and terminates portaudio. The Output must not
// be used afterward.
func (o *Output[T]) Close() error {
	err := o.stream.Close()
	portaudio.Terminate()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrControl, err)
	}
	return nil
}

// SampleRate reports the device's negotiated sample rate.
func (o *Output[T]) SampleRate() uint32 {
	return o.sampleRate
}

// Channels reports the device's channel count.
func (o *Output[T]) Channels() int {
	return o.channels
}

// converterFor resolves the float64-to-native-sample conversion function
// for T, selected once at Open time rather than per-sample.
func converterFor[T Native](zero T) (func(float64) T, error) {
	switch any(zero).(type) {
	case float32:
		return func(v float64) T { return any(ToFloat32(v)).(T) }, nil
	case int32:
		return func(v float64) T { return any(ToInt32(v)).(T) }, nil
	case int16:
		return func(v float64) T { return any(ToInt16(v)).(T) }, nil
	case int8:
		return func(v float64) T { return any(ToInt8(v)).(T) }, nil
	case uint8:
		return func(v float64) T { return any(ToUint8(v)).(T) }, nil
	default:
		return nil, ErrUnsupportedSampleFormat
	}
}
