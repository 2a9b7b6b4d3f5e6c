// Package decode turns a media file on disk into a sequence of planar
// sample packets, shelling out to ffmpeg/ffprobe for demuxing and decoding
// the way audio/ffmpegbase.go shells out to ffmpeg for device capture.
package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/richinsley/spindle/buffer"
)

// Track bundles a DecodedTrack (the live packet source) with the metadata
// snapshot taken once at Open.
type Track struct {
	Decoded *DecodedTrack
	Details TrackDetails
}

// DecodedTrack is a single open file's decode pipeline: one ffmpeg child
// process piping raw float64 PCM back over stdout. It is not safe for
// concurrent use — the player package serializes access to it from its
// decode goroutine.
type DecodedTrack struct {
	path        string
	params      CodecParameters
	chunkFrames int

	cmd  *exec.Cmd
	pipe io.ReadCloser

	frameOffset int64
	pending     *buffer.Buffer
}

// Open probes path for its default audio stream (and, if present, an
// attached cover image), then starts decoding from the beginning.
func Open(path string) (*Track, error) {
	probe, err := runProbe(path)
	if err != nil {
		return nil, err
	}

	audio, ok := probe.defaultAudioStream()
	if !ok {
		return nil, ErrTrackUnavailable
	}

	params := CodecParameters{
		SampleRate: parseUintField(audio.SampleRate),
		Channels:   uint32(audio.Channels),
		CodecTag:   audio.CodecName,
		TimeBase:   parseTimeBase(audio.TimeBase),
	}
	if params.SampleRate == 0 || params.Channels == 0 {
		return nil, ErrTrackUnavailable
	}

	var cover *ImageBlob
	if pic, ok := probe.attachedPicStream(); ok {
		// Best-effort: a container with a malformed or unsupported
		// attached-picture stream still plays, it just has no artwork.
		if blob, err := extractCover(path, pic); err == nil {
			cover = blob
		}
	}

	track := &DecodedTrack{
		path:        path,
		params:      params,
		chunkFrames: defaultChunkFrames(params),
	}
	if err := track.restart(nil); err != nil {
		return nil, err
	}

	return &Track{Decoded: track, Details: buildTrackDetails(probe, audio, cover)}, nil
}

// CodecParams reports the source format, used by the resampler to size its
// fixed input chunks.
func (t *DecodedTrack) CodecParams() CodecParameters {
	return t.params
}

// Next returns the next packet of interleaved-then-deplanarized samples, or
// ErrEndOfStream once the pipeline is exhausted.
func (t *DecodedTrack) Next() (buffer.Buffer, error) {
	if t.pending != nil {
		b := *t.pending
		t.pending = nil
		t.frameOffset += int64(b.Frames())
		return b, nil
	}

	b, err := t.readChunk()
	if err != nil {
		return buffer.Buffer{}, err
	}
	t.frameOffset += int64(b.Frames())
	return b, nil
}

// Seek restarts the decode pipeline at target and primes one packet so a
// subsequent Progress() call reflects the seek immediately, without waiting
// for the player to call Next(). Seeking past the end of the track is not
// an error here; the next Next() call returns ErrEndOfStream.
func (t *DecodedTrack) Seek(target time.Duration) error {
	if err := t.restart(&target); err != nil {
		return err
	}
	t.frameOffset = int64(target.Seconds() * float64(t.params.SampleRate))
	t.pending = nil

	chunk, err := t.readChunk()
	switch {
	case err == nil:
		t.pending = &chunk
	case errors.Is(err, ErrEndOfStream):
		// Nothing left past this point; leave pending unset.
	default:
		return err
	}
	return nil
}

// Progress reports elapsed playback time, derived from the count of frames
// handed out so far rather than a container timestamp — the raw PCM pipe
// this package reads carries no per-packet presentation time.
func (t *DecodedTrack) Progress() (time.Duration, error) {
	if t.params.SampleRate == 0 {
		return 0, ErrProgressUnavailable
	}
	seconds := float64(t.frameOffset) / float64(t.params.SampleRate)
	return time.Duration(seconds * float64(time.Second)), nil
}

// Close terminates the decode pipeline's ffmpeg process. Calling Next after
// Close is not supported.
func (t *DecodedTrack) Close() error {
	return t.close()
}

// restart tears down any running ffmpeg process and starts a fresh one,
// optionally seeking to seekTo first. It mirrors the
// Input(...).Output("pipe:", ...).WithOutput(pipeWriter) shape of
// audio/ffmpegbase.go, reading raw f64le PCM off an io.Pipe fed by a
// goroutine that owns the child process's lifetime.
func (t *DecodedTrack) restart(seekTo *time.Duration) error {
	t.close()

	inputArgs := ffmpeg.KwArgs{}
	if seekTo != nil {
		inputArgs["ss"] = fmt.Sprintf("%.3f", seekTo.Seconds())
	}
	outputArgs := ffmpeg.KwArgs{
		"f":      "f64le",
		"acodec": "pcm_f64le",
		"vn":     "",
	}

	pipeReader, pipeWriter := io.Pipe()
	cmd := ffmpeg.Input(t.path, inputArgs).
		Output("pipe:", outputArgs).
		WithOutput(pipeWriter).
		ErrorToStdOut().
		Compile()

	if err := cmd.Start(); err != nil {
		pipeWriter.Close()
		return fmt.Errorf("%w: starting ffmpeg for %s: %v", ErrIO, t.path, err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			pipeWriter.CloseWithError(fmt.Errorf("%w: %v", ErrDecode, err))
		} else {
			pipeWriter.Close()
		}
	}()

	t.cmd = cmd
	t.pipe = pipeReader
	return nil
}

func (t *DecodedTrack) close() {
	if t.cmd == nil {
		return
	}
	if t.cmd.Process != nil {
		_ = t.cmd.Process.Kill()
	}
	if t.pipe != nil {
		_ = t.pipe.Close()
	}
	t.cmd = nil
	t.pipe = nil
}

// readChunk reads one fixed-size chunk of interleaved float64 samples off
// the decode pipe. A short final read is truncated to a whole number of
// frames and returned as the track's last packet; the following call sees
// zero bytes and returns ErrEndOfStream.
func (t *DecodedTrack) readChunk() (buffer.Buffer, error) {
	channels := int(t.params.Channels)
	if channels == 0 {
		return buffer.Buffer{}, fmt.Errorf("%w: unknown channel count", ErrDecode)
	}

	frameBytes := channels * 8
	raw := make([]byte, t.chunkFrames*frameBytes)
	n, err := io.ReadFull(t.pipe, raw)
	if n == 0 {
		if errors.Is(err, io.EOF) {
			return buffer.Buffer{}, ErrEndOfStream
		}
		return buffer.Buffer{}, fmt.Errorf("%w: %v", ErrIO, err)
	}

	raw = raw[:n-n%frameBytes]
	samples := bytesToFloat64LE(raw)
	b := buffer.FromInterleaved(samples, channels)

	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return b, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}

func bytesToFloat64LE(raw []byte) []float64 {
	out := make([]float64, len(raw)/8)
	for i := range out {
		bits := binary.LittleEndian.Uint64(raw[i*8:])
		out[i] = math.Float64frombits(bits)
	}
	return out
}

// defaultChunkFrames picks the decode pipeline's internal read granularity.
// It has no bearing on correctness (the resampler's buffering stage accepts
// any packet size) but mirrors the original codec-typical packet sizes:
// MaxFramesPerPacket when set, else 1152 samples/channel for MP3 (one MPEG
// audio frame), else 1024.
func defaultChunkFrames(params CodecParameters) int {
	if params.MaxFramesPerPacket != nil {
		return int(*params.MaxFramesPerPacket)
	}
	if params.IsMP3() {
		return 1152
	}
	return 1024
}

func parseUintField(s string) uint32 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

func parseTimeBase(s string) TimeBase {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return TimeBase{Num: 1, Den: 1}
	}
	num, _ := strconv.ParseUint(parts[0], 10, 32)
	den, _ := strconv.ParseUint(parts[1], 10, 32)
	if den == 0 {
		den = 1
	}
	return TimeBase{Num: uint32(num), Den: uint32(den)}
}
