package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/spindle/buffer"
	"github.com/richinsley/spindle/decode"
)

func TestNewRejectsInvalidCodecParameters(t *testing.T) {
	_, err := New(decode.CodecParameters{SampleRate: 0, Channels: 2}, 48000)
	assert.ErrorIs(t, err, ErrInvalidCodecParameters)

	_, err = New(decode.CodecParameters{SampleRate: 44100, Channels: 0}, 48000)
	assert.ErrorIs(t, err, ErrInvalidCodecParameters)
}

func TestEngineBypassWhenRatesMatch(t *testing.T) {
	n := uint32(4)
	params := decode.CodecParameters{SampleRate: 48000, Channels: 1, MaxFramesPerPacket: &n}
	e, err := New(params, 48000)
	require.NoError(t, err)
	assert.True(t, e.bypass)

	pkt := buffer.FromInterleaved([]float64{1, 2, 3, 4}, 1)
	require.NoError(t, e.Push(pkt))

	out, ok, err := e.Pop()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3, 4}, out.Channel(0))
}

func TestEnginePushRejectsChannelMismatch(t *testing.T) {
	n := uint32(4)
	params := decode.CodecParameters{SampleRate: 48000, Channels: 2, MaxFramesPerPacket: &n}
	e, err := New(params, 48000)
	require.NoError(t, err)

	mono := buffer.FromInterleaved([]float64{1, 2}, 1)
	err = e.Push(mono)
	assert.ErrorIs(t, err, ErrChannelMismatch)
}

func TestEngineFlushReturnsTrailingPartialChunk(t *testing.T) {
	n := uint32(4)
	params := decode.CodecParameters{SampleRate: 48000, Channels: 1, MaxFramesPerPacket: &n}
	e, err := New(params, 48000)
	require.NoError(t, err)

	require.NoError(t, e.Push(buffer.FromInterleaved([]float64{1, 2, 3}, 1)))

	_, ok, err := e.Pop()
	require.NoError(t, err)
	assert.False(t, ok, "a 3-frame packet in a 4-frame chunk must not be ready yet")

	out, ok, err := e.Flush()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, out.Channel(0))
}

func TestChunkFramesForMP3Default(t *testing.T) {
	assert.Equal(t, mp3ChunkFrames, chunkFramesFor(decode.CodecParameters{CodecTag: "mp3"}))
	assert.Equal(t, defaultChunkFrames, chunkFramesFor(decode.CodecParameters{CodecTag: "flac"}))

	n := uint32(777)
	assert.Equal(t, 777, chunkFramesFor(decode.CodecParameters{MaxFramesPerPacket: &n}))
}
