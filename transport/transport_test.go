package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayPauseIdempotent(t *testing.T) {
	c, _ := New()
	c.Pause()
	c.Pause()
	assert.False(t, c.Playing())

	c.Play()
	c.Play()
	assert.True(t, c.Playing())
}

func TestDurationPositionUnavailableBeforeBeginTrack(t *testing.T) {
	c, _ := New()
	_, err := c.Duration()
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = c.Position()
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestBeginTrackPublishesDuration(t *testing.T) {
	c, e := New()
	e.BeginTrack(90 * time.Second)

	d, err := c.Duration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)
}

func TestSetPositionIsMonotonicAcrossCalls(t *testing.T) {
	c, e := New()
	e.BeginTrack(time.Minute)
	e.SetPosition(1 * time.Second)
	first, _ := c.Position()
	e.SetPosition(2 * time.Second)
	second, _ := c.Position()
	assert.Less(t, first, second)
}

func TestSeekWhilePausedDoesNotBlock(t *testing.T) {
	c, e := New()
	e.BeginTrack(time.Minute)

	done := make(chan struct{})
	go func() {
		c.Seek(30 * time.Second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Seek blocked while paused")
	}

	target, ok := e.ConsumeSeek()
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, target)
}

func TestSeekWhilePlayingBlocksUntilConsumed(t *testing.T) {
	c, e := New()
	e.BeginTrack(time.Minute)
	c.Play()

	done := make(chan struct{})
	go func() {
		c.Seek(15 * time.Second)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Seek returned before the executor consumed it")
	case <-time.After(50 * time.Millisecond):
	}

	target, ok := e.ConsumeSeek()
	require.True(t, ok)
	assert.Equal(t, 15*time.Second, target)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Seek did not unblock after ConsumeSeek")
	}
}

func TestConsumeSeekReportsNoneWhenNotRequested(t *testing.T) {
	_, e := New()
	_, ok := e.ConsumeSeek()
	assert.False(t, ok)
}

func TestWaitUntilPlayingReturnsImmediatelyWhenAlreadyPlaying(t *testing.T) {
	c, e := New()
	c.Play()

	done := make(chan struct{})
	go func() {
		e.WaitUntilPlaying()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitUntilPlaying blocked despite already playing")
	}
}

func TestWaitUntilPlayingUnblocksOnPlay(t *testing.T) {
	c, e := New()

	done := make(chan struct{})
	go func() {
		e.WaitUntilPlaying()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("WaitUntilPlaying returned before Play was called")
	case <-time.After(50 * time.Millisecond):
	}

	c.Play()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitUntilPlaying did not unblock after Play")
	}
}

func TestEndTrackClearsControllerState(t *testing.T) {
	c, e := New()
	e.BeginTrack(time.Minute)
	e.SetPosition(time.Second)
	e.EndTrack()

	_, err := c.Duration()
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = c.Position()
	assert.ErrorIs(t, err, ErrUnavailable)
}
