package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueTryPopReturnsEquilibriumWhenEmpty(t *testing.T) {
	q := NewQueue[float32](4, 0.5)
	assert.Equal(t, float32(0.5), q.TryPop())
}

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue[float32](4, 0)
	q.Push(1)
	q.Push(2)
	q.Push(3)

	assert.Equal(t, float32(1), q.TryPop())
	assert.Equal(t, float32(2), q.TryPop())
	assert.Equal(t, float32(3), q.TryPop())
	assert.Equal(t, float32(0), q.TryPop())
}

func TestQueueTryPushFailsWhenFull(t *testing.T) {
	q := NewQueue[int32](2, 0)
	require.True(t, q.TryPush(1))
	require.True(t, q.TryPush(2))
	assert.False(t, q.TryPush(3))
}

func TestQueueDrainEmptiesBuffer(t *testing.T) {
	q := NewQueue[int32](4, -1)
	q.Push(1)
	q.Push(2)
	q.Drain()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, int32(-1), q.TryPop())
}

func TestQueueLenAndCap(t *testing.T) {
	q := NewQueue[int32](4, 0)
	assert.Equal(t, 4, q.Cap())
	assert.Equal(t, 0, q.Len())
	q.Push(1)
	assert.Equal(t, 1, q.Len())
}
