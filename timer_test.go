package gamewin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) clock() time.Duration { return c.now }

func TestTimer(t *testing.T) {
	assert := assert.New(t)

	c := &fakeClock{now: time.Second}
	tm := NewTimer(c.clock)

	assert.False(tm.IsStarted())
	assert.False(tm.IsPaused())
	assert.Zero(tm.Ticks())

	tm.Pause()
	assert.False(tm.IsPaused(), "a stopped timer can not be paused")

	tm.Start()
	c.now += 150 * time.Millisecond
	assert.True(tm.IsStarted())
	assert.Equal(150*time.Millisecond, tm.Ticks())

	tm.Pause()
	c.now += time.Second
	assert.True(tm.IsPaused())
	assert.Equal(150*time.Millisecond, tm.Ticks())

	tm.Pause()
	assert.Equal(150*time.Millisecond, tm.Ticks())

	tm.Unpause()
	c.now += 50 * time.Millisecond
	assert.False(tm.IsPaused())
	assert.Equal(200*time.Millisecond, tm.Ticks())

	tm.Unpause()
	assert.Equal(200*time.Millisecond, tm.Ticks())

	tm.Start()
	assert.Zero(tm.Ticks())

	tm.Pause()
	tm.Stop()
	assert.False(tm.IsStarted())
	assert.False(tm.IsPaused())
	assert.Zero(tm.Ticks())
}

func TestSystemClock(t *testing.T) {
	clock := SystemClock()
	first := clock()
	time.Sleep(time.Millisecond)

	assert.GreaterOrEqual(t, clock(), first+time.Millisecond)
	assert.NotNil(t, NewTimer(nil).clock)
}
