package game_test

import (
	"testing"
	"time"

	"github.com/loliomg/hitcat/game"
	"github.com/stretchr/testify/assert"
)

func TestTimer(t *testing.T) {
	timer := game.NewTimer(time.Second)
	assert.Equal(t, 1.0, timer.Duration)

	assert.False(t, timer.Tick(0.5))
	assert.Equal(t, 0.5, timer.Remaining())
	assert.False(t, timer.Finished())

	assert.True(t, timer.Tick(0.75), "finishing tick")
	assert.True(t, timer.Finished())
	assert.Zero(t, timer.Remaining())

	assert.False(t, timer.Tick(1), "fires once")
	assert.True(t, timer.Finished())
}

func TestFramesAverage(t *testing.T) {
	var frames game.Frames
	_, ok := frames.Average()
	assert.False(t, ok)

	frames.Record(60)
	frames.Record(30)
	avg, ok := frames.Average()
	assert.True(t, ok)
	assert.Equal(t, 45.0, avg)

	// the window keeps the latest samples only
	for range 100 {
		frames.Record(120)
	}
	avg, _ = frames.Average()
	assert.Equal(t, 120.0, avg)
}
