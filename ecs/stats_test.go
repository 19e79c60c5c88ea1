package ecs_test

import (
	"testing"

	"github.com/loliomg/hitcat/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type windowSize struct{ W, H int }
type roundScore struct{ Hits int }

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Equal(t, 0, stats.ArchetypeCount)
	assert.Equal(t, 0, stats.TotalEntityCount)
	assert.Empty(t, stats.ArchetypeBreakdown)

	storage.Spawn(Position{})
	storage.Spawn(Position{})
	gone := storage.Spawn(Position{}, Velocity{})
	storage.Delete(gone)
	storage.AddSingleton(windowSize{640, 480})
	storage.AddSingleton(roundScore{})
	ecs.NewEvents[Clicked](storage)

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 2, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.SingletonCount)
	assert.Equal(t, 1, stats.EventTypeCount)
	assert.Equal(t, []string{"ecs_test.roundScore", "ecs_test.windowSize"}, stats.SingletonTypes)

	require.Len(t, stats.ArchetypeBreakdown, 2)
	assert.Less(t, stats.ArchetypeBreakdown[0].ID, stats.ArchetypeBreakdown[1].ID)

	counts := map[int]int{}
	for _, a := range stats.ArchetypeBreakdown {
		counts[len(a.ComponentTypes)] = a.EntityCount
	}
	assert.Equal(t, map[int]int{1: 2, 2: 0}, counts)
}
