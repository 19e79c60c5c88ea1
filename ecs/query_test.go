package ecs_test

import (
	"testing"

	"github.com/loliomg/hitcat/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQueryRequiresExecute(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)

	assert.Panics(t, func() { query.Iter() })
	assert.Panics(t, func() { query.Count() })
}

func TestQueryCachesUntilExecute(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1})

	query := ecs.NewQuery[struct{ *Position }](storage)
	query.Execute()
	assert.Equal(t, 1, query.Count())

	storage.Spawn(Position{X: 2})
	assert.Equal(t, 1, query.Count(), "results are a snapshot")

	query.Execute()
	assert.Equal(t, 2, query.Count())
}

func TestQueryPicksUpNewArchetypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Position
	}](storage)

	query.Execute()
	assert.Equal(t, 0, query.Count())

	id := storage.Spawn(Position{}, Health{Current: 1})
	query.Execute()

	for entityId, item := range query.Iter() {
		assert.Equal(t, id, entityId)
		assert.Equal(t, id, item.EntityId)
	}
	assert.Equal(t, 1, query.Count())
}

func TestQueryValues(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Health{Current: 10})
	storage.Spawn(Health{Current: 20})
	storage.Spawn(Health{Current: 30}, Frozen{})

	query := ecs.NewQuery[struct{ *Health }](storage)
	query.Execute()

	total := 0
	for item := range query.Values() {
		total += item.Health.Current
	}
	assert.Equal(t, 60, total)

	// early break
	n := 0
	for range query.Values() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
