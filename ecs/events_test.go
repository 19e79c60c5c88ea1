package ecs_test

import (
	"slices"
	"testing"

	"github.com/loliomg/hitcat/ecs"
	"github.com/stretchr/testify/assert"
)

type clickSender struct {
	Clicks ecs.Events[Clicked]
	next   []Clicked
}

func (s *clickSender) Execute(frame *ecs.UpdateFrame) {
	for _, c := range s.next {
		s.Clicks.Send(c)
	}
	s.next = nil
}

type clickReader struct {
	Clicks ecs.Events[Clicked]
	got    [][]Clicked
}

func (s *clickReader) Execute(frame *ecs.UpdateFrame) {
	s.got = append(s.got, slices.Collect(s.Clicks.Iter()))
}

func TestEventsSameFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	sender := &clickSender{next: []Clicked{{1, 1}, {2, 2}}}
	reader := &clickReader{}
	scheduler.Register(sender)
	scheduler.Register(reader)

	scheduler.Once(0.1)
	scheduler.Once(0.1)

	assert.Equal(t, [][]Clicked{{{1, 1}, {2, 2}}, nil}, reader.got, "read once, in the frame they were sent")
}

func TestEventsNextFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	// reader registered first only sees the events on the following frame
	reader := &clickReader{}
	sender := &clickSender{next: []Clicked{{3, 3}}}
	scheduler.Register(reader)
	scheduler.Register(sender)

	scheduler.Once(0.1)
	scheduler.Once(0.1)
	scheduler.Once(0.1)

	assert.Equal(t, [][]Clicked{nil, {{3, 3}}, nil}, reader.got)
}

func TestEventsExpireAfterTwoFrames(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	idle := ecs.NewEvents[Clicked](storage)
	scheduler.Register(&clickSender{next: []Clicked{{4, 4}}})

	scheduler.Once(0.1)
	assert.Equal(t, 1, idle.Len())

	late := ecs.NewEvents[Clicked](storage)
	assert.Equal(t, 0, late.Len(), "new readers start after queued events")

	scheduler.Once(0.1)
	assert.Equal(t, 0, idle.Len(), "dropped after the following frame")
	assert.Equal(t, 1, storage.CollectStats().EventTypeCount)
}

func TestEventsIndependentReaders(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	writer := ecs.NewEvents[Clicked](storage)
	a := ecs.NewEvents[Clicked](storage)
	b := ecs.NewEvents[Clicked](storage)

	writer.Send(Clicked{1, 2})
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, []Clicked{{1, 2}}, slices.Collect(a.Iter()))
	assert.Equal(t, 0, a.Len())

	assert.Equal(t, 1, b.Len())
	b.Clear()
	assert.Equal(t, 0, b.Len())
}

func TestRenderSchedulerKeepsEvents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	update := ecs.NewScheduler(storage)
	render := ecs.NewScheduler(storage, ecs.WithoutEventSwap())

	reader := &clickReader{}
	sender := &clickSender{next: []Clicked{{5, 5}}}
	update.Register(reader)
	update.Register(sender)

	update.Once(0.1)
	render.Once(0)
	update.Once(0.1)

	assert.Equal(t, [][]Clicked{nil, {{5, 5}}}, reader.got)
}
