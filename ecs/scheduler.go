package ecs

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// Stage groups systems. Commands issued in a stage are flushed before the
// next stage starts, so later stages see spawns and deletes of earlier ones.
type Stage int

const (
	StagePreUpdate Stage = iota
	StageUpdate
	StagePostUpdate
	stageCount
)

func (s Stage) String() string {
	switch s {
	case StagePreUpdate:
		return "pre-update"
	case StageUpdate:
		return "update"
	case StagePostUpdate:
		return "post-update"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          Stage
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// binder is implemented by Query, Singleton and Events.
type binder interface {
	bind(storage *Storage)
}

type executor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	stage   Stage
	queries []executor
	stats   SystemStats
}

// Scheduler runs registered systems in stage order, then registration order.
type Scheduler struct {
	storage    *Storage
	stages     [stageCount][]*registeredSystem
	all        []*registeredSystem
	frames     int64
	swapEvents bool
}

type SchedulerOption func(*Scheduler)

// WithoutEventSwap stops the scheduler from aging event buffers. Use it for a
// second scheduler over the same storage, such as a render pass, so events
// live for two frames of the main scheduler only.
func WithoutEventSwap() SchedulerOption {
	return func(s *Scheduler) {
		s.swapEvents = false
	}
}

func NewScheduler(storage *Storage, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{storage: storage, swapEvents: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds system to StageUpdate.
func (s *Scheduler) Register(system System) {
	s.RegisterStage(StageUpdate, system)
}

// RegisterStage adds system to stage and binds its Query, Singleton and
// Events fields.
func (s *Scheduler) RegisterStage(stage Stage, system System) {
	if stage < 0 || stage >= stageCount {
		panic("ecs: unknown " + stage.String())
	}
	rs := &registeredSystem{
		system: system,
		stage:  stage,
		stats: SystemStats{
			Name:        systemName(system),
			Stage:       stage,
			MinDuration: time.Duration(1<<63 - 1),
		},
	}
	rs.queries = s.bindFields(system)
	s.stages[stage] = append(s.stages[stage], rs)
	s.all = append(s.all, rs)
}

// wrapper is implemented by systems that decorate another system.
type wrapper interface {
	Unwrap() System
}

func (s *Scheduler) bindFields(system System) []executor {
	var queries []executor
	if w, ok := system.(wrapper); ok {
		queries = append(queries, s.bindFields(w.Unwrap())...)
	}

	v := reflect.ValueOf(system)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return queries
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		addr := field.Addr().Interface()
		b, ok := addr.(binder)
		if !ok {
			continue
		}
		b.bind(s.storage)
		if q, ok := addr.(executor); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

func systemName(system System) string {
	if w, ok := system.(interface{ Name() string }); ok {
		return w.Name()
	}
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// Once runs every stage once with the given delta time in seconds.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage)

	for stage := range s.stages {
		for _, rs := range s.stages[stage] {
			for _, q := range rs.queries {
				q.Execute()
			}

			start := time.Now()
			rs.system.Execute(frame)
			rs.record(time.Since(start))
		}
		frame.Commands.Flush(s.storage)
	}

	if s.swapEvents {
		s.storage.swapEvents()
	}
	s.frames++
}

func (rs *registeredSystem) record(d time.Duration) {
	st := &rs.stats
	st.ExecutionCount++
	st.LastDuration = d
	st.TotalDuration += d
	st.MinDuration = min(st.MinDuration, d)
	st.MaxDuration = max(st.MaxDuration, d)
}

// Run calls Once on every tick of interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// GetStats returns a copy of the per-system timings in registration order.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.all),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.all)),
	}
	for i, rs := range s.all {
		st := rs.stats
		if st.ExecutionCount > 0 {
			st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
		} else {
			st.MinDuration = 0
		}
		stats.Systems[i] = st
		stats.TotalExecutions += st.ExecutionCount
	}
	return stats
}
