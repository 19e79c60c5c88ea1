package ecs

import (
	"fmt"
	"time"
)

// FixedStep runs the wrapped system once per elapsed interval of frame time.
// A long frame runs it several times; a short one may not run it at all.
// The wrapped system sees DeltaTime equal to the interval.
type FixedStep struct {
	system      System
	step        float64
	accumulator float64
}

// Every wraps system in a FixedStep with the given interval.
func Every(interval time.Duration, system System) *FixedStep {
	if interval <= 0 {
		panic("ecs: fixed step interval must be positive")
	}
	return &FixedStep{system: system, step: interval.Seconds()}
}

func (f *FixedStep) Unwrap() System {
	return f.system
}

func (f *FixedStep) Name() string {
	return fmt.Sprintf("%s@%s", systemName(f.system), time.Duration(f.step*float64(time.Second)))
}

// Interval returns the step length.
func (f *FixedStep) Interval() time.Duration {
	return time.Duration(f.step * float64(time.Second))
}

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.accumulator = 0
}

func (f *FixedStep) Execute(frame *UpdateFrame) {
	f.accumulator += frame.DeltaTime
	if f.accumulator < f.step {
		return
	}

	stepped := *frame
	stepped.DeltaTime = f.step
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		f.system.Execute(&stepped)
	}
}
