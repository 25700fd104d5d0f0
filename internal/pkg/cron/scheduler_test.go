package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunOnce(t *testing.T) {
	s := NewScheduler()

	var first, second atomic.Int32
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestSchedulerRunOnceContinuesPastFailures(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Bool
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})
	s.AddJob("after", time.Hour, func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	s.RunOnce(context.Background())

	assert.True(t, ran.Load(), "jobs after a failing one must still run")
}

func TestSchedulerRunOnceRecoversPanics(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Bool
	s.AddJob("panicking", time.Hour, func(ctx context.Context) error {
		panic("boom")
	})
	s.AddJob("after", time.Hour, func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	assert.NotPanics(t, func() { s.RunOnce(context.Background()) })
	assert.True(t, ran.Load(), "jobs after a panicking one must still run")
}

func TestSchedulerStartRunsJobImmediately(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		close(done)
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on scheduler start")
	}
}
