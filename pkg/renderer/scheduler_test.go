package renderer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_ProcessesEveryIndexExactlyOnce(t *testing.T) {
	const total = 237
	seen := make([]int32, total)

	s := NewScheduler(7, 4)
	s.Run(total, func() func(int) {
		return func(i int) {
			atomic.AddInt32(&seen[i], 1)
		}
	}, nil)

	for i, count := range seen {
		assert.Equal(t, int32(1), count, "index %d processed %d times", i, count)
	}
}

func TestScheduler_PerWorkerClosuresCoverEveryIndex(t *testing.T) {
	const total = 100
	var mu sync.Mutex
	var ids []int

	s := NewScheduler(5, 8)
	s.Run(total, func() func(int) {
		localCount := 0
		return func(i int) {
			localCount++
			mu.Lock()
			ids = append(ids, localCount)
			mu.Unlock()
		}
	}, nil)

	assert.Len(t, ids, total)
}

func TestScheduler_ZeroTotalCompletesImmediately(t *testing.T) {
	s := NewScheduler(10, 2)
	called := false
	s.Run(0, func() func(int) {
		return func(i int) { called = true }
	}, nil)
	assert.False(t, called)
}

func TestScheduler_ProgressRunsUntilDone(t *testing.T) {
	var progressCalls int32
	s := NewScheduler(1, 2)
	s.Run(10, func() func(int) {
		return func(i int) { time.Sleep(time.Millisecond) }
	}, func() {
		atomic.AddInt32(&progressCalls, 1)
	})
	assert.GreaterOrEqual(t, progressCalls, int32(1))
}
