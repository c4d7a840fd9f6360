package search

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerRunsOnlyTheLastTask(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var ran atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		i := i
		d.Schedule(func() {
			ran.Add(1)
			last.Store(int32(i))
		})
	}

	require.Eventually(t, func() bool { return ran.Load() > 0 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond) // would catch stragglers
	assert.Equal(t, int32(1), ran.Load())
	assert.Equal(t, int32(5), last.Load())
}

func TestStopPreventsExecution(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var ran atomic.Int32

	d.Schedule(func() { ran.Add(1) })
	d.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())

	// a stopped debouncer stays stopped
	d.Schedule(func() { ran.Add(1) })
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())
}

func TestEachScheduleCancelsThePrevious(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var first atomic.Int32
	var second atomic.Int32

	d.Schedule(func() { first.Add(1) })
	time.Sleep(10 * time.Millisecond)
	d.Schedule(func() { second.Add(1) })

	require.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
	d.Stop()
}
