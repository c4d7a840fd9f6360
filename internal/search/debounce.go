package search

import (
	"sync"
	"time"
)

// Debouncer runs at most one scheduled task after a quiet period. Each
// Schedule cancels the previous pending task, so only the last keystroke's
// query executes. Stop cancels any pending task for good; a stopped
// debouncer never fires again, which keeps a teardown from racing a dangling
// completion into disposed state.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	stopped bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule queues task to run after the quiet period, cancelling any task
// already pending.
func (d *Debouncer) Schedule(task func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if stopped {
			return
		}
		task()
	})
}

// Stop cancels the pending task and disables the debouncer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
