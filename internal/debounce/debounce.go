// Package debounce holds back a changing value until it has stopped changing
// for a fixed delay.
package debounce

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer emits the most recent pushed value once no new value has arrived
// for the configured delay. Values superseded before the timer fires are dropped.
type Debouncer[T comparable] struct {
	clock clockwork.Clock
	delay time.Duration
	emit  func(T)

	mu      sync.Mutex
	timer   clockwork.Timer
	seq     uint64 // bumped on every push; a firing timer must match it
	stable  T
	stopped bool
}

// New creates a debouncer. emit runs on the clock's timer goroutine, or
// synchronously inside Push when delay <= 0.
func New[T comparable](clock clockwork.Clock, delay time.Duration, emit func(T)) *Debouncer[T] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Debouncer[T]{
		clock: clock,
		delay: delay,
		emit:  emit,
	}
}

// Push records a new input value and restarts the quiet period
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.seq++
	d.cancelLocked()

	// Output already equals input; nothing to wait for.
	if v == d.stable {
		d.mu.Unlock()
		return
	}

	if d.delay <= 0 {
		d.stable = v
		d.mu.Unlock()
		d.emit(v)
		return
	}

	seq := d.seq
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(seq, v) })
	d.mu.Unlock()
}

// Reset drops any pending value and sets the stable output without emitting
func (d *Debouncer[T]) Reset(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	d.cancelLocked()
	d.stable = v
}

// Value returns the last stable output
func (d *Debouncer[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stable
}

// Pending reports whether a value is waiting for its quiet period
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending timer. No emission starts after Stop returns.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.seq++
	d.cancelLocked()
}

func (d *Debouncer[T]) fire(seq uint64, v T) {
	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.stable = v
	d.mu.Unlock()
	d.emit(v)
}

func (d *Debouncer[T]) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
