// Package debounce delays a changing value until it has settled.
package debounce

import (
	"sync"
	"time"

	godebounce "github.com/romdo/go-debounce"
)

const DefaultWait = 300 * time.Millisecond

// Debouncer emits the latest value passed to Set once no newer value has
// arrived for the wait duration. Values equal to the last emitted one are
// swallowed. After Stop no further value is emitted.
type Debouncer[T comparable] struct {
	mu         sync.Mutex
	emitMu     sync.Mutex
	current    T
	pending    T
	hasPending bool
	stopped    bool

	emit    func(T)
	trigger func()
	cancel  func()
}

// New creates a Debouncer whose settled value starts at initial. A
// non-positive wait uses DefaultWait.
func New[T comparable](initial T, wait time.Duration, emit func(T)) *Debouncer[T] {
	if wait <= 0 {
		wait = DefaultWait
	}
	d := &Debouncer[T]{current: initial, emit: emit}
	d.trigger, d.cancel = godebounce.New(wait, d.fire)
	return d
}

// Set records a new raw value and restarts the wait.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	if d.stopped || (d.hasPending && d.pending == v) {
		d.mu.Unlock()
		return
	}
	d.pending = v
	d.hasPending = true
	d.mu.Unlock()

	d.trigger()
}

// Value returns the last settled value.
func (d *Debouncer[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Reset drops any pending value and treats v as already settled, for when
// the consumer changed the value on its own.
func (d *Debouncer[T]) Reset(v T) {
	d.mu.Lock()
	d.current = v
	d.hasPending = false
	d.mu.Unlock()
}

// Stop cancels any pending emission and waits for an in-progress one.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.hasPending = false
	d.mu.Unlock()

	d.cancel()

	d.emitMu.Lock()
	d.emitMu.Unlock()
}

func (d *Debouncer[T]) fire() {
	d.emitMu.Lock()
	defer d.emitMu.Unlock()

	d.mu.Lock()
	if d.stopped || !d.hasPending {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.hasPending = false
	changed := v != d.current
	d.current = v
	d.mu.Unlock()

	if changed {
		d.emit(v)
	}
}
