// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"sync"
)

// Emitter delivers values of type T to subscribers and one-shot listeners.
type Emitter[T any] struct {
	mu          sync.Mutex
	nextID      uint64
	subscribers map[uint64]func(T)
	order       []uint64
	waiting     []*Listener[T]
}

// NewEmitter returns an Emitter without listeners.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{
		subscribers: make(map[uint64]func(T)),
	}
}

// Subscribe registers fn for every subsequent event. The returned function
// removes the subscription; calling it more than once is a no-op.
func (e *Emitter[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.subscribers[id] = fn
	e.order = append(e.order, id)
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { e.unsubscribe(id) })
	}
}

// Once registers a one-shot listener. The listener must be cancelled when the
// caller stops waiting on it, typically with a deferred [Listener.Cancel].
func (e *Emitter[T]) Once() *Listener[T] {
	l := &Listener[T]{
		emitter: e,
		ch:      make(chan T, 1),
	}

	e.mu.Lock()
	e.waiting = append(e.waiting, l)
	e.mu.Unlock()

	return l
}

// Emit delivers v to every current subscriber and to the oldest waiting
// one-shot listener. Subscribers are called synchronously in registration
// order on the caller's goroutine. It returns the number of listeners that
// received v.
func (e *Emitter[T]) Emit(v T) int {
	e.mu.Lock()
	fns := make([]func(T), 0, len(e.order))
	for _, id := range e.order {
		fns = append(fns, e.subscribers[id])
	}

	var first *Listener[T]
	if len(e.waiting) > 0 {
		first = e.waiting[0]
		e.waiting = e.waiting[1:]
	}
	e.mu.Unlock()

	delivered := len(fns)
	if first != nil {
		first.ch <- v
		delivered++
	}

	for _, fn := range fns {
		fn(v)
	}

	return delivered
}

// Waiting reports the number of one-shot listeners that have not fired yet.
func (e *Emitter[T]) Waiting() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.waiting)
}

// Subscribers reports the number of active subscriptions.
func (e *Emitter[T]) Subscribers() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.subscribers)
}

func (e *Emitter[T]) unsubscribe(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.subscribers, id)
	for i, v := range e.order {
		if v == id {
			e.order = append(e.order[:i:i], e.order[i+1:]...)
			break
		}
	}
}

func (e *Emitter[T]) removeWaiting(l *Listener[T]) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, w := range e.waiting {
		if w == l {
			e.waiting = append(e.waiting[:i:i], e.waiting[i+1:]...)
			return true
		}
	}
	return false
}

// Listener is a one-shot registration created by [Emitter.Once].
type Listener[T any] struct {
	emitter *Emitter[T]
	ch      chan T
	once    sync.Once
	removed bool
}

// C returns the channel on which the single event is delivered.
func (l *Listener[T]) C() <-chan T {
	return l.ch
}

// Cancel deregisters the listener. It reports false when an event had
// already been taken for this listener; that event is then buffered on C.
// Idempotent, repeated calls return the first result.
func (l *Listener[T]) Cancel() (removed bool) {
	l.once.Do(func() { l.removed = l.emitter.removeWaiting(l) })
	return l.removed
}
