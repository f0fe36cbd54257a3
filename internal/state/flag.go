// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the observable application flags shared by the vault
// addition services and the UI.
package state

import (
	"sync"

	"github.com/MKhiriev/go-vault-adder/internal/events"
)

// Flag is an observable boolean. It reads true while it is Set or held by
// at least one Acquire. Subscribers are notified only when the observed value
// changes and must not call Set or Acquire from the callback.
type Flag struct {
	name string

	notifyMu sync.Mutex
	mu       sync.Mutex
	set      bool
	holders  int

	changes *events.Emitter[bool]
}

// NewFlag returns a cleared flag.
func NewFlag(name string) *Flag {
	return &Flag{
		name:    name,
		changes: events.NewEmitter[bool](),
	}
}

func (f *Flag) Name() string {
	return f.name
}

// Get returns the current value.
func (f *Flag) Get() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.valueLocked()
}

// Set stores the explicit part of the value. Holders keep the flag true
// after Set(false).
func (f *Flag) Set(v bool) {
	f.update(func() { f.set = v })
}

// Subscribe registers fn for value changes.
func (f *Flag) Subscribe(fn func(bool)) (unsubscribe func()) {
	return f.changes.Subscribe(fn)
}

// Acquire adds a holder and returns its release. The flag clears when the
// last holder releases, regardless of release order. Release is idempotent.
func (f *Flag) Acquire() (release func()) {
	f.update(func() { f.holders++ })

	var once sync.Once
	return func() {
		once.Do(func() {
			f.update(func() { f.holders-- })
		})
	}
}

// Holders returns the number of unreleased Acquire calls.
func (f *Flag) Holders() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.holders
}

func (f *Flag) update(mutate func()) {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()

	f.mu.Lock()
	before := f.valueLocked()
	mutate()
	after := f.valueLocked()
	f.mu.Unlock()

	if before != after {
		f.changes.Emit(after)
	}
}

func (f *Flag) valueLocked() bool {
	return f.set || f.holders > 0
}
