// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ipc correlates replies from the privileged process with the
// requests that are waiting for them.
package ipc

import (
	"errors"
	"sync"

	"github.com/MKhiriev/go-vault-adder/models"
)

var ErrDuplicateRequestID = errors.New("request ID is already pending")

// Correlator keeps one pending slot per request ID. A reply is delivered to
// the slot registered under its request ID and the slot is removed, so each
// reply reaches at most one waiter.
type Correlator struct {
	mu      sync.Mutex
	pending map[string]*Pending
}

func NewCorrelator() *Correlator {
	return &Correlator{pending: make(map[string]*Pending)}
}

// Register reserves a slot for requestID. It must be called before the
// request is sent so that an early reply is not lost.
func (c *Correlator) Register(requestID string) (*Pending, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[requestID]; ok {
		return nil, ErrDuplicateRequestID
	}

	p := &Pending{
		requestID:  requestID,
		correlator: c,
		ch:         make(chan models.ReplyEnvelope, 1),
	}
	c.pending[requestID] = p

	return p, nil
}

// Resolve delivers reply to the slot with the same request ID. It reports
// false when no such slot is registered.
func (c *Correlator) Resolve(reply models.ReplyEnvelope) bool {
	c.mu.Lock()
	p, ok := c.pending[reply.RequestID]
	if ok {
		delete(c.pending, reply.RequestID)
	}
	c.mu.Unlock()

	if !ok {
		return false
	}

	p.ch <- reply
	return true
}

// Len reports the number of pending slots.
func (c *Correlator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.pending)
}

func (c *Correlator) remove(p *Pending) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending[p.requestID] == p {
		delete(c.pending, p.requestID)
	}
}

// Pending is a registered slot awaiting one reply.
type Pending struct {
	requestID  string
	correlator *Correlator
	ch         chan models.ReplyEnvelope
	once       sync.Once
}

func (p *Pending) RequestID() string {
	return p.requestID
}

// C returns the channel on which the reply is delivered.
func (p *Pending) C() <-chan models.ReplyEnvelope {
	return p.ch
}

// Cancel deregisters the slot. Idempotent, and a no-op once resolved.
func (p *Pending) Cancel() {
	p.once.Do(func() { p.correlator.remove(p) })
}
