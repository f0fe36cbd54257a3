// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events provides an in-process event emitter with two kinds of
// listeners:
//
//   - subscribers, registered with [Emitter.Subscribe], receive every event
//     emitted while they are registered (fan-out, no replay);
//   - one-shot listeners, created with [Emitter.Once], receive at most one
//     event and are removed as soon as they do. Each event is handed to the
//     oldest waiting one-shot listener only.
//
// Emitters are safe for concurrent use.
package events
