// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the privileged process.
//
// [BackendAdapter] models the three kinds of exchange the vault addition
// flow needs: fire-and-forget messages on a channel, invoke-style requests
// that return a string, and subscriptions to messages arriving on a channel.
// The package ships an HTTP implementation ([NewHTTPBackendAdapter]) in which
// a reply returned in the response body of a send on channel X is delivered
// to the subscribers of "X:reply".
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// MessageHandler receives the raw body of a message arriving on a channel.
type MessageHandler func(data []byte)

// BackendAdapter defines transport-agnostic communication with the
// privileged process.
type BackendAdapter interface {
	// Send serializes payload as JSON and delivers it on channel. Any reply
	// produced by the privileged process is dispatched to the handlers of
	// channel + models.ReplySuffix before Send returns.
	Send(ctx context.Context, channel string, payload any) error

	// Invoke performs a request on channel and returns its string result.
	// An empty result is a valid answer.
	Invoke(ctx context.Context, channel string) (string, error)

	// OnMessage registers handler for messages arriving on channel. The
	// returned function removes the registration.
	OnMessage(channel string, handler MessageHandler) (unsubscribe func())
}
