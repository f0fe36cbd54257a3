// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-vault-adder/internal/adapter"
	"github.com/MKhiriev/go-vault-adder/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrBackendUnauthorized

	case errors.Is(err, adapter.ErrResponseHashMismatch):
		return ErrIntegrityCheckFailed

	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgHashMismatch {
			return ErrIntegrityCheckFailed
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUnknownChannel {
			return ErrUnknownChannel
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
