// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

var ErrUserQuit = errors.New("user quit")

// humanizeServiceUnavailable replaces low-level transport failures with a
// message the user can act on.
func humanizeServiceUnavailable(message string) string {
	s := strings.ToLower(message)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Сервис хранилищ недоступен"
	}

	return message
}
