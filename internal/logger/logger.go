// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the vault-adder client and the privileged backend.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on
// *Logger. Request-scoped loggers are obtained via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given role
// label (e.g. "backend").
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger for the interactive client. The
// terminal is owned by the UI, so entries are appended to logFile instead; a
// relative path is resolved next to the executable. Falls back to os.Stderr
// when the file cannot be opened.
func NewClientLogger(role, logFile string) *Logger {
	if logFile == "" {
		logFile = "vault-adder.log"
	}
	if !filepath.IsAbs(logFile) {
		if execPath, err := os.Executable(); err == nil {
			logFile = filepath.Join(filepath.Dir(execPath), logFile)
		}
	}

	var out io.Writer = os.Stderr
	if f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		out = f
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithRequestID returns a child logger tagged with the given IPC request id.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{l.With().Str("request_id", requestID).Logger()}
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx by zerolog's WithContext.
// When none is attached zerolog's default logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
