package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-vault-adder/internal/logger"
)

// withLogging writes one access log entry per request. Server errors are
// logged at error level, client errors at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log := logger.FromRequest(r)
		log.WithLevel(accessLogLevel(lw.statusOrOK())).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			// route params are filled in by the time next returns
			Str("channel", chi.URLParam(r, "channel")).
			Int("status", lw.statusOrOK()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
