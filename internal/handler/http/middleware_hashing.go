package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/utils"
)

// withHashing rejects requests whose HashSHA256 header does not match the
// body and signs the response body with the same key.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		// read bytes from body
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			status := http.StatusBadRequest
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			utils.WriteError(w, app.MsgInvalidDataProvided, status)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, r.Header.Get(utils.HashHeader)) {
			log.Error().Str("func", "*Handler.withHashing").
				Str("hash from request", r.Header.Get(utils.HashHeader)).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		sw := &signingResponseWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		if err = sw.flush(h.hasher); err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to write signed response")
		}
	})
}

// signingResponseWriter buffers the response so that its digest can be set
// as a header before anything reaches the client.
type signingResponseWriter struct {
	http.ResponseWriter

	status int
	buf    bytes.Buffer
}

func (s *signingResponseWriter) WriteHeader(statusCode int) {
	if s.status == 0 {
		s.status = statusCode
	}
}

func (s *signingResponseWriter) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.buf.Write(b)
}

func (s *signingResponseWriter) flush(hasher *utils.Hasher) error {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	if s.buf.Len() > 0 {
		s.Header().Set(utils.HashHeader, hasher.SumHex(s.buf.Bytes()))
	}

	s.ResponseWriter.WriteHeader(s.status)
	_, err := s.ResponseWriter.Write(s.buf.Bytes())
	return err
}
