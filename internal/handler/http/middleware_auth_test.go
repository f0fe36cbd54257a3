package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/utils"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		header  func(t *testing.T) string
		wantMsg string
	}{
		{
			name:    "no header",
			header:  func(*testing.T) string { return "" },
			wantMsg: app.MsgNoAuthorizationHeader,
		},
		{
			name:    "not a bearer",
			header:  func(*testing.T) string { return "Basic dXNlcjpwYXNz" },
			wantMsg: app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:    "garbage token",
			header:  func(*testing.T) string { return "Bearer not.a.jwt" },
			wantMsg: app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name: "foreign signing key",
			header: func(t *testing.T) string {
				token, err := utils.GenerateJWTToken(testIssuer, "renderer", time.Minute, "another-key")
				if err != nil {
					t.Fatal(err)
				}
				return "Bearer " + token.String()
			},
			wantMsg: app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:    "expired token",
			header:  func(t *testing.T) string { return "Bearer " + expiredToken(t) },
			wantMsg: app.MsgTokenIsExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// сервис не должен вызываться
			router, _, _ := newTestRouter(t, ctrl)

			req := httptest.NewRequest(http.MethodPost, "/api/ipc/get-new-vault-filename/invoke", nil)
			if h := tt.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			req.Header.Set(utils.HashHeader, utils.HashString("", testHashKey))

			rr := serve(router, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rr))
		})
	}
}

func TestAuthMiddleware_StoresSubject(t *testing.T) {
	h := NewHandler(nil, testSecurity, logger.Nop())

	var subject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ = utils.GetSubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearer(t))
	rr := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "renderer", subject)
}
