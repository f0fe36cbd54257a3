// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/mock"
	"github.com/MKhiriev/go-vault-adder/internal/service"
	"github.com/MKhiriev/go-vault-adder/internal/utils"
)

const (
	testHashKey = "testhashkey"
	testSignKey = "testsignkey"
	testIssuer  = "vault-adder"
)

var testSecurity = config.Security{
	HashKey:       testHashKey,
	TokenSignKey:  testSignKey,
	TokenIssuer:   testIssuer,
	TokenDuration: time.Minute,
}

// newTestRouter создаёт роутер поверх моков сервисов.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (http.Handler, *mock.MockVaultBackendService, *mock.MockAppInfoService) {
	t.Helper()
	backend := mock.NewMockVaultBackendService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{
		VaultBackendService: backend,
		AppInfoService:      appInfo,
	}, testSecurity, logger.Nop())

	return h.Init(), backend, appInfo
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, "renderer", time.Minute, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.String()
}

// signedRequest builds an authenticated request with a valid body digest.
func signedRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", bearer(t))
	req.Header.Set(utils.HashHeader, utils.HashString(string(body), testHashKey))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func assertSigned(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	body, err := io.ReadAll(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, utils.HashString(string(body), testHashKey), rr.Header().Get(utils.HashHeader))
}

func expiredToken(t *testing.T) string {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "renderer",
		IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(past),
	})
	signed, err := token.SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return signed
}

type mockBackend = mock.MockVaultBackendService
