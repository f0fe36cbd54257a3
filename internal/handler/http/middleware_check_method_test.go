package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRouter_HidesUnknownRoutesAndMethods(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/api/unknown"},
		{name: "GET on ipc send", method: http.MethodGet, target: "/api/ipc/add-vault-config"},
		{name: "DELETE on version", method: http.MethodDelete, target: "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, _, _ := newTestRouter(t, ctrl)

			rr := serve(router, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, http.StatusText(http.StatusNotFound), decodeError(t, rr))
		})
	}
}
