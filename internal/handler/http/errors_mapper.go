package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/store"
)

type errorStatus struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorStatus{
	ErrUnknownChannel:            {http.StatusNotFound, app.MsgUnknownChannel},
	ErrEmptyAuthorizationHeader:  {http.StatusUnauthorized, app.MsgNoAuthorizationHeader},
	store.ErrVaultSourceNotFound: {http.StatusNotFound, app.MsgVaultFileNotFound},
	store.ErrVaultSourceExists:   {http.StatusConflict, app.MsgVaultSourceExists},
	store.ErrVaultFileExists:     {http.StatusConflict, app.MsgVaultFileExists},
	context.DeadlineExceeded:     {http.StatusGatewayTimeout, http.StatusText(http.StatusGatewayTimeout)},
}

// statusFromError returns the status and client-facing message for err.
// Unknown errors become 500 with a generic message.
func statusFromError(err error) (int, string) {
	for target, s := range errorStatusMap {
		if errors.Is(err, target) {
			return s.status, s.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
