package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vault-adder/internal/utils"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusGatewayTimeout:        ErrGatewayTimeout,
}

// mapHTTPError returns nil for 2xx. Known statuses wrap their sentinel as
// "<sentinel>: <server message>", which service.extractBody relies on.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}

	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, msg)
}

// errorMessage unwraps a {"error": "..."} body. Other bodies are returned
// trimmed.
func errorMessage(body []byte) string {
	var errResp utils.ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(body))
}
