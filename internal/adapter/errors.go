package adapter

import "errors"

var (
	ErrInvalidAddress       = errors.New("invalid backend address")
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrInternalServerError  = errors.New("internal server error")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrBadGateway           = errors.New("bad gateway")
	ErrGatewayTimeout       = errors.New("backend timed out")
	ErrResponseHashMismatch = errors.New("response hash mismatch")
)
