package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRequestID      = errors.New("invalid request ID")
	ErrEmptyDatasourceType   = errors.New("datasource type is required")
	ErrUnsupportedDatasource = errors.New("unsupported datasource type")
	ErrEmptyDatasourcePath   = errors.New("file datasource requires a path")
	ErrEmptyMasterPassword   = errors.New("master password is required")
	ErrEmptyFileNameOverride = errors.New("filename override cannot be empty")
)
