package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("permission denied")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrOperationFailed indicates a long-running operation finished with an
	// error status.
	ErrOperationFailed = errors.New("operation failed")
)
