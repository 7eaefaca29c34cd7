package adapter

import "errors"

// Sentinel transport errors mapped from HTTP status codes by mapHTTPError.
// Callers match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("document not found")
	ErrConflict            = errors.New("document conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
