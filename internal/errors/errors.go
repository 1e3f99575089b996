package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.

var (
	// ErrValidation signifies that input data provided by a client failed
	// validation (e.g., an empty chat message).
	// This is mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration signifies that a required server-side setting (the
	// provider API key) is absent. Every relay call fails with this error
	// until the deployment is fixed; it is not recoverable per-request.
	// Like ErrValidation, it is mapped to a 400 Bad Request HTTP status.
	ErrConfiguration = errors.New("provider not configured")

	// ErrUpstream signifies that the call to the external completion provider
	// failed (network error, non-2xx status, malformed JSON). The underlying
	// detail is logged server-side and never echoed to the client.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrUpstream = errors.New("upstream provider failure")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
