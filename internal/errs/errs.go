// Package errs defines the application error types.
//
// Repository and service failures are expressed as *HTTPError values with a
// machine-readable code and a human message, so the HTTP boundary can
// translate them to status codes without leaking raw database errors.
package errs
