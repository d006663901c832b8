// Package validation binds and validates request payloads.
//
// Payloads carry validator struct tags; failures are flattened into
// field-level errors the API returns as a 400 response.
package validation
