// Package handler is the first entry point for business logic after the
// router.
//
// It parses requests, handles input validation using the validation
// package, and calls the service and repository layers. It acts as the
// interface between the HTTP request and the core business logic.
package handler
