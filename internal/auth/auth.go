// Package auth implements token issuance and verification for the API.
//
// Tokens are JWTs signed with RS256: the API holds the private key, any
// verifier only needs the public key. Password storage uses bcrypt.
package auth

import "github.com/fitstack/trainings-api/internal/model"

// Caller is the authenticated identity attached to a request after token
// verification. Repositories use it for ownership checks.
type Caller struct {
	ID   int64
	Role model.Role
}

// IsStaff reports whether the caller may act on resources it does not own.
func (c Caller) IsStaff() bool {
	return c.Role.IsStaff()
}
