// Package model defines the persisted entities, their enum vocabularies and
// the request/filter types bound at the HTTP layer.
//
// Entity structs carry `db` tags matching the column names declared in the
// repository field sets; rows are scanned by name, so the tags are the single
// source of truth for the wire ↔ storage mapping.
package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance used by all request types.
var validate = validator.New()

// fieldErr reports an enum value the schema no longer recognizes. Surfacing
// it as a conversion failure catches schema drift instead of passing unknown
// vocabulary through to clients.
func fieldErr(field, value string) error {
	return fmt.Errorf("unknown %s value %q", field, value)
}
