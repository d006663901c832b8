package repository

import "strings"

// FieldSet is an ordered, immutable set of column names for one entity.
// The projection string is built once at construction; listing columns
// explicitly keeps SELECT results stable when the schema grows.
type FieldSet struct {
	names      []string
	projection string
	index      map[string]int
}

// NewFieldSet builds a FieldSet from column names in declaration order.
func NewFieldSet(names ...string) FieldSet {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return FieldSet{
		names:      names,
		projection: strings.Join(names, ", "),
		index:      index,
	}
}

// Names returns a copy of the column names in order.
func (f FieldSet) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Projection returns the cached comma-joined column list.
func (f FieldSet) Projection() string {
	return f.projection
}

// Has reports whether name is a column of this set.
func (f FieldSet) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column sets per entity. Order matches the table DDL.
var (
	userFields = NewFieldSet(
		"id", "username", "password_hash", "email", "role",
		"created_at", "last_login", "deleted_at",
	)

	clientFields = NewFieldSet(
		"id", "user_id", "membership_id", "first_name", "last_name",
		"phone_number", "gender", "date_of_birth", "weight_kg", "height_cm",
		"status", "expiration_date",
	)

	membershipFields = NewFieldSet(
		"id", "access_level", "description", "price",
	)

	exerciseFields = NewFieldSet(
		"id", "title", "description", "muscle_group",
		"equipment_required", "complexity_lvl",
	)

	trainingFields = NewFieldSet(
		"id", "client_id", "training_type", "title", "intensity",
		"duration_min", "date_of_train", "description",
	)

	trainingExerciseFields = NewFieldSet(
		"training_id", "exercise_id", "order_in_training",
		"sets", "reps", "rest_time_sec", "extra_weight",
	)

	paymentFields = NewFieldSet(
		"id", "client_id", "membership_id", "payment_status", "timestamp",
	)

	reportFields = NewFieldSet(
		"id", "report_date_start", "report_date_end", "new_users",
	)
)
