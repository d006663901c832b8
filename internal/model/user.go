package model

import "time"

// User is an account row. Users are never hard-deleted; DeletedAt marks the
// row as removed and excludes it from identity lookups.
type User struct {
	ID           int64      `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Email        string     `db:"email" json:"email"`
	Role         Role       `db:"role" json:"role"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	LastLogin    *time.Time `db:"last_login" json:"last_login"`
	DeletedAt    *time.Time `db:"deleted_at" json:"deleted_at"`
}

// CheckRecord verifies the row carries a known role value.
func (u User) CheckRecord() error {
	if !u.Role.Valid() {
		return fieldErr("role", string(u.Role))
	}
	return nil
}

// CreateUser is the registration payload. The plaintext password is hashed by
// the repository before persisting and is never stored or logged.
type CreateUser struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,min=8,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role" validate:"omitempty,oneof=ADMIN USER TRAINER STAFFER SYSTEM ANALYST OTHER"`
}

func (r *CreateUser) Validate() error { return validate.Struct(r) }

// Map builds the insert change-set. The caller supplies the already-hashed
// password; the plaintext never reaches the SQL layer.
func (r *CreateUser) Map(passwordHash string) map[string]any {
	role := r.Role
	if role == "" {
		role = RoleUser
	}
	return map[string]any{
		"username":      r.Username,
		"password_hash": passwordHash,
		"email":         r.Email,
		"role":          role,
		"created_at":    time.Now().UTC(),
	}
}

// PatchUser is the partial-update payload; nil fields are left untouched.
type PatchUser struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=50"`
	Password *string `json:"password" validate:"omitempty,min=8,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *Role   `json:"role" validate:"omitempty,oneof=ADMIN USER TRAINER STAFFER SYSTEM ANALYST OTHER"`
}

func (r *PatchUser) Validate() error { return validate.Struct(r) }

// Map builds the update change-set from the fields that were supplied.
// The repository swaps Password for a fresh hash before executing.
func (r *PatchUser) Map() map[string]any {
	m := map[string]any{}
	if r.Username != nil {
		m["username"] = *r.Username
	}
	if r.Password != nil {
		m["password"] = *r.Password
	}
	if r.Email != nil {
		m["email"] = *r.Email
	}
	if r.Role != nil {
		m["role"] = *r.Role
	}
	return m
}

// UserFilters narrows a user listing. Bound from query parameters.
type UserFilters struct {
	Username *string `query:"username" validate:"omitempty,min=2,max=50"`
	Email    *string `query:"email" validate:"omitempty,email"`
	Role     *Role   `query:"role" validate:"omitempty,oneof=ADMIN USER TRAINER STAFFER SYSTEM ANALYST OTHER"`
}

func (r *UserFilters) Validate() error { return validate.Struct(r) }

func (r *UserFilters) Map() map[string]any {
	m := map[string]any{}
	if r.Username != nil {
		m["username"] = *r.Username
	}
	if r.Email != nil {
		m["email"] = *r.Email
	}
	if r.Role != nil {
		m["role"] = *r.Role
	}
	return m
}
