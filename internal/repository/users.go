package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fitstack/trainings-api/internal/auth"
	"github.com/fitstack/trainings-api/internal/errs"
	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/sqlerr"
)

// UsersRepository persists user accounts.
//
// Users are soft-deleted: Delete stamps deleted_at and every read or write
// path here is guarded by deleted_at IS NULL, so a deleted account behaves
// like a missing one while its row stays for audit.
type UsersRepository struct {
	crud[model.User]
}

func NewUsersRepository(db Querier) *UsersRepository {
	return &UsersRepository{crud[model.User]{
		db:     db,
		table:  "users",
		fields: userFields,
	}}
}

// Create registers a user. The plaintext password is hashed here; it never
// reaches the SQL layer.
func (r *UsersRepository) Create(ctx context.Context, req *model.CreateUser) (model.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.User{}, errs.NewInternalServerError()
	}
	return r.create(ctx, req.Map(hash))
}

func (r *UsersRepository) Get(ctx context.Context, id int64) (model.User, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE id = $1 AND deleted_at IS NULL",
		r.fields.Projection(),
	)
	return fetchOne[model.User](ctx, r.db, query, id)
}

// GetByUsername looks a user up for login. Deleted accounts do not match.
func (r *UsersRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE username = $1 AND deleted_at IS NULL",
		r.fields.Projection(),
	)
	return fetchOne[model.User](ctx, r.db, query, username)
}

func (r *UsersRepository) List(ctx context.Context, filters *model.UserFilters) ([]model.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE deleted_at IS NULL", r.fields.Projection())

	var values []any
	if m := filters.Map(); len(m) > 0 {
		keys, vals, _, err := r.fields.Decompose(m)
		if err != nil {
			return nil, err
		}
		query += " AND " + WhereClause(keys, 1)
		values = vals
	}
	query += " ORDER BY id"

	return fetchAll[model.User](ctx, r.db, query, values...)
}

// ListCreatedBetween returns non-deleted users registered in [from, to).
// Feeds the scheduled user report.
func (r *UsersRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]model.User, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE deleted_at IS NULL AND created_at >= $1 AND created_at < $2 ORDER BY id",
		r.fields.Projection(),
	)
	return fetchAll[model.User](ctx, r.db, query, from, to)
}

// Update applies a change-set to a live user. A "password" key is swapped
// for a freshly hashed "password_hash" before decomposition.
func (r *UsersRepository) Update(ctx context.Context, id int64, changes map[string]any) (model.User, error) {
	if password, ok := changes["password"]; ok {
		plain, isString := password.(string)
		if !isString {
			return model.User{}, errs.NewInvalidInputError("password must be a string")
		}
		hash, err := auth.HashPassword(plain)
		if err != nil {
			return model.User{}, errs.NewInternalServerError()
		}
		delete(changes, "password")
		changes["password_hash"] = hash
	}

	keys, values, _, err := r.fields.Decompose(changes)
	if err != nil {
		return model.User{}, err
	}

	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING %s",
		SetClause(keys), len(keys)+1, r.fields.Projection(),
	)
	values = append(values, id)

	return fetchOne[model.User](ctx, r.db, query, values...)
}

// Delete soft-deletes: the row is stamped, not removed. Repeating the call
// yields NotFound because the guard no longer matches.
func (r *UsersRepository) Delete(ctx context.Context, id int64) (model.User, error) {
	query := fmt.Sprintf(
		"UPDATE users SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL RETURNING %s",
		r.fields.Projection(),
	)
	return fetchOne[model.User](ctx, r.db, query, time.Now().UTC(), id)
}

// TouchLastLogin stamps last_login after a successful login.
func (r *UsersRepository) TouchLastLogin(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "UPDATE users SET last_login = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now().UTC(), id)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError("User not found", false, nil)
	}
	return nil
}
