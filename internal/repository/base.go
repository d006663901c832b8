package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/fitstack/trainings-api/internal/errs"
	"github.com/fitstack/trainings-api/internal/sqlerr"
)

// Querier is the subset of pgx query methods repositories run against.
// Both *pgxpool.Pool and pgx.Tx satisfy it, so the same code serves
// standalone calls and transactional ones.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// txBeginner opens transactions for the multi-statement workflows.
// *pgxpool.Pool satisfies it.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// record is any row type that can validate itself after scanning.
type record interface {
	CheckRecord() error
}

// Decompose turns a change-set map into parallel slices of column names,
// values and 1-based placeholders, ordered by the FieldSet's declaration
// order so generated SQL is deterministic.
//
// An empty map is invalid input: every write path requires at least one
// column. A key outside the FieldSet is rejected too, which keeps map keys
// from ever reaching SQL as identifiers.
func (f FieldSet) Decompose(changes map[string]any) (keys []string, values []any, placeholders []string, err error) {
	if len(changes) == 0 {
		return nil, nil, nil, errs.NewInvalidInputError("no fields provided")
	}

	for key := range changes {
		if !f.Has(key) {
			return nil, nil, nil, errs.NewInvalidInputError(fmt.Sprintf("unknown column %q", key))
		}
	}

	keys = make([]string, 0, len(changes))
	values = make([]any, 0, len(changes))
	placeholders = make([]string, 0, len(changes))
	for _, name := range f.names {
		value, ok := changes[name]
		if !ok {
			continue
		}
		keys = append(keys, name)
		values = append(values, value)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(keys)))
	}

	return keys, values, placeholders, nil
}

// SetClause renders "a = $1, b = $2" for an UPDATE statement.
func SetClause(keys []string) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprintf("%s = $%d", key, i+1)
	}
	return strings.Join(parts, ", ")
}

// WhereClause renders "a = $start AND b = $start+1" for filtering.
func WhereClause(keys []string, start int) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprintf("%s = $%d", key, start+i)
	}
	return strings.Join(parts, " AND ")
}

// fetchOne runs a query expected to return exactly one row, scans it by
// column name and validates it. No row maps to NotFound; a row carrying an
// enum value outside the model vocabulary maps to ConversionError.
func fetchOne[T record](ctx context.Context, db Querier, query string, args ...any) (T, error) {
	var zero T

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, sqlerr.HandleError(err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, sqlerr.HandleError(err)
	}

	if err := row.CheckRecord(); err != nil {
		return zero, errs.NewConversionError(err.Error())
	}

	return row, nil
}

// fetchAll runs a query and scans every row. No matches yields an empty
// slice, not an error.
func fetchAll[T record](ctx context.Context, db Querier, query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	for _, row := range out {
		if err := row.CheckRecord(); err != nil {
			return nil, errs.NewConversionError(err.Error())
		}
	}

	if out == nil {
		out = []T{}
	}
	return out, nil
}

// crud is the generic repository core for tables keyed by a bigint id.
// Entity repositories embed it and add policy (ownership, soft delete,
// transactions) on top.
type crud[T record] struct {
	db     Querier
	table  string
	fields FieldSet
}

func (c *crud[T]) create(ctx context.Context, changes map[string]any) (T, error) {
	var zero T

	keys, values, placeholders, err := c.fields.Decompose(changes)
	if err != nil {
		return zero, err
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		c.table, strings.Join(keys, ", "), strings.Join(placeholders, ", "), c.fields.Projection(),
	)

	row, err := fetchOne[T](ctx, c.db, query, values...)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return zero, errs.NewCreateFailedError(fmt.Sprintf("failed to create %s record", c.table))
		}
		return zero, err
	}
	return row, nil
}

func (c *crud[T]) get(ctx context.Context, id int64) (T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", c.fields.Projection(), c.table)
	return fetchOne[T](ctx, c.db, query, id)
}

func (c *crud[T]) list(ctx context.Context, filters map[string]any) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", c.fields.Projection(), c.table)

	var values []any
	if len(filters) > 0 {
		keys, vals, _, err := c.fields.Decompose(filters)
		if err != nil {
			return nil, err
		}
		query += " WHERE " + WhereClause(keys, 1)
		values = vals
	}
	query += " ORDER BY id"

	return fetchAll[T](ctx, c.db, query, values...)
}

func (c *crud[T]) update(ctx context.Context, id int64, changes map[string]any) (T, error) {
	var zero T

	keys, values, _, err := c.fields.Decompose(changes)
	if err != nil {
		return zero, err
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		c.table, SetClause(keys), len(keys)+1, c.fields.Projection(),
	)
	values = append(values, id)

	return fetchOne[T](ctx, c.db, query, values...)
}

func (c *crud[T]) delete(ctx context.Context, id int64) (T, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", c.table, c.fields.Projection())
	return fetchOne[T](ctx, c.db, query, id)
}
