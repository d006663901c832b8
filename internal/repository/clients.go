package repository

import (
	"context"
	"fmt"

	"github.com/fitstack/trainings-api/internal/auth"
	"github.com/fitstack/trainings-api/internal/errs"
	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/sqlerr"
)

// ClientsRepository persists client profiles.
//
// Single-row reads and writes are ownership-checked: a caller with a plain
// role may only touch the client row linked to their own user account,
// while staff roles pass through.
type ClientsRepository struct {
	crud[model.Client]
}

func NewClientsRepository(db Querier) *ClientsRepository {
	return &ClientsRepository{crud[model.Client]{
		db:     db,
		table:  "clients",
		fields: clientFields,
	}}
}

func (r *ClientsRepository) Create(ctx context.Context, req *model.CreateClient) (model.Client, error) {
	return r.create(ctx, req.Map())
}

func (r *ClientsRepository) Get(ctx context.Context, caller auth.Caller, id int64) (model.Client, error) {
	client, err := r.get(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	if err := r.authorize(caller, client); err != nil {
		return model.Client{}, err
	}
	return client, nil
}

func (r *ClientsRepository) List(ctx context.Context, filters *model.ClientFilters) ([]model.Client, error) {
	return r.list(ctx, filters.Map())
}

func (r *ClientsRepository) Update(ctx context.Context, caller auth.Caller, id int64, changes map[string]any) (model.Client, error) {
	client, err := r.get(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	if err := r.authorize(caller, client); err != nil {
		return model.Client{}, err
	}
	return r.update(ctx, id, changes)
}

func (r *ClientsRepository) Delete(ctx context.Context, caller auth.Caller, id int64) (model.Client, error) {
	client, err := r.get(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	if err := r.authorize(caller, client); err != nil {
		return model.Client{}, err
	}
	return r.delete(ctx, id)
}

// RenewMembership reactivates a client and pushes the expiration the given
// number of days out from now. Called by the payment consumer on PAID, so
// re-delivery of the same message recomputes rather than stacks.
func (r *ClientsRepository) RenewMembership(ctx context.Context, clientID int64, days int) (model.Client, error) {
	query := fmt.Sprintf(
		"UPDATE clients SET status = $1, expiration_date = now() + make_interval(days => $2) WHERE id = $3 RETURNING %s",
		r.fields.Projection(),
	)
	return fetchOne[model.Client](ctx, r.db, query, model.ClientActive, days, clientID)
}

// ExpireOverdue deactivates every ACTIVE client whose expiration date has
// passed and returns how many rows changed.
func (r *ClientsRepository) ExpireOverdue(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE clients SET status = $1 WHERE status = $2 AND expiration_date < now()",
		model.ClientInactive, model.ClientActive,
	)
	if err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *ClientsRepository) authorize(caller auth.Caller, client model.Client) error {
	if caller.IsStaff() || client.UserID == caller.ID {
		return nil
	}
	return errs.NewAccessDeniedError("You do not have access to this client")
}
