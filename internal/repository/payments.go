package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitstack/trainings-api/internal/lib/payment"
	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/sqlerr"
)

// PaymentsRepository persists payments and drives the external payment
// workflow on create.
type PaymentsRepository struct {
	crud[model.Payment]
	pool   txBeginner
	client *payment.Client
}

func NewPaymentsRepository(pool *pgxpool.Pool, client *payment.Client) *PaymentsRepository {
	return &PaymentsRepository{
		crud: crud[model.Payment]{
			db:     pool,
			table:  "payments",
			fields: paymentFields,
		},
		pool:   pool,
		client: client,
	}
}

// Create runs the payment workflow in one transaction: insert the row as
// PENDING, read the membership's price and access level, register an order
// with the external payment service, then settle the row's status on the
// outcome. A rejected or unreachable service leaves a FAILED row rather
// than no row, and that row is what the caller gets back, so the attempt
// is always visible. The outbound call is bounded by the client's request
// timeout.
func (r *PaymentsRepository) Create(ctx context.Context, req *model.CreatePayment) (model.PaymentWithLink, error) {
	var zero model.PaymentWithLink

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return zero, sqlerr.HandleError(err)
	}
	defer tx.Rollback(ctx)

	keys, values, placeholders, err := r.fields.Decompose(req.Map())
	if err != nil {
		return zero, err
	}
	insert := fmt.Sprintf(
		"INSERT INTO payments (%s) VALUES (%s) RETURNING %s",
		strings.Join(keys, ", "), strings.Join(placeholders, ", "), r.fields.Projection(),
	)
	created, err := fetchOne[model.Payment](ctx, tx, insert, values...)
	if err != nil {
		return zero, err
	}

	var membership model.Membership
	membership, err = fetchOne[model.Membership](ctx, tx,
		fmt.Sprintf("SELECT %s FROM memberships WHERE id = $1", membershipFields.Projection()),
		req.MembershipID,
	)
	if err != nil {
		return zero, err
	}

	status, link := r.client.CreateOrder(ctx, payment.Order{
		ClientID:      req.ClientID,
		Amount:        membership.Price,
		SubscribeType: string(membership.AccessLevel),
	})

	updateStatus := fmt.Sprintf(
		"UPDATE payments SET payment_status = $1 WHERE id = $2 RETURNING %s",
		r.fields.Projection(),
	)
	settled, err := fetchOne[model.Payment](ctx, tx, updateStatus, status, created.ID)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, sqlerr.HandleError(err)
	}

	return model.PaymentWithLink{
		Payment:     settled,
		PaymentLink: link,
	}, nil
}

func (r *PaymentsRepository) Get(ctx context.Context, id int64) (model.Payment, error) {
	return r.get(ctx, id)
}

func (r *PaymentsRepository) List(ctx context.Context, filters *model.PaymentFilters) ([]model.Payment, error) {
	return r.list(ctx, filters.Map())
}

func (r *PaymentsRepository) Update(ctx context.Context, id int64, changes map[string]any) (model.Payment, error) {
	return r.update(ctx, id, changes)
}

func (r *PaymentsRepository) Delete(ctx context.Context, id int64) (model.Payment, error) {
	return r.delete(ctx, id)
}

// UpdateStatus sets a payment's status. Used by the queue consumer;
// repeating the same update is harmless.
func (r *PaymentsRepository) UpdateStatus(ctx context.Context, id int64, status model.PaymentStatus) (model.Payment, error) {
	query := fmt.Sprintf(
		"UPDATE payments SET payment_status = $1 WHERE id = $2 RETURNING %s",
		r.fields.Projection(),
	)
	return fetchOne[model.Payment](ctx, r.db, query, status, id)
}
