package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fitstack/trainings-api/internal/config"
	"github.com/fitstack/trainings-api/internal/lib/email"
	"github.com/fitstack/trainings-api/internal/model"
)

// ErrHandlersNotInitialized is returned by Start when InitHandlers was not
// called first.
var ErrHandlersNotInitialized = errors.New("job handlers not initialized")

// membershipRenewalDays is how many days a PAID payment extends a client's
// membership by.
const membershipRenewalDays = 30

// reportWindowDays is the lookback window of the scheduled user report.
const reportWindowDays = 3

// PaymentStore is the slice of the payments repository the consumer needs.
type PaymentStore interface {
	UpdateStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) (model.Payment, error)
}

// ClientStore covers membership renewal and bulk expiry.
type ClientStore interface {
	RenewMembership(ctx context.Context, clientID int64, days int) (model.Client, error)
	ExpireOverdue(ctx context.Context) (int64, error)
}

// UserStore supplies registrations for the scheduled report.
type UserStore interface {
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]model.User, error)
}

// ReportStore persists generated reports.
type ReportStore interface {
	Create(ctx context.Context, req *model.CreateReport) (model.Report, error)
}

// Handlers bundles the dependencies job handlers execute against.
type Handlers struct {
	email    *email.Client
	payments PaymentStore
	clients  ClientStore
	users    UserStore
	reports  ReportStore
}

// InitHandlers wires handler dependencies. The worker command calls this
// with concrete repositories before Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger, payments PaymentStore, clients ClientStore, users UserStore, reports ReportStore) {
	j.handlers = &Handlers{
		email:    email.NewClient(cfg, logger),
		payments: payments,
		clients:  clients,
		users:    users,
		reports:  reports,
	}
}

// handleWelcomeEmailTask sends the registration welcome email.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := j.handlers.email.SendWelcomeEmail(p.To, p.Username); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	return nil
}

// handlePaymentStatusTask applies a payment-status update from the payment
// service. A PAID status additionally renews the client's membership.
//
// The handler is idempotent: re-applying the same status is a no-op update,
// and renewal recomputes the expiration from the current time rather than
// stacking. Errors propagate so asynq retries; an exhausted task is
// archived for inspection.
func (j *JobService) handlePaymentStatusTask(ctx context.Context, t *asynq.Task) error {
	var p PaymentStatusPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal payment status payload: %w", err)
	}

	if !p.Status.Valid() {
		// A malformed message never becomes valid; do not retry it.
		j.logger.Error().
			Int64("payment_id", p.PaymentID).
			Str("status", string(p.Status)).
			Msg("Dropping payment status task with unknown status")
		return nil
	}

	j.logger.Info().
		Int64("payment_id", p.PaymentID).
		Str("status", string(p.Status)).
		Msg("Processing payment status task")

	payment, err := j.handlers.payments.UpdateStatus(ctx, p.PaymentID, p.Status)
	if err != nil {
		return errors.Wrapf(err, "updating payment %d", p.PaymentID)
	}

	if p.Status != model.PaymentPaid {
		return nil
	}

	client, err := j.handlers.clients.RenewMembership(ctx, payment.ClientID, membershipRenewalDays)
	if err != nil {
		return errors.Wrapf(err, "renewing membership for client %d", payment.ClientID)
	}

	j.logger.Info().
		Int64("payment_id", payment.ID).
		Int64("client_id", client.ID).
		Time("expiration_date", derefTime(client.ExpirationDate)).
		Msg("Renewed client membership")

	return nil
}

// handleMembershipExpireTask deactivates clients whose membership has
// lapsed. Scheduled daily.
func (j *JobService) handleMembershipExpireTask(ctx context.Context, t *asynq.Task) error {
	count, err := j.handlers.clients.ExpireOverdue(ctx)
	if err != nil {
		return errors.Wrap(err, "expiring overdue memberships")
	}

	j.logger.Info().
		Int64("count", count).
		Msg("Deactivated clients with expired memberships")

	return nil
}

// handleUserReportTask snapshots users registered in the lookback window
// into a report row.
func (j *JobService) handleUserReportTask(ctx context.Context, t *asynq.Task) error {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -reportWindowDays)

	users, err := j.handlers.users.ListCreatedBetween(ctx, from, to)
	if err != nil {
		return errors.Wrap(err, "listing users for report")
	}

	snapshot, err := json.Marshal(map[string]any{"data": users})
	if err != nil {
		return errors.Wrap(err, "encoding report snapshot")
	}

	report, err := j.handlers.reports.Create(ctx, &model.CreateReport{
		ReportDateStart: from,
		ReportDateEnd:   to,
		NewUsers:        snapshot,
	})
	if err != nil {
		return errors.Wrap(err, "persisting report")
	}

	j.logger.Info().
		Int64("report_id", report.ID).
		Int("new_users", len(users)).
		Msg("Generated user report")

	return nil
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
