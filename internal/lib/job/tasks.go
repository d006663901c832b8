package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"github.com/fitstack/trainings-api/internal/model"
)

// Task type names stored in Redis. Asynq routes on these strings.
const (
	TaskWelcome          = "email:welcome"
	TaskPaymentStatus    = "payment:status"
	TaskMembershipExpire = "membership:expire"
	TaskUserReport       = "report:users"
)

// WelcomeEmailPayload is the JSON payload for the welcome email task.
type WelcomeEmailPayload struct {
	To       string `json:"to"`
	Username string `json:"username"`
}

// NewWelcomeEmailTask constructs the welcome email task, enqueued when a
// user registers.
func NewWelcomeEmailTask(to, username string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:       to,
		Username: username,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// PaymentStatusPayload is the payment-status update message consumed from
// the queue. The payment service publishes one per settled payment.
type PaymentStatusPayload struct {
	PaymentID int64               `json:"payment_id"`
	Status    model.PaymentStatus `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
}

// NewPaymentStatusTask constructs a payment-status task. Retries are
// generous because a missed PAID update strands a client without the
// membership they paid for; exhausted tasks land in the archive.
func NewPaymentStatusTask(paymentID int64, status model.PaymentStatus, timestamp time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(PaymentStatusPayload{
		PaymentID: paymentID,
		Status:    status,
		Timestamp: timestamp,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPaymentStatus,
		payload,
		asynq.MaxRetry(10),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}
