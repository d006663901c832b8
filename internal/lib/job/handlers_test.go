package job

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/fitstack/trainings-api/internal/model"
)

type fakePaymentStore struct {
	updates []model.PaymentStatus
	payment model.Payment
	err     error
}

func (f *fakePaymentStore) UpdateStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) (model.Payment, error) {
	f.updates = append(f.updates, status)
	if f.err != nil {
		return model.Payment{}, f.err
	}
	p := f.payment
	p.ID = paymentID
	p.PaymentStatus = status
	return p, nil
}

type fakeClientStore struct {
	renewed      []int64
	renewalDays  []int
	expiredCount int64
}

func (f *fakeClientStore) RenewMembership(ctx context.Context, clientID int64, days int) (model.Client, error) {
	f.renewed = append(f.renewed, clientID)
	f.renewalDays = append(f.renewalDays, days)
	exp := time.Now().AddDate(0, 0, days)
	return model.Client{ID: clientID, Status: model.ClientActive, ExpirationDate: &exp}, nil
}

func (f *fakeClientStore) ExpireOverdue(ctx context.Context) (int64, error) {
	return f.expiredCount, nil
}

type fakeUserStore struct {
	users []model.User
}

func (f *fakeUserStore) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]model.User, error) {
	return f.users, nil
}

type fakeReportStore struct {
	created *model.CreateReport
}

func (f *fakeReportStore) Create(ctx context.Context, req *model.CreateReport) (model.Report, error) {
	f.created = req
	return model.Report{ID: 1, ReportDateStart: req.ReportDateStart, ReportDateEnd: req.ReportDateEnd}, nil
}

func testJobService(payments PaymentStore, clients ClientStore, users UserStore, reports ReportStore) *JobService {
	logger := zerolog.Nop()
	return &JobService{
		logger: &logger,
		handlers: &Handlers{
			payments: payments,
			clients:  clients,
			users:    users,
			reports:  reports,
		},
	}
}

func paymentTask(t *testing.T, id int64, status model.PaymentStatus) *asynq.Task {
	t.Helper()
	task, err := NewPaymentStatusTask(id, status, time.Now())
	if err != nil {
		t.Fatalf("NewPaymentStatusTask() error = %v", err)
	}
	return task
}

func TestPaymentStatusPaidRenewsMembership(t *testing.T) {
	payments := &fakePaymentStore{payment: model.Payment{ClientID: 9}}
	clients := &fakeClientStore{}
	j := testJobService(payments, clients, nil, nil)

	err := j.handlePaymentStatusTask(context.Background(), paymentTask(t, 3, model.PaymentPaid))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if len(payments.updates) != 1 || payments.updates[0] != model.PaymentPaid {
		t.Errorf("updates = %v, want one PAID", payments.updates)
	}
	if len(clients.renewed) != 1 || clients.renewed[0] != 9 {
		t.Errorf("renewed = %v, want client 9", clients.renewed)
	}
	if clients.renewalDays[0] != membershipRenewalDays {
		t.Errorf("renewal days = %d, want %d", clients.renewalDays[0], membershipRenewalDays)
	}
}

func TestPaymentStatusFailedDoesNotRenew(t *testing.T) {
	payments := &fakePaymentStore{}
	clients := &fakeClientStore{}
	j := testJobService(payments, clients, nil, nil)

	err := j.handlePaymentStatusTask(context.Background(), paymentTask(t, 3, model.PaymentFailed))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if len(payments.updates) != 1 {
		t.Errorf("updates = %v, want exactly one", payments.updates)
	}
	if len(clients.renewed) != 0 {
		t.Errorf("renewed = %v, want none", clients.renewed)
	}
}

func TestPaymentStatusUnknownStatusDropped(t *testing.T) {
	payments := &fakePaymentStore{}
	clients := &fakeClientStore{}
	j := testJobService(payments, clients, nil, nil)

	payload, _ := json.Marshal(PaymentStatusPayload{PaymentID: 3, Status: "BOGUS"})
	task := asynq.NewTask(TaskPaymentStatus, payload)

	// Unknown statuses never become valid; the handler must ack instead of
	// retrying forever.
	if err := j.handlePaymentStatusTask(context.Background(), task); err != nil {
		t.Fatalf("handler error = %v, want nil (acked)", err)
	}
	if len(payments.updates) != 0 {
		t.Errorf("updates = %v, want none", payments.updates)
	}
}

func TestPaymentStatusStoreErrorPropagates(t *testing.T) {
	payments := &fakePaymentStore{err: context.DeadlineExceeded}
	j := testJobService(payments, &fakeClientStore{}, nil, nil)

	// Store failures must surface so asynq retries the delivery.
	if err := j.handlePaymentStatusTask(context.Background(), paymentTask(t, 3, model.PaymentPaid)); err == nil {
		t.Fatal("handler error = nil, want store error for retry")
	}
}

func TestMembershipExpireTask(t *testing.T) {
	clients := &fakeClientStore{expiredCount: 4}
	j := testJobService(nil, clients, nil, nil)

	task := asynq.NewTask(TaskMembershipExpire, nil)
	if err := j.handleMembershipExpireTask(context.Background(), task); err != nil {
		t.Fatalf("handler error = %v", err)
	}
}

func TestUserReportTask(t *testing.T) {
	users := &fakeUserStore{users: []model.User{
		{ID: 1, Username: "a"},
		{ID: 2, Username: "b"},
	}}
	reports := &fakeReportStore{}
	j := testJobService(nil, nil, users, reports)

	task := asynq.NewTask(TaskUserReport, nil)
	if err := j.handleUserReportTask(context.Background(), task); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if reports.created == nil {
		t.Fatal("no report persisted")
	}

	window := reports.created.ReportDateEnd.Sub(reports.created.ReportDateStart)
	if want := time.Duration(reportWindowDays) * 24 * time.Hour; window != want {
		t.Errorf("report window = %v, want %v", window, want)
	}

	var snapshot struct {
		Data []model.User `json:"data"`
	}
	if err := json.Unmarshal(reports.created.NewUsers, &snapshot); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if len(snapshot.Data) != 2 {
		t.Errorf("snapshot users = %d, want 2", len(snapshot.Data))
	}
}

func TestTaskTypes(t *testing.T) {
	welcome, err := NewWelcomeEmailTask("a@example.com", "a")
	if err != nil {
		t.Fatalf("NewWelcomeEmailTask() error = %v", err)
	}
	if welcome.Type() != TaskWelcome {
		t.Errorf("welcome task type = %q, want %q", welcome.Type(), TaskWelcome)
	}

	payment := paymentTask(t, 1, model.PaymentPaid)
	if payment.Type() != TaskPaymentStatus {
		t.Errorf("payment task type = %q, want %q", payment.Type(), TaskPaymentStatus)
	}

	var p PaymentStatusPayload
	if err := json.Unmarshal(payment.Payload(), &p); err != nil {
		t.Fatalf("payload unmarshal error = %v", err)
	}
	if p.PaymentID != 1 || p.Status != model.PaymentPaid {
		t.Errorf("payload = %+v", p)
	}
}
