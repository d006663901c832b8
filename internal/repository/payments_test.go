package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitstack/trainings-api/internal/config"
	"github.com/fitstack/trainings-api/internal/lib/payment"
	"github.com/fitstack/trainings-api/internal/model"
)

func paymentRow(id int64, status model.PaymentStatus) *fakeRows {
	return &fakeRows{
		cols: []string{"id", "client_id", "membership_id", "payment_status", "timestamp"},
		vals: []any{id, int64(9), int64(2), status, time.Now().UTC()},
	}
}

func membershipRow(id int64, price float64) *fakeRows {
	return &fakeRows{
		cols: []string{"id", "access_level", "description", "price"},
		vals: []any{id, model.AccessStandard, nil, price},
	}
}

func testPaymentsRepository(t *testing.T, serviceStatus int, rows ...*fakeRows) (*PaymentsRepository, *fakeTx) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(serviceStatus)
		if serviceStatus == http.StatusCreated {
			w.Write([]byte(`{"id":77,"amount":49.9}`))
		}
	}))
	t.Cleanup(srv.Close)

	logger := zerolog.Nop()
	client := payment.NewClient(&config.Config{Payment: config.PaymentConfig{
		ServiceURL:            srv.URL,
		PageURL:               "https://pay.example.com/checkout",
		RequestTimeoutSeconds: 2,
	}}, &logger)

	db := &fakeDB{results: rows}
	tx := &fakeTx{db: db}

	return &PaymentsRepository{
		crud: crud[model.Payment]{
			db:     db,
			table:  "payments",
			fields: paymentFields,
		},
		pool:   &fakeBeginner{tx: tx},
		client: client,
	}, tx
}

func TestPaymentsCreateAccepted(t *testing.T) {
	repo, tx := testPaymentsRepository(t, http.StatusCreated,
		paymentRow(11, model.PaymentPending),
		membershipRow(2, 49.9),
		paymentRow(11, model.PaymentPending),
	)

	result, err := repo.Create(context.Background(), &model.CreatePayment{ClientID: 9, MembershipID: 2})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if result.Payment.PaymentStatus != model.PaymentPending {
		t.Errorf("status = %s, want PENDING", result.Payment.PaymentStatus)
	}
	if want := "https://pay.example.com/checkout?id=77&amount=49.9"; result.PaymentLink != want {
		t.Errorf("link = %q, want %q", result.PaymentLink, want)
	}
	if !tx.committed {
		t.Error("transaction was not committed")
	}
}

func TestPaymentsCreateRejectedReturnsFailedRow(t *testing.T) {
	repo, tx := testPaymentsRepository(t, http.StatusBadRequest,
		paymentRow(11, model.PaymentPending),
		membershipRow(2, 49.9),
		paymentRow(11, model.PaymentFailed),
	)

	result, err := repo.Create(context.Background(), &model.CreatePayment{ClientID: 9, MembershipID: 2})
	if err != nil {
		t.Fatalf("Create() error = %v, want the FAILED row instead of an error", err)
	}

	if result.Payment.ID != 11 {
		t.Errorf("payment.ID = %d, want the persisted row", result.Payment.ID)
	}
	if result.Payment.PaymentStatus != model.PaymentFailed {
		t.Errorf("status = %s, want FAILED", result.Payment.PaymentStatus)
	}
	if result.PaymentLink != "" {
		t.Errorf("link = %q, want empty for a failed order", result.PaymentLink)
	}
	if !tx.committed {
		t.Error("the FAILED row must still be committed")
	}

	// The settle statement must have carried the FAILED status.
	settle := tx.db.args[len(tx.db.args)-1]
	if settle[0] != model.PaymentFailed {
		t.Errorf("settle status arg = %v, want FAILED", settle[0])
	}
}
