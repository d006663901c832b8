package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitstack/trainings-api/internal/model"
)

func testClient(serviceURL string) *Client {
	logger := zerolog.Nop()
	return &Client{
		httpClient: &http.Client{Timeout: 2 * time.Second},
		serviceURL: serviceURL,
		pageURL:    "https://pay.example.com/checkout",
		logger:     &logger,
	}
}

func TestCreateOrderAccepted(t *testing.T) {
	var received Order
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decoding order: %v", err)
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(OrderResult{ID: 77, Amount: received.Amount})
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	status, link := client.CreateOrder(context.Background(), Order{
		ClientID:      5,
		Amount:        49.9,
		SubscribeType: "PREMIUM",
	})

	if status != model.PaymentPending {
		t.Errorf("status = %s, want PENDING", status)
	}
	if want := "https://pay.example.com/checkout?id=77&amount=49.9"; link != want {
		t.Errorf("link = %q, want %q", link, want)
	}
	if received.ClientID != 5 || received.SubscribeType != "PREMIUM" {
		t.Errorf("service received %+v", received)
	}
}

func TestCreateOrderRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	status, link := client.CreateOrder(context.Background(), Order{ClientID: 5, Amount: 10})
	if status != model.PaymentFailed {
		t.Errorf("status = %s, want FAILED", status)
	}
	if link != "" {
		t.Errorf("link = %q, want empty", link)
	}
}

func TestCreateOrderServiceUnreachable(t *testing.T) {
	// Closed server: the request cannot connect.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := testClient(srv.URL)

	status, link := client.CreateOrder(context.Background(), Order{ClientID: 1, Amount: 1})
	if status != model.PaymentFailed {
		t.Errorf("status = %s, want FAILED", status)
	}
	if link != "" {
		t.Errorf("link = %q, want empty", link)
	}
}

func TestPageLink(t *testing.T) {
	client := testClient("http://unused")

	tests := []struct {
		result OrderResult
		want   string
	}{
		{OrderResult{ID: 1, Amount: 25}, "https://pay.example.com/checkout?id=1&amount=25"},
		{OrderResult{ID: 300, Amount: 19.99}, "https://pay.example.com/checkout?id=300&amount=19.99"},
	}

	for _, tt := range tests {
		if got := client.PageLink(tt.result); got != tt.want {
			t.Errorf("PageLink(%+v) = %q, want %q", tt.result, got, tt.want)
		}
	}
}
