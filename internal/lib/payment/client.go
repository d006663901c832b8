// Package payment provides a client for the external payment service.
//
// Payment creation POSTs an order to the service and builds the payment-page
// link the end user is redirected to. Calls are bounded by a request timeout
// so a slow payment service cannot hold a database transaction open.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fitstack/trainings-api/internal/config"
	"github.com/fitstack/trainings-api/internal/model"
)

// Order is the request body sent to the payment service.
type Order struct {
	ClientID      int64   `json:"client_id"`
	Amount        float64 `json:"amount"`
	SubscribeType string  `json:"subscribe_type"`
}

// OrderResult is the payment service's response to a created order.
type OrderResult struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
}

// Client talks to the external payment service.
type Client struct {
	httpClient *http.Client
	serviceURL string
	pageURL    string
	logger     *zerolog.Logger
}

// NewClient builds a payment client from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Payment.RequestTimeoutSeconds) * time.Second,
		},
		serviceURL: cfg.Payment.ServiceURL,
		pageURL:    cfg.Payment.PageURL,
		logger:     logger,
	}
}

// CreateOrder registers an order with the payment service.
//
// The returned status is PENDING when the service accepted the order (201)
// and FAILED otherwise; in the FAILED case the link is empty and the cause
// is logged here. Callers persist the status either way; a rejected or
// unreachable service still yields a FAILED payment row, never an error.
func (c *Client) CreateOrder(ctx context.Context, order Order) (status model.PaymentStatus, link string) {
	body, err := json.Marshal(order)
	if err != nil {
		c.failed(order, errors.Wrap(err, "encoding payment order"))
		return model.PaymentFailed, ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serviceURL, bytes.NewReader(body))
	if err != nil {
		c.failed(order, errors.Wrap(err, "building payment request"))
		return model.PaymentFailed, ""
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.failed(order, errors.Wrap(err, "calling payment service"))
		return model.PaymentFailed, ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		c.failed(order, errors.Errorf("payment service returned status %d", resp.StatusCode))
		return model.PaymentFailed, ""
	}

	var result OrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.failed(order, errors.Wrap(err, "decoding payment service response"))
		return model.PaymentFailed, ""
	}

	return model.PaymentPending, c.PageLink(result)
}

func (c *Client) failed(order Order, err error) {
	c.logger.Warn().
		Int64("client_id", order.ClientID).
		Err(err).
		Msg("payment order failed")
}

// PageLink builds the payment-page URL for a created order.
func (c *Client) PageLink(result OrderResult) string {
	return fmt.Sprintf("%s?id=%d&amount=%g", c.pageURL, result.ID, result.Amount)
}
