package model

import "time"

// Payment is a payment row. It is created through the external payment
// service workflow and its status is updated asynchronously by the queue
// consumer.
type Payment struct {
	ID            int64         `db:"id" json:"id"`
	ClientID      int64         `db:"client_id" json:"client_id"`
	MembershipID  int64         `db:"membership_id" json:"membership_id"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"payment_status"`
	Timestamp     time.Time     `db:"timestamp" json:"timestamp"`
}

func (p Payment) CheckRecord() error {
	if !p.PaymentStatus.Valid() {
		return fieldErr("payment_status", string(p.PaymentStatus))
	}
	return nil
}

// PaymentWithLink is the payment-creation result: the stored row plus the
// payment-page URL the client is redirected to.
type PaymentWithLink struct {
	Payment     Payment `json:"payment_data"`
	PaymentLink string  `json:"payment_link"`
}

// CreatePayment is the payment creation payload. The amount is not supplied
// by the caller; it is read from the referenced membership inside the
// creation transaction.
type CreatePayment struct {
	ClientID     int64 `json:"client_id" validate:"required,gt=0"`
	MembershipID int64 `json:"membership_id" validate:"required,gt=0"`
}

func (r *CreatePayment) Validate() error { return validate.Struct(r) }

func (r *CreatePayment) Map() map[string]any {
	return map[string]any{
		"client_id":      r.ClientID,
		"membership_id":  r.MembershipID,
		"payment_status": PaymentPending,
	}
}

// PatchPayment is the partial-update payload for a payment.
type PatchPayment struct {
	PaymentStatus *PaymentStatus `json:"payment_status" validate:"omitempty,oneof=PENDING PAID FAILED CANCELLED REFUNDED EXPIRED"`
}

func (r *PatchPayment) Validate() error { return validate.Struct(r) }

func (r *PatchPayment) Map() map[string]any {
	m := map[string]any{}
	if r.PaymentStatus != nil {
		m["payment_status"] = *r.PaymentStatus
	}
	return m
}

// PaymentFilters narrows a payment listing.
type PaymentFilters struct {
	ClientID      *int64         `query:"client_id" validate:"omitempty,gt=0"`
	MembershipID  *int64         `query:"membership_id" validate:"omitempty,gt=0"`
	PaymentStatus *PaymentStatus `query:"payment_status" validate:"omitempty,oneof=PENDING PAID FAILED CANCELLED REFUNDED EXPIRED"`
}

func (r *PaymentFilters) Validate() error { return validate.Struct(r) }

func (r *PaymentFilters) Map() map[string]any {
	m := map[string]any{}
	if r.ClientID != nil {
		m["client_id"] = *r.ClientID
	}
	if r.MembershipID != nil {
		m["membership_id"] = *r.MembershipID
	}
	if r.PaymentStatus != nil {
		m["payment_status"] = *r.PaymentStatus
	}
	return m
}
