package model

import "time"

// Client is a gym client profile. Each client belongs to exactly one user;
// status transitions ACTIVE→INACTIVE are driven by the membership-expiry job
// comparing ExpirationDate to current time.
type Client struct {
	ID             int64        `db:"id" json:"id"`
	UserID         int64        `db:"user_id" json:"user_id"`
	MembershipID   int64        `db:"membership_id" json:"membership_id"`
	FirstName      string       `db:"first_name" json:"first_name"`
	LastName       string       `db:"last_name" json:"last_name"`
	PhoneNumber    string       `db:"phone_number" json:"phone_number"`
	Gender         Gender       `db:"gender" json:"gender"`
	DateOfBirth    time.Time    `db:"date_of_birth" json:"date_of_birth"`
	WeightKg       *float64     `db:"weight_kg" json:"weight_kg"`
	HeightCm       *float64     `db:"height_cm" json:"height_cm"`
	Status         ClientStatus `db:"status" json:"status"`
	ExpirationDate *time.Time   `db:"expiration_date" json:"expiration_date"`
}

func (c Client) CheckRecord() error {
	if !c.Gender.Valid() {
		return fieldErr("gender", string(c.Gender))
	}
	if !c.Status.Valid() {
		return fieldErr("status", string(c.Status))
	}
	return nil
}

// CreateClient is the client-profile creation payload.
type CreateClient struct {
	UserID       int64        `json:"user_id" validate:"required,gt=0"`
	MembershipID int64        `json:"membership_id" validate:"required,gt=0"`
	FirstName    string       `json:"first_name" validate:"required,min=2,max=50"`
	LastName     string       `json:"last_name" validate:"required,min=2,max=80"`
	PhoneNumber  string       `json:"phone_number" validate:"required,min=5,max=20"`
	Gender       Gender       `json:"gender" validate:"required,oneof=MALE FEMALE"`
	DateOfBirth  time.Time    `json:"date_of_birth" validate:"required"`
	WeightKg     *float64     `json:"weight_kg" validate:"omitempty,gt=0,lte=500"`
	HeightCm     *float64     `json:"height_cm" validate:"omitempty,gt=0,lte=500"`
	Status       ClientStatus `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE ON_HOLD CANCELLED EXPIRED UPCOMING"`
}

func (r *CreateClient) Validate() error { return validate.Struct(r) }

func (r *CreateClient) Map() map[string]any {
	status := r.Status
	if status == "" {
		status = ClientActive
	}
	m := map[string]any{
		"user_id":       r.UserID,
		"membership_id": r.MembershipID,
		"first_name":    r.FirstName,
		"last_name":     r.LastName,
		"phone_number":  r.PhoneNumber,
		"gender":        r.Gender,
		"date_of_birth": r.DateOfBirth,
		"status":        status,
	}
	if r.WeightKg != nil {
		m["weight_kg"] = *r.WeightKg
	}
	if r.HeightCm != nil {
		m["height_cm"] = *r.HeightCm
	}
	return m
}

// PatchClient is the partial-update payload for a client profile.
type PatchClient struct {
	MembershipID   *int64        `json:"membership_id" validate:"omitempty,gt=0"`
	FirstName      *string       `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName       *string       `json:"last_name" validate:"omitempty,min=2,max=80"`
	PhoneNumber    *string       `json:"phone_number" validate:"omitempty,min=5,max=20"`
	WeightKg       *float64      `json:"weight_kg" validate:"omitempty,gt=0,lte=500"`
	HeightCm       *float64      `json:"height_cm" validate:"omitempty,gt=0,lte=500"`
	Status         *ClientStatus `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE ON_HOLD CANCELLED EXPIRED UPCOMING"`
	ExpirationDate *time.Time    `json:"expiration_date"`
}

func (r *PatchClient) Validate() error { return validate.Struct(r) }

func (r *PatchClient) Map() map[string]any {
	m := map[string]any{}
	if r.MembershipID != nil {
		m["membership_id"] = *r.MembershipID
	}
	if r.FirstName != nil {
		m["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		m["last_name"] = *r.LastName
	}
	if r.PhoneNumber != nil {
		m["phone_number"] = *r.PhoneNumber
	}
	if r.WeightKg != nil {
		m["weight_kg"] = *r.WeightKg
	}
	if r.HeightCm != nil {
		m["height_cm"] = *r.HeightCm
	}
	if r.Status != nil {
		m["status"] = *r.Status
	}
	if r.ExpirationDate != nil {
		m["expiration_date"] = *r.ExpirationDate
	}
	return m
}

// ClientFilters narrows a client listing.
type ClientFilters struct {
	UserID       *int64        `query:"user_id" validate:"omitempty,gt=0"`
	MembershipID *int64        `query:"membership_id" validate:"omitempty,gt=0"`
	LastName     *string       `query:"last_name" validate:"omitempty,min=2,max=80"`
	Gender       *Gender       `query:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	Status       *ClientStatus `query:"status" validate:"omitempty,oneof=ACTIVE INACTIVE ON_HOLD CANCELLED EXPIRED UPCOMING"`
}

func (r *ClientFilters) Validate() error { return validate.Struct(r) }

func (r *ClientFilters) Map() map[string]any {
	m := map[string]any{}
	if r.UserID != nil {
		m["user_id"] = *r.UserID
	}
	if r.MembershipID != nil {
		m["membership_id"] = *r.MembershipID
	}
	if r.LastName != nil {
		m["last_name"] = *r.LastName
	}
	if r.Gender != nil {
		m["gender"] = *r.Gender
	}
	if r.Status != nil {
		m["status"] = *r.Status
	}
	return m
}
