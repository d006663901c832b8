package model

// Membership is a purchasable membership tier, referenced by clients and
// payments.
type Membership struct {
	ID          int64       `db:"id" json:"id"`
	AccessLevel AccessLevel `db:"access_level" json:"access_level"`
	Description *string     `db:"description" json:"description"`
	Price       float64     `db:"price" json:"price"`
}

func (m Membership) CheckRecord() error {
	if !m.AccessLevel.Valid() {
		return fieldErr("access_level", string(m.AccessLevel))
	}
	return nil
}

// CreateMembership is the membership creation payload.
type CreateMembership struct {
	AccessLevel AccessLevel `json:"access_level" validate:"omitempty,oneof=LIMIT STANDARD PREMIUM VIP FAMILY TRIAL DAY_PASS WEEK_PASS GUEST CORPORATE DISCOUNT OTHER"`
	Description *string     `json:"description"`
	Price       float64     `json:"price" validate:"gte=0"`
}

func (r *CreateMembership) Validate() error { return validate.Struct(r) }

func (r *CreateMembership) Map() map[string]any {
	level := r.AccessLevel
	if level == "" {
		level = AccessStandard
	}
	m := map[string]any{
		"access_level": level,
		"price":        r.Price,
	}
	if r.Description != nil {
		m["description"] = *r.Description
	}
	return m
}

// PatchMembership is the partial-update payload for a membership.
type PatchMembership struct {
	AccessLevel *AccessLevel `json:"access_level" validate:"omitempty,oneof=LIMIT STANDARD PREMIUM VIP FAMILY TRIAL DAY_PASS WEEK_PASS GUEST CORPORATE DISCOUNT OTHER"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price" validate:"omitempty,gte=0"`
}

func (r *PatchMembership) Validate() error { return validate.Struct(r) }

func (r *PatchMembership) Map() map[string]any {
	m := map[string]any{}
	if r.AccessLevel != nil {
		m["access_level"] = *r.AccessLevel
	}
	if r.Description != nil {
		m["description"] = *r.Description
	}
	if r.Price != nil {
		m["price"] = *r.Price
	}
	return m
}

// MembershipFilters narrows a membership listing.
type MembershipFilters struct {
	AccessLevel *AccessLevel `query:"access_level" validate:"omitempty,oneof=LIMIT STANDARD PREMIUM VIP FAMILY TRIAL DAY_PASS WEEK_PASS GUEST CORPORATE DISCOUNT OTHER"`
	Price       *float64     `query:"price" validate:"omitempty,gte=0"`
}

func (r *MembershipFilters) Validate() error { return validate.Struct(r) }

func (r *MembershipFilters) Map() map[string]any {
	m := map[string]any{}
	if r.AccessLevel != nil {
		m["access_level"] = *r.AccessLevel
	}
	if r.Price != nil {
		m["price"] = *r.Price
	}
	return m
}
