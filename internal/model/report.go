package model

import (
	"encoding/json"
	"time"
)

// Report is a persisted snapshot of users registered within a window,
// produced by the scheduled report worker.
type Report struct {
	ID              int64           `db:"id" json:"id"`
	ReportDateStart time.Time       `db:"report_date_start" json:"report_date_start"`
	ReportDateEnd   time.Time       `db:"report_date_end" json:"report_date_end"`
	NewUsers        json.RawMessage `db:"new_users" json:"new_users"`
}

func (Report) CheckRecord() error { return nil }

// CreateReport is the report persistence payload.
type CreateReport struct {
	ReportDateStart time.Time       `json:"report_date_start" validate:"required"`
	ReportDateEnd   time.Time       `json:"report_date_end" validate:"required"`
	NewUsers        json.RawMessage `json:"new_users" validate:"required"`
}

func (r *CreateReport) Validate() error { return validate.Struct(r) }

func (r *CreateReport) Map() map[string]any {
	return map[string]any{
		"report_date_start": r.ReportDateStart,
		"report_date_end":   r.ReportDateEnd,
		"new_users":         r.NewUsers,
	}
}
