package models

import "time"

// Check is one journaled parse attempt.
type Check struct {
	ID         string    `json:"id"`
	Line       string    `json:"line"`
	Source     string    `json:"source"`
	Accepted   bool      `json:"accepted"`
	RecordType string    `json:"record_type,omitempty"`
	ErrKind    string    `json:"err_kind,omitempty"`
	Diagnostic string    `json:"diagnostic,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CheckListResponse is returned by GET /checks.
type CheckListResponse struct {
	Checks []Check `json:"checks"`
	Count  int     `json:"count"`
}

// PurgeResponse is returned by DELETE /checks.
type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}
