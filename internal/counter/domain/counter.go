package domain

import "time"

type CounterType string

const (
	TypePersonal CounterType = "PERSONAL"
	TypeShared   CounterType = "SHARED"
)

type ShareStatus string

const (
	SharePending  ShareStatus = "PENDING"
	ShareAccepted ShareStatus = "ACCEPTED"
	ShareRejected ShareStatus = "REJECTED"
)

// Counter ids are client-generatable so offline-created counters sync
// idempotently. SHARED counters always carry a globally unique invite code.
type Counter struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Count      int         `json:"count"`
	Color      string      `json:"color,omitempty"`
	Type       CounterType `json:"type"`
	InviteCode string      `json:"inviteCode,omitempty"`
	UserID     string      `json:"userId"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// CounterShare relates one user to one shared counter; at most one record
// exists per (counter, user).
type CounterShare struct {
	ID        string      `json:"id"`
	CounterID string      `json:"counterId"`
	UserID    string      `json:"userId"`
	Status    ShareStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// OwnerSummary is the slice of the owning user attached to list results.
type OwnerSummary struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CounterWithShares is a counter plus its share records and owner summary,
// the shape the list and join flows return.
type CounterWithShares struct {
	Counter
	Owner  OwnerSummary   `json:"owner"`
	Shares []CounterShare `json:"shares"`
}

// UpdatePatch is a partial counter update; nil fields are left untouched.
type UpdatePatch struct {
	Title *string
	Count *int
	Color *string
	Type  *CounterType
}
