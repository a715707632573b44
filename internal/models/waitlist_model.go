package models

import "time"

type WaitlistEntry struct {
	ID         int64     `db:"id" json:"id"`
	Email      string    `db:"email" json:"email"`
	Status     string    `db:"status" json:"status"` // pending, approved, rejected
	InviteCode string    `db:"invite_code" json:"invite_code"`
	GrantPlan  string    `db:"grant_plan" json:"grant_plan"`
	EmailError string    `db:"email_error" json:"email_error,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type InviteCode struct {
	ID        int64      `db:"id" json:"id"`
	Code      string     `db:"code" json:"code"`
	Plan      string     `db:"plan" json:"plan"`
	ExpiresAt time.Time  `db:"expires_at" json:"expires_at"`
	UsedBy    *int64     `db:"used_by" json:"used_by,omitempty"`
	UsedAt    *time.Time `db:"used_at" json:"used_at,omitempty"`
	Voided    bool       `db:"voided" json:"voided"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

const (
	WaitlistStatusPending  = "pending"
	WaitlistStatusApproved = "approved"
	WaitlistStatusRejected = "rejected"
)
