package models

import "time"

// ModelUsageLog records one generation call for later cost aggregation.
// Writes are fire-and-forget from the request path.
type ModelUsageLog struct {
	ID            int64     `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	TaskType      string    `db:"task_type" json:"task_type"`
	ModelName     string    `db:"model_name" json:"model_name"`
	CostTier      string    `db:"cost_tier" json:"cost_tier"`
	Success       bool      `db:"success" json:"success"`
	EstimatedCost float64   `db:"estimated_cost" json:"estimated_cost"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
