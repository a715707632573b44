package models

import (
	"encoding/json"
	"time"
)

type GeneratedContent struct {
	ID          int64           `db:"id" json:"id"`
	UserID      int64           `db:"user_id" json:"user_id"`
	TaskType    string          `db:"task_type" json:"task_type"`
	ServedModel string          `db:"served_model" json:"served_model"`
	Payload     json.RawMessage `db:"payload" json:"payload"`
	Degraded    bool            `db:"degraded" json:"degraded"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
