package queue

import (
	"time"

	"github.com/echofluxai/echoflux-api/internal/repository"
)

type Queue struct {
	ul repository.UsageLogRepository
}

func NewQueue(ul repository.UsageLogRepository) *Queue {
	return &Queue{
		ul: ul,
	}
}

const TaskTypeUsageRecord = "usage:record"

type UsageRecordPayload struct {
	UserID        int64     `json:"user_id"`
	TaskType      string    `json:"task_type"`
	ModelName     string    `json:"model_name"`
	CostTier      string    `json:"cost_tier"`
	Success       bool      `json:"success"`
	EstimatedCost float64   `json:"estimated_cost"`
	OccurredAt    time.Time `json:"occurred_at"`
}
