package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/hibiken/asynq"
)

// UsageRecorder satisfies the model router's recorder interface by pushing
// records onto the task queue. Enqueue is the only work done on the request
// path; the database write happens in the worker.
type UsageRecorder struct {
	client *asynq.Client
}

func NewUsageRecorder(client *asynq.Client) *UsageRecorder {
	return &UsageRecorder{client: client}
}

func (r *UsageRecorder) Record(ctx context.Context, rec *models.ModelUsageLog) error {
	payload, err := json.Marshal(UsageRecordPayload{
		UserID:        rec.UserID,
		TaskType:      rec.TaskType,
		ModelName:     rec.ModelName,
		CostTier:      rec.CostTier,
		Success:       rec.Success,
		EstimatedCost: rec.EstimatedCost,
		OccurredAt:    time.Now(),
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeUsageRecord, payload)

	_, err = r.client.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second))
	if err != nil {
		return err
	}
	return nil
}
