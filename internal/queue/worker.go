package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/hibiken/asynq"
)

func (q *Queue) HandleUsageRecordTask(ctx context.Context, task *asynq.Task) error {
	var payload UsageRecordPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// Undecodable payloads are dropped, not retried.
		slog.Info(err.Error())
		return nil
	}

	err := q.ul.Create(ctx, &models.ModelUsageLog{
		UserID:        payload.UserID,
		TaskType:      payload.TaskType,
		ModelName:     payload.ModelName,
		CostTier:      payload.CostTier,
		Success:       payload.Success,
		EstimatedCost: payload.EstimatedCost,
		CreatedAt:     payload.OccurredAt,
	})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
