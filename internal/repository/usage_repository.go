package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/internal/transfer"
)

type UsageLogRepository interface {
	Create(ctx context.Context, rec *models.ModelUsageLog) error
	SummaryByUser(ctx context.Context, userID int64) ([]*transfer.UsageTierSummary, error)
}

type usageLogRepository struct {
	db *sql.DB
}

func NewUsageLogRepository(db *sql.DB) UsageLogRepository {
	return &usageLogRepository{db: db}
}

func (r *usageLogRepository) Create(ctx context.Context, rec *models.ModelUsageLog) error {
	query := `
		INSERT INTO model_usage_logs (user_id, task_type, model_name, cost_tier, success, estimated_cost)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, rec.UserID, rec.TaskType, rec.ModelName, rec.CostTier, rec.Success, rec.EstimatedCost)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *usageLogRepository) SummaryByUser(ctx context.Context, userID int64) ([]*transfer.UsageTierSummary, error) {
	query := `
		SELECT cost_tier,
			COUNT(*),
			COUNT(*) FILTER (WHERE NOT success),
			COALESCE(SUM(estimated_cost), 0)
		FROM model_usage_logs
		WHERE user_id = $1
		GROUP BY cost_tier
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var summaries []*transfer.UsageTierSummary
	for rows.Next() {
		var s transfer.UsageTierSummary
		if err := rows.Scan(&s.Tier, &s.Calls, &s.Failures, &s.EstimatedCost); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		summaries = append(summaries, &s)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return summaries, nil
}
