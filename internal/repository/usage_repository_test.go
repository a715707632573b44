package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageLogCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := &models.ModelUsageLog{
		UserID:        7,
		TaskType:      "caption",
		ModelName:     "gpt-4o-mini",
		CostTier:      "low",
		Success:       true,
		EstimatedCost: 0.0005,
	}

	mock.ExpectExec("INSERT INTO model_usage_logs").
		WithArgs(rec.UserID, rec.TaskType, rec.ModelName, rec.CostTier, rec.Success, rec.EstimatedCost).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := NewUsageLogRepository(db)
	require.NoError(t, r.Create(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageSummaryByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"cost_tier", "count", "failures", "sum"}).
		AddRow("low", int64(40), int64(2), 0.02).
		AddRow("high", int64(5), int64(0), 0.05)

	mock.ExpectQuery("FROM model_usage_logs").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	r := NewUsageLogRepository(db)
	summaries, err := r.SummaryByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "low", summaries[0].Tier)
	assert.Equal(t, int64(2), summaries[0].Failures)
	assert.Equal(t, 0.05, summaries[1].EstimatedCost)
}

func TestUsageSummaryQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM model_usage_logs").
		WithArgs(int64(7)).
		WillReturnError(errors.New("connection reset"))

	r := NewUsageLogRepository(db)
	_, err = r.SummaryByUser(context.Background(), 7)
	assert.Error(t, err)
}
