package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/echofluxai/echoflux-api/internal/models"
)

type ContentRepository interface {
	Create(ctx context.Context, content *models.GeneratedContent) (int64, error)
	ListByUser(ctx context.Context, userID int64, taskType string, limit int) ([]*models.GeneratedContent, error)
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *models.GeneratedContent) (int64, error) {
	var id int64
	query := `
		INSERT INTO generated_content (user_id, task_type, served_model, payload, degraded)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, content.UserID, content.TaskType, content.ServedModel, content.Payload, content.Degraded).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *contentRepository) ListByUser(ctx context.Context, userID int64, taskType string, limit int) ([]*models.GeneratedContent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT id, user_id, task_type, served_model, payload, degraded, created_at
		FROM generated_content
		WHERE user_id = $1 AND ($2 = '' OR task_type = $2)
		ORDER BY created_at DESC
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, taskType, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var contents []*models.GeneratedContent
	for rows.Next() {
		var content models.GeneratedContent
		err := rows.Scan(&content.ID, &content.UserID, &content.TaskType, &content.ServedModel, &content.Payload, &content.Degraded, &content.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		contents = append(contents, &content)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return contents, nil
}
