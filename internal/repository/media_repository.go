package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/echofluxai/echoflux-api/internal/models"
)

type MediaItemRepository interface {
	Create(ctx context.Context, item *models.MediaItem) error
	GetByID(ctx context.Context, id string, userID int64) (*models.MediaItem, bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.MediaItem, error)
	ListByFolder(ctx context.Context, userID int64, folderID string) ([]*models.MediaItem, error)
	UpdateFolder(ctx context.Context, id string, userID int64, folderID string) error
	ReassignFolder(ctx context.Context, userID int64, fromFolder, toFolder string) error
	Remove(ctx context.Context, id string, userID int64) error
}

type mediaItemRepository struct {
	db *sql.DB
}

func NewMediaItemRepository(db *sql.DB) MediaItemRepository {
	return &mediaItemRepository{db: db}
}

func (r *mediaItemRepository) Create(ctx context.Context, item *models.MediaItem) error {
	query := `
		INSERT INTO media_items (id, user_id, url, file_name, media_type, file_size, folder_id, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.UserID, item.URL, item.FileName, item.MediaType, item.FileSize, item.FolderID, item.Tags)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *mediaItemRepository) GetByID(ctx context.Context, id string, userID int64) (*models.MediaItem, bool, error) {
	query := `
		SELECT id, user_id, url, file_name, media_type, file_size, folder_id, tags, created_at
		FROM media_items
		WHERE id = $1 AND user_id = $2
	`

	var item models.MediaItem
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&item.ID,
		&item.UserID,
		&item.URL,
		&item.FileName,
		&item.MediaType,
		&item.FileSize,
		&item.FolderID,
		&item.Tags,
		&item.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &item, true, nil
}

func (r *mediaItemRepository) ListByUser(ctx context.Context, userID int64) ([]*models.MediaItem, error) {
	query := `
		SELECT id, user_id, url, file_name, media_type, file_size, folder_id, tags, created_at
		FROM media_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *mediaItemRepository) ListByFolder(ctx context.Context, userID int64, folderID string) ([]*models.MediaItem, error) {
	query := `
		SELECT id, user_id, url, file_name, media_type, file_size, folder_id, tags, created_at
		FROM media_items
		WHERE user_id = $1 AND folder_id = $2
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID, folderID)
}

func (r *mediaItemRepository) list(ctx context.Context, query string, args ...any) ([]*models.MediaItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var items []*models.MediaItem
	for rows.Next() {
		var item models.MediaItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.URL,
			&item.FileName,
			&item.MediaType,
			&item.FileSize,
			&item.FolderID,
			&item.Tags,
			&item.CreatedAt,
		)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return items, nil
}

func (r *mediaItemRepository) UpdateFolder(ctx context.Context, id string, userID int64, folderID string) error {
	query := "UPDATE media_items SET folder_id = $1 WHERE id = $2 AND user_id = $3"
	res, err := r.db.ExecContext(ctx, query, folderID, id, userID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReassignFolder moves every item in fromFolder to toFolder in one statement,
// so folder deletion cascades atomically at the database level.
func (r *mediaItemRepository) ReassignFolder(ctx context.Context, userID int64, fromFolder, toFolder string) error {
	query := "UPDATE media_items SET folder_id = $1 WHERE user_id = $2 AND folder_id = $3"
	_, err := r.db.ExecContext(ctx, query, toFolder, userID, fromFolder)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *mediaItemRepository) Remove(ctx context.Context, id string, userID int64) error {
	query := "DELETE FROM media_items WHERE id = $1 AND user_id = $2"
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
