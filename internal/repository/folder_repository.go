package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/echofluxai/echoflux-api/internal/models"
)

type MediaFolderRepository interface {
	Create(ctx context.Context, folder *models.MediaFolder) error
	GetByID(ctx context.Context, id string, userID int64) (*models.MediaFolder, bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.MediaFolder, error)
	Rename(ctx context.Context, id string, userID int64, name string) error
	Remove(ctx context.Context, id string, userID int64) error
}

type mediaFolderRepository struct {
	db *sql.DB
}

func NewMediaFolderRepository(db *sql.DB) MediaFolderRepository {
	return &mediaFolderRepository{db: db}
}

func (r *mediaFolderRepository) Create(ctx context.Context, folder *models.MediaFolder) error {
	query := "INSERT INTO media_folders (id, user_id, name) VALUES ($1, $2, $3)"
	_, err := r.db.ExecContext(ctx, query, folder.ID, folder.UserID, folder.Name)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *mediaFolderRepository) GetByID(ctx context.Context, id string, userID int64) (*models.MediaFolder, bool, error) {
	var folder models.MediaFolder
	query := "SELECT id, user_id, name, created_at FROM media_folders WHERE id = $1 AND user_id = $2"
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&folder.ID, &folder.UserID, &folder.Name, &folder.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &folder, true, nil
}

func (r *mediaFolderRepository) ListByUser(ctx context.Context, userID int64) ([]*models.MediaFolder, error) {
	query := "SELECT id, user_id, name, created_at FROM media_folders WHERE user_id = $1 ORDER BY created_at ASC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var folders []*models.MediaFolder
	for rows.Next() {
		var folder models.MediaFolder
		if err := rows.Scan(&folder.ID, &folder.UserID, &folder.Name, &folder.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		folders = append(folders, &folder)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return folders, nil
}

func (r *mediaFolderRepository) Rename(ctx context.Context, id string, userID int64, name string) error {
	query := "UPDATE media_folders SET name = $1 WHERE id = $2 AND user_id = $3"
	res, err := r.db.ExecContext(ctx, query, name, id, userID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *mediaFolderRepository) Remove(ctx context.Context, id string, userID int64) error {
	query := "DELETE FROM media_folders WHERE id = $1 AND user_id = $2"
	_, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
