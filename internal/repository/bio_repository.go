package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/echofluxai/echoflux-api/internal/models"
)

type BioPageRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.BioPage, bool, error)
	Upsert(ctx context.Context, page *models.BioPage) error
}

type bioPageRepository struct {
	db *sql.DB
}

func NewBioPageRepository(db *sql.DB) BioPageRepository {
	return &bioPageRepository{db: db}
}

func (r *bioPageRepository) GetByUserID(ctx context.Context, userID int64) (*models.BioPage, bool, error) {
	var page models.BioPage
	query := `
		SELECT user_id, display_name, bio, avatar_url, theme, social_links, custom_links, updated_at
		FROM bio_pages
		WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&page.UserID,
		&page.DisplayName,
		&page.Bio,
		&page.AvatarURL,
		&page.Theme,
		&page.SocialLinks,
		&page.CustomLinks,
		&page.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &page, true, nil
}

func (r *bioPageRepository) Upsert(ctx context.Context, page *models.BioPage) error {
	query := `
		INSERT INTO bio_pages (user_id, display_name, bio, avatar_url, theme, social_links, custom_links, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			theme = EXCLUDED.theme,
			social_links = EXCLUDED.social_links,
			custom_links = EXCLUDED.custom_links,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, page.UserID, page.DisplayName, page.Bio, page.AvatarURL, page.Theme, page.SocialLinks, page.CustomLinks, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
