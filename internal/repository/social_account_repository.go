package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/echofluxai/echoflux-api/internal/models"
)

type SocialAccountRepository interface {
	Upsert(ctx context.Context, acc *models.SocialAccount) error
	GetByUserAndPlatform(ctx context.Context, userID int64, platform string) (*models.SocialAccount, bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
	ListExpiringBefore(ctx context.Context, deadline time.Time) ([]*models.SocialAccount, error)
	UpdateTokens(ctx context.Context, id int64, accessToken, refreshToken string, expiresAt time.Time) error
	Remove(ctx context.Context, id, userID int64) error
}

type socialAccountRepository struct {
	db *sql.DB
}

func NewSocialAccountRepository(db *sql.DB) SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

const socialAccountColumns = "id, user_id, platform, account_id, account_name, account_username, profile_picture_url, access_token, refresh_token, token_expires_at, created_at, updated_at"

func (r *socialAccountRepository) scan(row interface{ Scan(...any) error }) (*models.SocialAccount, error) {
	var acc models.SocialAccount
	err := row.Scan(
		&acc.ID,
		&acc.UserID,
		&acc.Platform,
		&acc.AccountID,
		&acc.AccountName,
		&acc.AccountUsername,
		&acc.ProfilePicture,
		&acc.AccessToken,
		&acc.RefreshToken,
		&acc.TokenExpiresAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *socialAccountRepository) Upsert(ctx context.Context, acc *models.SocialAccount) error {
	query := `
		INSERT INTO social_accounts (user_id, platform, account_id, account_name, account_username, profile_picture_url, access_token, refresh_token, token_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, platform, account_id) DO UPDATE
		SET account_name = EXCLUDED.account_name,
			account_username = EXCLUDED.account_username,
			profile_picture_url = EXCLUDED.profile_picture_url,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expires_at = EXCLUDED.token_expires_at,
			updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, acc.UserID, acc.Platform, acc.AccountID, acc.AccountName, acc.AccountUsername, acc.ProfilePicture, acc.AccessToken, acc.RefreshToken, acc.TokenExpiresAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *socialAccountRepository) GetByUserAndPlatform(ctx context.Context, userID int64, platform string) (*models.SocialAccount, bool, error) {
	query := "SELECT " + socialAccountColumns + " FROM social_accounts WHERE user_id = $1 AND platform = $2"
	acc, err := r.scan(r.db.QueryRowContext(ctx, query, userID, platform))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return acc, true, nil
}

func (r *socialAccountRepository) ListByUser(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	query := "SELECT " + socialAccountColumns + " FROM social_accounts WHERE user_id = $1"
	return r.list(ctx, query, userID)
}

func (r *socialAccountRepository) ListExpiringBefore(ctx context.Context, deadline time.Time) ([]*models.SocialAccount, error) {
	query := "SELECT " + socialAccountColumns + " FROM social_accounts WHERE token_expires_at < $1"
	return r.list(ctx, query, deadline)
}

func (r *socialAccountRepository) list(ctx context.Context, query string, args ...any) ([]*models.SocialAccount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.SocialAccount
	for rows.Next() {
		acc, err := r.scan(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return accounts, nil
}

func (r *socialAccountRepository) UpdateTokens(ctx context.Context, id int64, accessToken, refreshToken string, expiresAt time.Time) error {
	query := `
		UPDATE social_accounts
		SET access_token = $1,
			refresh_token = $2,
			token_expires_at = $3,
			updated_at = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, accessToken, refreshToken, expiresAt, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *socialAccountRepository) Remove(ctx context.Context, id, userID int64) error {
	query := "DELETE FROM social_accounts WHERE id = $1 AND user_id = $2"
	_, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
