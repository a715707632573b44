package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/echofluxai/echoflux-api/internal/models"
)

type InviteCodeRepository interface {
	Create(ctx context.Context, invite *models.InviteCode) (int64, error)
	GetByCode(ctx context.Context, code string) (*models.InviteCode, bool, error)
	MarkUsed(ctx context.Context, code string, userID int64) error
	VoidExpired(ctx context.Context, now time.Time) (int64, error)
}

type inviteCodeRepository struct {
	db *sql.DB
}

func NewInviteCodeRepository(db *sql.DB) InviteCodeRepository {
	return &inviteCodeRepository{db: db}
}

func (r *inviteCodeRepository) Create(ctx context.Context, invite *models.InviteCode) (int64, error) {
	var id int64
	query := "INSERT INTO invite_codes (code, plan, expires_at) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, invite.Code, invite.Plan, invite.ExpiresAt).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *inviteCodeRepository) GetByCode(ctx context.Context, code string) (*models.InviteCode, bool, error) {
	var invite models.InviteCode
	query := `
		SELECT id, code, plan, expires_at, used_by, used_at, voided, created_at
		FROM invite_codes
		WHERE code = $1
	`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&invite.ID, &invite.Code, &invite.Plan, &invite.ExpiresAt, &invite.UsedBy, &invite.UsedAt, &invite.Voided, &invite.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &invite, true, nil
}

// MarkUsed claims a code for a user; the used_by guard makes redemption
// single-use at the database level.
func (r *inviteCodeRepository) MarkUsed(ctx context.Context, code string, userID int64) error {
	query := `
		UPDATE invite_codes
		SET used_by = $1, used_at = $2
		WHERE code = $3 AND used_by IS NULL AND NOT voided
	`
	res, err := r.db.ExecContext(ctx, query, userID, time.Now(), code)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *inviteCodeRepository) VoidExpired(ctx context.Context, now time.Time) (int64, error) {
	query := "UPDATE invite_codes SET voided = TRUE WHERE expires_at < $1 AND used_by IS NULL AND NOT voided"
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
