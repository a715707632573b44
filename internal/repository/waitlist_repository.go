package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/lib/pq"
)

type WaitlistRepository interface {
	Create(ctx context.Context, entry *models.WaitlistEntry) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.WaitlistEntry, bool, error)
	GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, bool, error)
	ListByStatus(ctx context.Context, status string) ([]*models.WaitlistEntry, error)
	UpdateStatus(ctx context.Context, id int64, status, inviteCode, grantPlan string) error
	SetEmailError(ctx context.Context, id int64, emailError string) error
	RemoveByIDsAndStatus(ctx context.Context, ids []int64, status string) (int64, error)
}

type waitlistRepository struct {
	db *sql.DB
}

func NewWaitlistRepository(db *sql.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (r *waitlistRepository) Create(ctx context.Context, entry *models.WaitlistEntry) (int64, error) {
	var id int64
	query := "INSERT INTO waitlist_entries (email, status, grant_plan) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, entry.Email, models.WaitlistStatusPending, entry.GrantPlan).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *waitlistRepository) GetByID(ctx context.Context, id int64) (*models.WaitlistEntry, bool, error) {
	var entry models.WaitlistEntry
	query := `
		SELECT id, email, status, COALESCE(invite_code, ''), grant_plan, COALESCE(email_error, ''), created_at, updated_at
		FROM waitlist_entries
		WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&entry.ID, &entry.Email, &entry.Status, &entry.InviteCode, &entry.GrantPlan, &entry.EmailError, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &entry, true, nil
}

func (r *waitlistRepository) GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, bool, error) {
	var entry models.WaitlistEntry
	query := `
		SELECT id, email, status, COALESCE(invite_code, ''), grant_plan, COALESCE(email_error, ''), created_at, updated_at
		FROM waitlist_entries
		WHERE email = $1
	`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&entry.ID, &entry.Email, &entry.Status, &entry.InviteCode, &entry.GrantPlan, &entry.EmailError, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &entry, true, nil
}

func (r *waitlistRepository) ListByStatus(ctx context.Context, status string) ([]*models.WaitlistEntry, error) {
	query := `
		SELECT id, email, status, COALESCE(invite_code, ''), grant_plan, COALESCE(email_error, ''), created_at, updated_at
		FROM waitlist_entries
		WHERE status = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var entries []*models.WaitlistEntry
	for rows.Next() {
		var entry models.WaitlistEntry
		err := rows.Scan(&entry.ID, &entry.Email, &entry.Status, &entry.InviteCode, &entry.GrantPlan, &entry.EmailError, &entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return entries, nil
}

// UpdateStatus only moves entries out of pending; approved and rejected rows
// are final.
func (r *waitlistRepository) UpdateStatus(ctx context.Context, id int64, status, inviteCode, grantPlan string) error {
	query := `
		UPDATE waitlist_entries
		SET status = $1,
			invite_code = $2,
			grant_plan = $3,
			updated_at = $4
		WHERE id = $5 AND status = $6
	`
	res, err := r.db.ExecContext(ctx, query, status, inviteCode, grantPlan, time.Now(), id, models.WaitlistStatusPending)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *waitlistRepository) SetEmailError(ctx context.Context, id int64, emailError string) error {
	query := "UPDATE waitlist_entries SET email_error = $1, updated_at = $2 WHERE id = $3"
	_, err := r.db.ExecContext(ctx, query, emailError, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// RemoveByIDsAndStatus deletes only rows matching both the id list and the
// status filter, so pending entries can never be bulk deleted.
func (r *waitlistRepository) RemoveByIDsAndStatus(ctx context.Context, ids []int64, status string) (int64, error) {
	query := "DELETE FROM waitlist_entries WHERE id = ANY($1) AND status = $2"
	res, err := r.db.ExecContext(ctx, query, pq.Array(ids), status)
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
