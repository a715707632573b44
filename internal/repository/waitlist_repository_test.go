package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var waitlistColumns = []string{"id", "email", "status", "invite_code", "grant_plan", "email_error", "created_at", "updated_at"}

func TestWaitlistCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO waitlist_entries").
		WithArgs("a@b.com", models.WaitlistStatusPending, models.PlanFree).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	r := NewWaitlistRepository(db)
	id, err := r.Create(context.Background(), &models.WaitlistEntry{Email: "a@b.com", GrantPlan: models.PlanFree})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitlistGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, status").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	r := NewWaitlistRepository(db)
	entry, exists, err := r.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, entry)
}

func TestWaitlistListByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(waitlistColumns).
		AddRow(1, "a@b.com", "pending", "", models.PlanFree, "", now, now).
		AddRow(2, "c@d.com", "pending", "", models.PlanCreator, "", now, now)

	mock.ExpectQuery("FROM waitlist_entries").
		WithArgs("pending").
		WillReturnRows(rows)

	r := NewWaitlistRepository(db)
	entries, err := r.ListByStatus(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c@d.com", entries[1].Email)
}

func TestWaitlistUpdateStatusGuardsPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE waitlist_entries").
		WithArgs(models.WaitlistStatusApproved, "code123", models.PlanCreator, sqlmock.AnyArg(), int64(5), models.WaitlistStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	r := NewWaitlistRepository(db)
	err = r.UpdateStatus(context.Background(), 5, models.WaitlistStatusApproved, "code123", models.PlanCreator)
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestWaitlistRemoveByIDsAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM waitlist_entries").
		WithArgs(sqlmock.AnyArg(), models.WaitlistStatusRejected).
		WillReturnResult(sqlmock.NewResult(0, 3))

	r := NewWaitlistRepository(db)
	n, err := r.RemoveByIDsAndStatus(context.Background(), []int64{1, 2, 3}, models.WaitlistStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
