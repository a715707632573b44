package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	cfg "github.com/echofluxai/echoflux-api/configs"
	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockWaitlistRepo struct {
	entries     map[int64]*models.WaitlistEntry
	byEmail     map[string]*models.WaitlistEntry
	created     []*models.WaitlistEntry
	statuses    map[int64]string
	emailErrors map[int64]string
	removed     int64
}

func newMockWaitlistRepo() *mockWaitlistRepo {
	return &mockWaitlistRepo{
		entries:     make(map[int64]*models.WaitlistEntry),
		byEmail:     make(map[string]*models.WaitlistEntry),
		statuses:    make(map[int64]string),
		emailErrors: make(map[int64]string),
	}
}

func (m *mockWaitlistRepo) Create(ctx context.Context, entry *models.WaitlistEntry) (int64, error) {
	m.created = append(m.created, entry)
	return int64(len(m.created)), nil
}

func (m *mockWaitlistRepo) GetByID(ctx context.Context, id int64) (*models.WaitlistEntry, bool, error) {
	e, ok := m.entries[id]
	return e, ok, nil
}

func (m *mockWaitlistRepo) GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, bool, error) {
	e, ok := m.byEmail[email]
	return e, ok, nil
}

func (m *mockWaitlistRepo) ListByStatus(ctx context.Context, status string) ([]*models.WaitlistEntry, error) {
	return nil, nil
}

func (m *mockWaitlistRepo) UpdateStatus(ctx context.Context, id int64, status, inviteCode, grantPlan string) error {
	m.statuses[id] = status
	return nil
}

func (m *mockWaitlistRepo) SetEmailError(ctx context.Context, id int64, emailError string) error {
	m.emailErrors[id] = emailError
	return nil
}

func (m *mockWaitlistRepo) RemoveByIDsAndStatus(ctx context.Context, ids []int64, status string) (int64, error) {
	m.removed = int64(len(ids))
	return m.removed, nil
}

type mockInviteRepo struct {
	codes      map[string]*models.InviteCode
	created    []*models.InviteCode
	markUsed   []string
	markErr    error
	voided     int64
	voidedFrom time.Time
}

func newMockInviteRepo() *mockInviteRepo {
	return &mockInviteRepo{codes: make(map[string]*models.InviteCode)}
}

func (m *mockInviteRepo) Create(ctx context.Context, invite *models.InviteCode) (int64, error) {
	m.created = append(m.created, invite)
	return int64(len(m.created)), nil
}

func (m *mockInviteRepo) GetByCode(ctx context.Context, code string) (*models.InviteCode, bool, error) {
	c, ok := m.codes[code]
	return c, ok, nil
}

func (m *mockInviteRepo) MarkUsed(ctx context.Context, code string, userID int64) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.markUsed = append(m.markUsed, code)
	return nil
}

func (m *mockInviteRepo) VoidExpired(ctx context.Context, now time.Time) (int64, error) {
	m.voidedFrom = now
	return m.voided, nil
}

type mockUserRepo struct {
	plans       map[int64]string
	byUsername  map[string]*models.User
	usernameErr error
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, bool, error) {
	return nil, false, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	return nil, false, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, bool, error) {
	if m.usernameErr != nil {
		return nil, false, m.usernameErr
	}
	u, ok := m.byUsername[username]
	return u, ok, nil
}

func (m *mockUserRepo) Create(ctx context.Context, tx *sql.Tx, user *models.User) (int64, error) {
	return 0, nil
}

func (m *mockUserRepo) UpdatePlan(ctx context.Context, id int64, plan string) error {
	if m.plans == nil {
		m.plans = make(map[int64]string)
	}
	m.plans[id] = plan
	return nil
}

func (m *mockUserRepo) Remove(ctx context.Context, id int64) error {
	return nil
}

type mockMailer struct {
	sent []string
	err  error
}

func (m *mockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func newWaitlistFixture(mailer *mockMailer) (*mockWaitlistRepo, *mockInviteRepo, *mockUserRepo, WaitlistService) {
	wr := newMockWaitlistRepo()
	ir := newMockInviteRepo()
	ur := &mockUserRepo{}
	s := NewWaitlistService(cfg.Config{FrontendURL: "http://localhost:5173"}, wr, ir, ur, mailer)
	return wr, ir, ur, s
}

func TestJoinIsIdempotent(t *testing.T) {
	wr, _, _, s := newWaitlistFixture(&mockMailer{})
	wr.byEmail["taken@example.com"] = &models.WaitlistEntry{ID: 1, Email: "taken@example.com"}

	require.NoError(t, s.Join(context.Background(), "Taken@Example.com "))
	assert.Empty(t, wr.created)

	require.NoError(t, s.Join(context.Background(), "new@example.com"))
	assert.Len(t, wr.created, 1)

	assert.Error(t, s.Join(context.Background(), "not-an-email"))
}

func TestApproveMintsCodeAndSendsEmail(t *testing.T) {
	mailer := &mockMailer{}
	wr, ir, _, s := newWaitlistFixture(mailer)
	wr.entries[5] = &models.WaitlistEntry{ID: 5, Email: "a@b.com", Status: models.WaitlistStatusPending}

	result, err := s.Approve(context.Background(), 5, models.PlanCreator)
	require.NoError(t, err)
	assert.Equal(t, models.WaitlistStatusApproved, result.Status)
	assert.NotEmpty(t, result.InviteCode)
	assert.Empty(t, result.EmailError)

	require.Len(t, ir.created, 1)
	assert.Equal(t, models.PlanCreator, ir.created[0].Plan)
	assert.Equal(t, models.WaitlistStatusApproved, wr.statuses[5])
	assert.Equal(t, []string{"a@b.com"}, mailer.sent)
}

func TestApproveSurvivesEmailFailure(t *testing.T) {
	mailer := &mockMailer{err: errors.New("resend 500")}
	wr, _, _, s := newWaitlistFixture(mailer)
	wr.entries[5] = &models.WaitlistEntry{ID: 5, Email: "a@b.com", Status: models.WaitlistStatusPending}

	result, err := s.Approve(context.Background(), 5, "")
	require.NoError(t, err)
	assert.Equal(t, models.WaitlistStatusApproved, result.Status)
	assert.Equal(t, "resend 500", result.EmailError)
	assert.Equal(t, models.WaitlistStatusApproved, wr.statuses[5])
	assert.Equal(t, "resend 500", wr.emailErrors[5])
}

func TestApproveRejectsNonPending(t *testing.T) {
	wr, _, _, s := newWaitlistFixture(&mockMailer{})
	wr.entries[5] = &models.WaitlistEntry{ID: 5, Status: models.WaitlistStatusApproved}

	_, err := s.Approve(context.Background(), 5, "")
	assert.Error(t, err)

	_, err = s.Approve(context.Background(), 404, "")
	assert.Error(t, err)
}

func TestRejectTransitionsAndNotifies(t *testing.T) {
	mailer := &mockMailer{}
	wr, _, _, s := newWaitlistFixture(mailer)
	wr.entries[9] = &models.WaitlistEntry{ID: 9, Email: "x@y.com", Status: models.WaitlistStatusPending}

	result, err := s.Reject(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, models.WaitlistStatusRejected, result.Status)
	assert.Equal(t, models.WaitlistStatusRejected, wr.statuses[9])
	assert.Equal(t, []string{"x@y.com"}, mailer.sent)
}

func TestBulkDeleteOnlySettledStatuses(t *testing.T) {
	wr, _, _, s := newWaitlistFixture(&mockMailer{})

	_, err := s.BulkDelete(context.Background(), []int64{1, 2}, models.WaitlistStatusPending)
	assert.Error(t, err)

	_, err = s.BulkDelete(context.Background(), nil, models.WaitlistStatusApproved)
	assert.Error(t, err)

	deleted, err := s.BulkDelete(context.Background(), []int64{1, 2}, models.WaitlistStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, int64(2), wr.removed)
}

func TestRedeemGrantsPlan(t *testing.T) {
	_, ir, ur, s := newWaitlistFixture(&mockMailer{})
	ir.codes["abc"] = &models.InviteCode{Code: "abc", Plan: models.PlanAgency, ExpiresAt: time.Now().Add(time.Hour)}

	plan, err := s.Redeem(context.Background(), "abc", 42)
	require.NoError(t, err)
	assert.Equal(t, models.PlanAgency, plan)
	assert.Equal(t, models.PlanAgency, ur.plans[42])
	assert.Equal(t, []string{"abc"}, ir.markUsed)
}

func TestRedeemRejectsUnusableCodes(t *testing.T) {
	_, ir, _, s := newWaitlistFixture(&mockMailer{})
	usedBy := int64(1)
	ir.codes["used"] = &models.InviteCode{Code: "used", UsedBy: &usedBy, ExpiresAt: time.Now().Add(time.Hour)}
	ir.codes["old"] = &models.InviteCode{Code: "old", ExpiresAt: time.Now().Add(-time.Hour)}
	ir.codes["void"] = &models.InviteCode{Code: "void", Voided: true, ExpiresAt: time.Now().Add(time.Hour)}

	for _, code := range []string{"missing", "used", "old", "void"} {
		_, err := s.Redeem(context.Background(), code, 42)
		assert.Error(t, err, code)
	}
}

func TestRedeemRaceLosesGracefully(t *testing.T) {
	_, ir, _, s := newWaitlistFixture(&mockMailer{})
	ir.codes["abc"] = &models.InviteCode{Code: "abc", Plan: models.PlanCreator, ExpiresAt: time.Now().Add(time.Hour)}
	ir.markErr = errors.New("sql: no rows in result set")

	_, err := s.Redeem(context.Background(), "abc", 42)
	assert.Error(t, err)
}
