package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	cfg "github.com/echofluxai/echoflux-api/configs"
	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/internal/repository"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/echofluxai/echoflux-api/pkg/utils"
)

const inviteCodeTTL = 14 * 24 * time.Hour

type WaitlistService interface {
	Join(ctx context.Context, email string) error
	List(ctx context.Context, status string) ([]*models.WaitlistEntry, error)
	Approve(ctx context.Context, entryID int64, grantPlan string) (*transfer.WaitlistActionResult, error)
	Reject(ctx context.Context, entryID int64) (*transfer.WaitlistActionResult, error)
	BulkDelete(ctx context.Context, entryIDs []int64, status string) (int64, error)
	Redeem(ctx context.Context, code string, userID int64) (string, error)
}

type waitlistService struct {
	cfg    cfg.Config
	wr     repository.WaitlistRepository
	ir     repository.InviteCodeRepository
	ur     repository.UserRepository
	mailer Mailer
}

func NewWaitlistService(cfg cfg.Config, wr repository.WaitlistRepository, ir repository.InviteCodeRepository, ur repository.UserRepository, mailer Mailer) WaitlistService {
	return &waitlistService{
		cfg:    cfg,
		wr:     wr,
		ir:     ir,
		ur:     ur,
		mailer: mailer,
	}
}

func (s *waitlistService) Join(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return errors.New("a valid email is required")
	}

	_, exists, err := s.wr.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		// Joining twice is a no-op, not an error.
		return nil
	}

	_, err = s.wr.Create(ctx, &models.WaitlistEntry{
		Email:     email,
		GrantPlan: models.PlanCreator,
	})
	return err
}

func (s *waitlistService) List(ctx context.Context, status string) ([]*models.WaitlistEntry, error) {
	switch status {
	case models.WaitlistStatusPending, models.WaitlistStatusApproved, models.WaitlistStatusRejected:
	default:
		return nil, errors.New("invalid status filter")
	}
	return s.wr.ListByStatus(ctx, status)
}

// Approve moves a pending entry to approved, mints an invite code, and then
// sends the invitation email. The transition commits before the email goes
// out; a delivery failure is recorded on the entry and surfaced to the admin
// but the entry stays approved.
func (s *waitlistService) Approve(ctx context.Context, entryID int64, grantPlan string) (*transfer.WaitlistActionResult, error) {
	entry, exists, err := s.wr.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.New("waitlist entry not found")
	}
	if entry.Status != models.WaitlistStatusPending {
		return nil, fmt.Errorf("entry is already %s", entry.Status)
	}

	if grantPlan == "" {
		grantPlan = entry.GrantPlan
	}

	code, err := utils.GenerateRandomKey(9)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("error generating invite code")
	}

	_, err = s.ir.Create(ctx, &models.InviteCode{
		Code:      code,
		Plan:      grantPlan,
		ExpiresAt: time.Now().Add(inviteCodeTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("error saving invite code")
	}

	if err := s.wr.UpdateStatus(ctx, entryID, models.WaitlistStatusApproved, code, grantPlan); err != nil {
		return nil, err
	}

	result := &transfer.WaitlistActionResult{
		EntryID:    entryID,
		Status:     models.WaitlistStatusApproved,
		InviteCode: code,
	}

	subject := "You're in — welcome to EchoFlux"
	body := fmt.Sprintf(
		`<p>Your spot is ready. Sign up with invite code <strong>%s</strong> to unlock the %s plan.</p><p><a href="%s/signup?code=%s">Create your account</a></p>`,
		code, grantPlan, s.cfg.FrontendURL, code)

	if err := s.mailer.Send(ctx, entry.Email, subject, body); err != nil {
		slog.Error("approval email failed",
			"entry_id", entryID,
			"error", err.Error())
		result.EmailError = err.Error()
		if derr := s.wr.SetEmailError(ctx, entryID, err.Error()); derr != nil {
			slog.Info(derr.Error())
		}
	}

	return result, nil
}

func (s *waitlistService) Reject(ctx context.Context, entryID int64) (*transfer.WaitlistActionResult, error) {
	entry, exists, err := s.wr.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.New("waitlist entry not found")
	}
	if entry.Status != models.WaitlistStatusPending {
		return nil, fmt.Errorf("entry is already %s", entry.Status)
	}

	if err := s.wr.UpdateStatus(ctx, entryID, models.WaitlistStatusRejected, "", entry.GrantPlan); err != nil {
		return nil, err
	}

	result := &transfer.WaitlistActionResult{
		EntryID: entryID,
		Status:  models.WaitlistStatusRejected,
	}

	subject := "Your EchoFlux waitlist update"
	body := "<p>Thanks for your interest in EchoFlux. We can't offer you a spot right now, but we'll keep your email for future openings.</p>"

	if err := s.mailer.Send(ctx, entry.Email, subject, body); err != nil {
		slog.Error("rejection email failed",
			"entry_id", entryID,
			"error", err.Error())
		result.EmailError = err.Error()
		if derr := s.wr.SetEmailError(ctx, entryID, err.Error()); derr != nil {
			slog.Info(derr.Error())
		}
	}

	return result, nil
}

// BulkDelete removes entries matching both the id list and the status
// filter. Pending entries are never deletable in bulk.
func (s *waitlistService) BulkDelete(ctx context.Context, entryIDs []int64, status string) (int64, error) {
	if len(entryIDs) == 0 {
		return 0, errors.New("no entries selected")
	}

	switch status {
	case models.WaitlistStatusApproved, models.WaitlistStatusRejected:
	default:
		return 0, errors.New("bulk delete only applies to approved or rejected entries")
	}

	return s.wr.RemoveByIDsAndStatus(ctx, entryIDs, status)
}

// Redeem claims an invite code for a new user and returns the granted plan.
func (s *waitlistService) Redeem(ctx context.Context, code string, userID int64) (string, error) {
	invite, exists, err := s.ir.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errors.New("invite code not found")
	}
	if invite.Voided || invite.UsedBy != nil {
		return "", errors.New("invite code already used")
	}
	if time.Now().After(invite.ExpiresAt) {
		return "", errors.New("invite code expired")
	}

	if err := s.ir.MarkUsed(ctx, code, userID); err != nil {
		return "", errors.New("invite code already used")
	}

	if err := s.ur.UpdatePlan(ctx, userID, invite.Plan); err != nil {
		return "", err
	}

	return invite.Plan, nil
}
