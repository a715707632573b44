package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/echofluxai/echoflux-api/internal/repository"
)

type InviteSweepJob struct {
	ir repository.InviteCodeRepository
}

func NewInviteSweepJob(ir repository.InviteCodeRepository) *InviteSweepJob {
	return &InviteSweepJob{
		ir: ir,
	}
}

// SweepExpired voids invite codes whose expiry has passed without redemption.
func (c *InviteSweepJob) SweepExpired() {
	ctx := context.Background()

	n, err := c.ir.VoidExpired(ctx, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return
	}

	if n > 0 {
		slog.Info("voided expired invite codes", "count", n)
	}
}
