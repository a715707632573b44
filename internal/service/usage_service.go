package service

import (
	"context"
	"log/slog"

	"github.com/echofluxai/echoflux-api/internal/repository"
	"github.com/echofluxai/echoflux-api/internal/transfer"
)

type UsageService interface {
	Summary(ctx context.Context, userID int64) ([]*transfer.UsageTierSummary, error)
}

type usageService struct {
	ul repository.UsageLogRepository
}

func NewUsageService(ul repository.UsageLogRepository) UsageService {
	return &usageService{
		ul: ul,
	}
}

// Summary aggregates per-tier usage. A database failure degrades to an
// empty summary so the dashboard widget renders, but the error is logged.
func (s *usageService) Summary(ctx context.Context, userID int64) ([]*transfer.UsageTierSummary, error) {
	summaries, err := s.ul.SummaryByUser(ctx, userID)
	if err != nil {
		slog.Error("usage summary read failed",
			"user_id", userID,
			"error", err.Error())
		return []*transfer.UsageTierSummary{}, nil
	}
	if summaries == nil {
		summaries = []*transfer.UsageTierSummary{}
	}
	return summaries, nil
}
