package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/internal/repository"
	"github.com/echofluxai/echoflux-api/internal/service"
)

type TokenRefreshJob struct {
	sr repository.SocialAccountRepository
	ss service.SocialService
}

func NewTokenRefreshJob(sr repository.SocialAccountRepository, ss service.SocialService) *TokenRefreshJob {
	return &TokenRefreshJob{
		sr: sr,
		ss: ss,
	}
}

// RefreshTokens refreshes every connected account whose access token expires
// within the next half hour.
func (c *TokenRefreshJob) RefreshTokens() {
	ctx := context.Background()

	deadline := time.Now().Add(30 * time.Minute)

	accounts, err := c.sr.ListExpiringBefore(ctx, deadline)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, acc := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *models.SocialAccount) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := c.ss.RefreshToken(ctx, acc); err != nil {
				slog.Warn("token refresh failed",
					"account_id", acc.ID,
					"platform", acc.Platform,
					"error", err.Error())
			}
		}(acc)
	}

	wg.Wait()
}
