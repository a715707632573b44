package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	cfg "github.com/echofluxai/echoflux-api/configs"
	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/internal/repository"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/echofluxai/echoflux-api/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type SocialService interface {
	ConnectCallback(ctx context.Context, code string, userID int64) error
	GetStats(ctx context.Context, userID int64) *transfer.SocialStats
	List(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
	Delete(ctx context.Context, userID, accountID int64) error
	RefreshToken(ctx context.Context, acc *models.SocialAccount) error
}

type socialService struct {
	cfg cfg.Config
	sa  repository.SocialAccountRepository
}

func NewSocialService(cfg cfg.Config, sa repository.SocialAccountRepository) SocialService {
	return &socialService{
		cfg: cfg,
		sa:  sa,
	}
}

func (s *socialService) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURI,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
			"https://www.googleapis.com/auth/youtube.readonly",
		},
		Endpoint: google.Endpoint,
	}
}

// ConnectCallback finishes the YouTube OAuth flow and stores the connected
// account with encrypted tokens.
func (s *socialService) ConnectCallback(ctx context.Context, code string, userID int64) error {
	if code == "" {
		err := errors.New("authorization code is empty")
		slog.Info(err.Error())
		return err
	}

	oauth2Config := s.oauthConfig()
	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	if token.RefreshToken == "" {
		err = errors.New("refresh token is empty")
		slog.Info(err.Error())
		return err
	}

	client := oauth2Config.Client(ctx, token)
	userInfo, err := GetUserInfo(client)
	if err != nil {
		return err
	}

	encryptedAccessToken, err := utils.Encrypt([]byte(token.AccessToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}

	encryptedRefreshToken, err := utils.Encrypt([]byte(token.RefreshToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}

	return s.sa.Upsert(ctx, &models.SocialAccount{
		UserID:          userID,
		Platform:        models.PlatformYoutube,
		AccountID:       userInfo.ID,
		AccountName:     userInfo.Name,
		AccountUsername: userInfo.Email,
		ProfilePicture:  userInfo.Picture,
		AccessToken:     encryptedAccessToken,
		RefreshToken:    encryptedRefreshToken,
		TokenExpiresAt:  token.Expiry,
	})
}

// GetStats reads channel statistics for the analytics report. Any failure —
// no connected account, a dead token, an API outage — degrades to zeroed
// stats; the error is logged but never surfaced as a request failure.
func (s *socialService) GetStats(ctx context.Context, userID int64) *transfer.SocialStats {
	zeroed := &transfer.SocialStats{Platform: models.PlatformYoutube}

	acc, exists, err := s.sa.GetByUserAndPlatform(ctx, userID, models.PlatformYoutube)
	if err != nil || !exists {
		if err != nil {
			slog.Error("social account read failed",
				"user_id", userID,
				"error", err.Error())
		}
		return zeroed
	}

	accessToken, err := utils.Decrypt(acc.AccessToken, []byte(s.cfg.SecretKey))
	if err != nil {
		return zeroed
	}

	token := &oauth2.Token{AccessToken: accessToken, Expiry: acc.TokenExpiresAt}
	client := s.oauthConfig().Client(ctx, token)

	yt, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		slog.Error("youtube client init failed",
			"user_id", userID,
			"error", err.Error())
		return zeroed
	}

	resp, err := yt.Channels.List([]string{"statistics"}).Mine(true).Do()
	if err != nil {
		slog.Error("youtube stats fetch failed",
			"user_id", userID,
			"error", err.Error())
		return zeroed
	}
	if len(resp.Items) == 0 || resp.Items[0].Statistics == nil {
		return zeroed
	}

	stats := resp.Items[0].Statistics
	return &transfer.SocialStats{
		Platform:    models.PlatformYoutube,
		Subscribers: int64(stats.SubscriberCount),
		Views:       int64(stats.ViewCount),
		Videos:      int64(stats.VideoCount),
		Connected:   true,
	}
}

func (s *socialService) List(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	return s.sa.ListByUser(ctx, userID)
}

func (s *socialService) Delete(ctx context.Context, userID, accountID int64) error {
	return s.sa.Remove(ctx, accountID, userID)
}

// RefreshToken exchanges the stored refresh token for a fresh access token
// and re-encrypts both.
func (s *socialService) RefreshToken(ctx context.Context, acc *models.SocialAccount) error {
	refreshToken, err := utils.Decrypt(acc.RefreshToken, []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}

	oauth2Config := s.oauthConfig()
	source := oauth2Config.TokenSource(ctx, &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Minute),
	})

	token, err := source.Token()
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	encryptedAccessToken, err := utils.Encrypt([]byte(token.AccessToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}

	newRefresh := token.RefreshToken
	if newRefresh == "" {
		newRefresh = refreshToken
	}
	encryptedRefreshToken, err := utils.Encrypt([]byte(newRefresh), []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}

	return s.sa.UpdateTokens(ctx, acc.ID, encryptedAccessToken, encryptedRefreshToken, token.Expiry)
}
