package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/internal/repository"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/echofluxai/echoflux-api/pkg/shape"
)

type BioService interface {
	PublicPage(ctx context.Context, username string) (*transfer.BioPageView, error)
	Update(ctx context.Context, userID int64, update *transfer.BioPageUpdate) error
}

type bioService struct {
	ur repository.UserRepository
	br repository.BioPageRepository
}

func NewBioService(ur repository.UserRepository, br repository.BioPageRepository) BioService {
	return &bioService{
		ur: ur,
		br: br,
	}
}

// PublicPage resolves a username to its bio configuration. Link collections
// persisted as keyed objects by older clients are coerced to arrays; any
// unreadable shape degrades to an empty list rather than failing the page.
func (s *bioService) PublicPage(ctx context.Context, username string) (*transfer.BioPageView, error) {
	user, exists, err := s.ur.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.New("profile not found")
	}

	view := &transfer.BioPageView{
		Username:    user.Username,
		DisplayName: user.Name,
		AvatarURL:   user.ProfilePicture,
		Theme:       "default",
		SocialLinks: []map[string]any{},
		CustomLinks: []map[string]any{},
	}

	page, exists, err := s.br.GetByUserID(ctx, user.ID)
	if err != nil {
		// A broken bio row still renders the bare profile.
		slog.Error("bio page read failed",
			"username", username,
			"error", err.Error())
		return view, nil
	}
	if !exists {
		return view, nil
	}

	if page.DisplayName != "" {
		view.DisplayName = page.DisplayName
	}
	if page.AvatarURL != "" {
		view.AvatarURL = page.AvatarURL
	}
	if page.Theme != "" {
		view.Theme = page.Theme
	}
	view.Bio = page.Bio
	view.SocialLinks = shape.CoerceRaw(page.SocialLinks, shape.HasID)
	view.CustomLinks = shape.CoerceRaw(page.CustomLinks, shape.HasID)

	return view, nil
}

func (s *bioService) Update(ctx context.Context, userID int64, update *transfer.BioPageUpdate) error {
	socialLinks, err := json.Marshal(update.SocialLinks)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	customLinks, err := json.Marshal(update.CustomLinks)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return s.br.Upsert(ctx, &models.BioPage{
		UserID:      userID,
		DisplayName: update.DisplayName,
		Bio:         update.Bio,
		AvatarURL:   update.AvatarURL,
		Theme:       update.Theme,
		SocialLinks: socialLinks,
		CustomLinks: customLinks,
	})
}
