package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBioRepo struct {
	pages    map[int64]*models.BioPage
	getErr   error
	upserted *models.BioPage
}

func (m *mockBioRepo) GetByUserID(ctx context.Context, userID int64) (*models.BioPage, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	p, ok := m.pages[userID]
	return p, ok, nil
}

func (m *mockBioRepo) Upsert(ctx context.Context, page *models.BioPage) error {
	m.upserted = page
	return nil
}

func bioFixture(br *mockBioRepo) (*mockUserRepo, BioService) {
	ur := &mockUserRepo{byUsername: map[string]*models.User{
		"casey": {ID: 7, Username: "casey", Name: "Casey", ProfilePicture: "https://img/avatar.png"},
	}}
	return ur, NewBioService(ur, br)
}

func TestPublicPageUnknownUsername(t *testing.T) {
	_, s := bioFixture(&mockBioRepo{})

	_, err := s.PublicPage(context.Background(), "nobody")
	assert.Error(t, err)
}

func TestPublicPageWithoutBioRow(t *testing.T) {
	_, s := bioFixture(&mockBioRepo{})

	view, err := s.PublicPage(context.Background(), "casey")
	require.NoError(t, err)
	assert.Equal(t, "casey", view.Username)
	assert.Equal(t, "Casey", view.DisplayName)
	assert.Equal(t, "default", view.Theme)
	assert.Empty(t, view.SocialLinks)
	assert.Empty(t, view.CustomLinks)
}

func TestPublicPageCoercesKeyedLinks(t *testing.T) {
	br := &mockBioRepo{pages: map[int64]*models.BioPage{
		7: {
			UserID:      7,
			DisplayName: "Casey B",
			Bio:         "I make things",
			Theme:       "dark",
			SocialLinks: json.RawMessage(`{"0":{"id":"ig","url":"https://instagram.com/casey"}}`),
			CustomLinks: json.RawMessage(`[{"id":"shop","url":"https://shop.example"},{"url":"no id, dropped"}]`),
		},
	}}
	_, s := bioFixture(br)

	view, err := s.PublicPage(context.Background(), "casey")
	require.NoError(t, err)
	assert.Equal(t, "Casey B", view.DisplayName)
	assert.Equal(t, "dark", view.Theme)
	require.Len(t, view.SocialLinks, 1)
	assert.Equal(t, "ig", view.SocialLinks[0]["id"])
	require.Len(t, view.CustomLinks, 1)
	assert.Equal(t, "shop", view.CustomLinks[0]["id"])
}

func TestPublicPageDegradesOnBioReadFailure(t *testing.T) {
	br := &mockBioRepo{getErr: errors.New("bad row")}
	_, s := bioFixture(br)

	view, err := s.PublicPage(context.Background(), "casey")
	require.NoError(t, err)
	assert.Equal(t, "Casey", view.DisplayName)
	assert.Empty(t, view.SocialLinks)
}

func TestUpdateMarshalsLinks(t *testing.T) {
	br := &mockBioRepo{}
	_, s := bioFixture(br)

	err := s.Update(context.Background(), 7, &transfer.BioPageUpdate{
		DisplayName: "Casey B",
		Theme:       "dark",
		SocialLinks: []map[string]any{{"id": "ig", "url": "https://instagram.com/casey"}},
	})
	require.NoError(t, err)
	require.NotNil(t, br.upserted)
	assert.Equal(t, int64(7), br.upserted.UserID)
	assert.JSONEq(t, `[{"id":"ig","url":"https://instagram.com/casey"}]`, string(br.upserted.SocialLinks))
}
