package models

import (
	"encoding/json"
	"time"
)

// BioPage is a user's public link-in-bio configuration. SocialLinks and
// CustomLinks are stored as JSONB and may be either an array or a keyed
// object in older rows, so they are kept raw here and coerced at read time.
type BioPage struct {
	UserID      int64           `db:"user_id" json:"user_id"`
	DisplayName string          `db:"display_name" json:"display_name"`
	Bio         string          `db:"bio" json:"bio"`
	AvatarURL   string          `db:"avatar_url" json:"avatar_url"`
	Theme       string          `db:"theme" json:"theme"`
	SocialLinks json.RawMessage `db:"social_links" json:"social_links"`
	CustomLinks json.RawMessage `db:"custom_links" json:"custom_links"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
