package models

import (
	"encoding/json"
	"time"
)

type MediaItem struct {
	ID        string          `db:"id" json:"id"`
	UserID    int64           `db:"user_id" json:"user_id"`
	URL       string          `db:"url" json:"url"`
	FileName  string          `db:"file_name" json:"file_name"`
	MediaType string          `db:"media_type" json:"media_type"` // image, video
	FileSize  int64           `db:"file_size" json:"file_size"`
	FolderID  string          `db:"folder_id" json:"folder_id"`
	Tags      json.RawMessage `db:"tags" json:"tags"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

type MediaFolder struct {
	ID        string    `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"

	// Items with no folder, and items orphaned by folder deletion,
	// live in the general folder.
	GeneralFolderID = "general"
)
