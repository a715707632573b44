package transfer

type FolderCreation struct {
	Name string `json:"name"`
}

type FolderRename struct {
	FolderID string `json:"folder_id"`
	Name     string `json:"name"`
}

type BulkMoveRequest struct {
	ItemIDs  []string `json:"item_ids"`
	FolderID string   `json:"folder_id"`
}

type BulkDeleteRequest struct {
	ItemIDs []string `json:"item_ids"`
}

// BulkResult reports a partial-failure batch: the operation keeps going past
// individual failures and counts both sides.
type BulkResult struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failed_ids,omitempty"`
}

type BioPageUpdate struct {
	DisplayName string           `json:"display_name"`
	Bio         string           `json:"bio"`
	AvatarURL   string           `json:"avatar_url"`
	Theme       string           `json:"theme"`
	SocialLinks []map[string]any `json:"social_links"`
	CustomLinks []map[string]any `json:"custom_links"`
}

// BioPageView is the public bio payload; link collections are always arrays
// here regardless of how the row stored them.
type BioPageView struct {
	Username    string           `json:"username"`
	DisplayName string           `json:"display_name"`
	Bio         string           `json:"bio"`
	AvatarURL   string           `json:"avatar_url"`
	Theme       string           `json:"theme"`
	SocialLinks []map[string]any `json:"social_links"`
	CustomLinks []map[string]any `json:"custom_links"`
}
