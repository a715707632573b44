package transfer

type WaitlistJoinRequest struct {
	Email string `json:"email"`
}

type WaitlistActionRequest struct {
	EntryID   int64  `json:"entry_id"`
	GrantPlan string `json:"grant_plan"`
}

type WaitlistBulkDeleteRequest struct {
	EntryIDs []int64 `json:"entry_ids"`
	Status   string  `json:"status"`
}

// WaitlistActionResult carries the outcome of an approve/reject. EmailError
// is set when the status transition committed but the notification failed.
type WaitlistActionResult struct {
	EntryID    int64  `json:"entry_id"`
	Status     string `json:"status"`
	InviteCode string `json:"invite_code,omitempty"`
	EmailError string `json:"email_error,omitempty"`
}
