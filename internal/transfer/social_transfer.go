package transfer

import "fmt"

// SocialStats is the aggregate fed into the analytics report. A zero-valued
// struct with Connected=false is the degraded "no data" form.
type SocialStats struct {
	Platform    string `json:"platform"`
	Subscribers int64  `json:"subscribers"`
	Views       int64  `json:"views"`
	Videos      int64  `json:"videos"`
	Connected   bool   `json:"connected"`
}

func (s *SocialStats) Line() string {
	if !s.Connected {
		return "no connected accounts"
	}
	return fmt.Sprintf("%s: %d subscribers, %d total views, %d videos", s.Platform, s.Subscribers, s.Views, s.Videos)
}
