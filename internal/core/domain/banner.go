package domain

import (
	"encoding/json"
	"time"
)

// Banner is a creative unit served to end users under a campaign.
// Visibility and editability are inherited transitively through
// campaign -> client. Content is free-form JSON; the click-through target
// lives under its "click_url" key.
type Banner struct {
	ID         int64
	Name       string
	CampaignID int64
	Content    json.RawMessage
	IsActive   bool
	CreatedAt  time.Time
}

// DestinationURL returns the click-through target configured in the banner
// content, or an empty string when the content has none.
func (b Banner) DestinationURL() string {
	var c struct {
		ClickURL string `json:"click_url"`
	}
	if err := json.Unmarshal(b.Content, &c); err != nil {
		return ""
	}
	return c.ClickURL
}
