package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeviceType is a coarse device classification derived from the User-Agent.
// The tablet category exists in the analytics schema but the current
// heuristic never produces it.
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceDesktop DeviceType = "desktop"
	DeviceTablet  DeviceType = "tablet"
)

// CostModel is the pricing model an impression was served under.
type CostModel string

const (
	CostCPM CostModel = "CPM"
	CostCPC CostModel = "CPC"
)

// NetworkType classifies the viewer's network connection.
type NetworkType string

const (
	NetworkWifi     NetworkType = "wifi"
	NetworkCellular NetworkType = "cellular"
	NetworkWired    NetworkType = "wired"
)

// ButtonType classifies the element a click landed on.
type ButtonType string

const (
	ButtonText  ButtonType = "text"
	ButtonImage ButtonType = "image"
	ButtonVideo ButtonType = "video"
)

// ShowEvent is an append-only record of a banner impression. It is written
// to the analytics store exactly once per serve and never mutated. Optional
// columns are pointers; nil maps to a Nullable column.
type ShowEvent struct {
	EventID    uuid.UUID `ch:"event_id"`
	Timestamp  time.Time `ch:"timestamp"`
	BannerID   int64     `ch:"banner_id"`
	CampaignID int64     `ch:"campaign_id"`

	UserID          *int64       `ch:"user_id"`
	IPAddress       *string      `ch:"ip_address"`
	UserAgent       *string      `ch:"user_agent"`
	Country         *string      `ch:"country"`
	City            *string      `ch:"city"`
	Latitude        *float64     `ch:"latitude"`
	Longitude       *float64     `ch:"longitude"`
	DeviceType      *DeviceType  `ch:"device_type"`
	OSFamily        *string      `ch:"os_family"`
	OSVersion       *string      `ch:"os_version"`
	BrowserFamily   *string      `ch:"browser_family"`
	BrowserVersion  *string      `ch:"browser_version"`
	ScreenWidth     *int32       `ch:"screen_width"`
	ScreenHeight    *int32       `ch:"screen_height"`
	Language        *string      `ch:"language"`
	RefererDomain   *string      `ch:"referer_domain"`
	RefererPath     *string      `ch:"referer_path"`
	IsRobot         *uint8       `ch:"is_robot"`
	AdPosition      *string      `ch:"ad_position"`
	AdSize          *string      `ch:"ad_size"`
	CostModel       *CostModel   `ch:"cost_model"`
	SessionID       *string      `ch:"session_id"`
	NetworkType     *NetworkType `ch:"network_type"`
	ConnectionSpeed *int32       `ch:"connection_speed"`
}

// ClickEvent is an append-only record of a click on a served banner. The
// show event reference is the client-echoed correlation identifier; it is
// never validated against the shows table.
type ClickEvent struct {
	ShowEventID uuid.UUID `ch:"show_event_id"`
	Timestamp   time.Time `ch:"timestamp"`
	BannerID    int64     `ch:"banner_id"`
	CampaignID  int64     `ch:"campaign_id"`

	ClickX          *int32      `ch:"click_x"`
	ClickY          *int32      `ch:"click_y"`
	ElementID       *string     `ch:"element_id"`
	ElementClass    *string     `ch:"element_class"`
	RefererURL      *string     `ch:"referer_url"`
	HTTPMethod      *string     `ch:"http_method"`
	FormData        *string     `ch:"form_data"`
	TimeToClick     *float64    `ch:"time_to_click"`
	IsConversion    *uint8      `ch:"is_conversion"`
	ConversionValue *int64      `ch:"conversion_value"`
	ClickCost       *int64      `ch:"click_cost"`
	ButtonType      *ButtonType `ch:"button_type"`
	ClickDepth      *int32      `ch:"click_depth"`
	ScrollPosition  *int32      `ch:"scroll_position"`
	HoverTime       *float64    `ch:"hover_time"`
}
