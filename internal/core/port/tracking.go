package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"reklamito/internal/core/domain"
)

// TrackingUseCase is the public serving surface: it records impressions and
// clicks and hands the HTTP layer what it needs to render or redirect. No
// authentication is required; a resolved user only enriches the analytics
// row.
type TrackingUseCase interface {
	// ShowBanner records a show event for an active banner and returns the
	// banner together with the click URL carrying the correlation
	// parameters. Missing or inactive banners yield ErrNotFound. Analytics
	// failures fail the call only in strict mode.
	ShowBanner(ctx context.Context, req ShowRequest) (*ShowResult, error)

	// HandleClick records a click event and returns the banner's
	// destination URL for a redirect. The correlation identifier must be
	// present but its value is never checked against the shows table.
	HandleClick(ctx context.Context, req ClickRequest) (string, error)
}

// ShowRequest carries the request metadata the pipeline derives the
// analytics row from.
type ShowRequest struct {
	BannerID     int64
	RemoteAddr   string
	ForwardedFor string
	UserAgent    string
	Referer      string
	UserID       *int64
}

// ShowResult is returned to the HTTP layer for rendering. ClickURL embeds
// the correlation identifier and show timestamp as query parameters; the
// server keeps no pending state between show and click.
type ShowResult struct {
	Banner   domain.Banner
	EventID  uuid.UUID
	ShowTime time.Time
	ClickURL string
}

// ClickRequest carries the client-echoed correlation parameters. ShowTime
// is a unix epoch in seconds; zero means the parameter was absent and
// time-to-click stays unset.
type ClickRequest struct {
	BannerID int64
	ShowUUID string
	ShowTime float64
	Referer  string
}

// AnalyticsSink appends immutable show and click rows. Implementations must
// return AnalyticsWriteError so the pipeline can choose to swallow or
// propagate it.
type AnalyticsSink interface {
	LogShow(ctx context.Context, ev domain.ShowEvent) error
	LogClick(ctx context.Context, ev domain.ClickEvent) error
}

// CounterStore is the volatile per-banner counter store. Counters drift or
// reset relative to the analytics counts; they are never the source of
// truth. Increments must be atomic single operations, never
// read-modify-write.
type CounterStore interface {
	IncrementShows(ctx context.Context, bannerID int64) error
	IncrementClicks(ctx context.Context, bannerID int64) error
	Shows(ctx context.Context, bannerID int64) (int64, error)
	Clicks(ctx context.Context, bannerID int64) (int64, error)
}

// AgentInfo is the structured result of classifying a raw User-Agent
// string.
type AgentInfo struct {
	BrowserFamily  string
	BrowserVersion string
	OSFamily       string
	OSVersion      string
	DeviceType     domain.DeviceType
}

// AgentParser classifies User-Agent strings. Pluggable so the simplistic
// mobile/desktop heuristic can be swapped without touching the pipeline.
type AgentParser interface {
	Parse(userAgent string) AgentInfo
}
