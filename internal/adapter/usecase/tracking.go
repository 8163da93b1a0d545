package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

// Tracking implements the impression/click pipeline. It holds explicit
// handles to the analytics sink and the counter store instead of hidden
// global clients. In strict mode analytics write failures fail the request;
// otherwise they are logged and the serve completes anyway.
type Tracking struct {
	banners  port.BannerProvider
	sink     port.AnalyticsSink
	counters port.CounterStore
	agents   port.AgentParser
	logger   *slog.Logger
	strict   bool

	now func() time.Time
}

// NewTracking creates the pipeline with the provided collaborators.
func NewTracking(
	banners port.BannerProvider,
	sink port.AnalyticsSink,
	counters port.CounterStore,
	agents port.AgentParser,
	logger *slog.Logger,
	strict bool,
) *Tracking {
	return &Tracking{
		banners:  banners,
		sink:     sink,
		counters: counters,
		agents:   agents,
		logger:   logger,
		strict:   strict,
		now:      time.Now,
	}
}

// ShowBanner records a show event for an active banner and returns the
// banner plus a click URL embedding a fresh correlation identifier and the
// show timestamp. The server keeps no pending state between show and click;
// both parameters are echoed back by the client.
func (t *Tracking) ShowBanner(ctx context.Context, req port.ShowRequest) (*port.ShowResult, error) {
	banner, err := t.banners.ActiveBanner(ctx, req.BannerID)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, fmt.Errorf("banner %d: %w", req.BannerID, port.ErrNotFound)
	}

	eventID := uuid.New()
	ts := t.now().UTC()
	info := t.agents.Parse(req.UserAgent)

	ev := domain.ShowEvent{
		EventID:    eventID,
		Timestamp:  ts,
		BannerID:   banner.ID,
		CampaignID: banner.CampaignID,
		UserID:     req.UserID,
		DeviceType: &info.DeviceType,
	}
	if ip := clientIP(req.ForwardedFor, req.RemoteAddr); ip != "" {
		ev.IPAddress = &ip
	}
	if req.UserAgent != "" {
		ev.UserAgent = &req.UserAgent
	}
	setString(&ev.BrowserFamily, info.BrowserFamily)
	setString(&ev.BrowserVersion, info.BrowserVersion)
	setString(&ev.OSFamily, info.OSFamily)
	setString(&ev.OSVersion, info.OSVersion)

	if err = t.sink.LogShow(ctx, ev); err != nil {
		if t.strict {
			return nil, err
		}
		t.logger.Error("show event write failed",
			slog.Any("error", err), slog.Int64("banner_id", banner.ID))
	}
	if err = t.counters.IncrementShows(ctx, banner.ID); err != nil {
		t.logger.Warn("shows counter increment failed",
			slog.Any("error", err), slog.Int64("banner_id", banner.ID))
	}

	return &port.ShowResult{
		Banner:   *banner,
		EventID:  eventID,
		ShowTime: ts,
		ClickURL: clickURL(banner.ID, eventID, ts),
	}, nil
}

// HandleClick records a click event keyed by the echoed correlation
// identifier and returns the banner's destination URL. The identifier must
// be present; its value is never checked against the shows table, an
// accepted trust boundary on a public endpoint.
func (t *Tracking) HandleClick(ctx context.Context, req port.ClickRequest) (string, error) {
	banner, err := t.banners.ActiveBanner(ctx, req.BannerID)
	if err != nil {
		return "", err
	}
	if banner == nil {
		return "", fmt.Errorf("banner %d: %w", req.BannerID, port.ErrNotFound)
	}
	if req.ShowUUID == "" {
		return "", fmt.Errorf("missing show_uuid: %w", port.ErrNotFound)
	}
	showID, err := uuid.Parse(req.ShowUUID)
	if err != nil {
		return "", fmt.Errorf("malformed show_uuid: %w", port.ErrNotFound)
	}
	dest := banner.DestinationURL()
	if dest == "" {
		return "", fmt.Errorf("banner %d has no destination: %w", banner.ID, port.ErrNotFound)
	}

	ts := t.now().UTC()
	ev := domain.ClickEvent{
		ShowEventID: showID,
		Timestamp:   ts,
		BannerID:    banner.ID,
		CampaignID:  banner.CampaignID,
	}
	if req.ShowTime != 0 {
		ttc := epoch(ts) - req.ShowTime
		ev.TimeToClick = &ttc
	}
	setString(&ev.RefererURL, req.Referer)

	if err = t.sink.LogClick(ctx, ev); err != nil {
		if t.strict {
			return "", err
		}
		t.logger.Error("click event write failed",
			slog.Any("error", err), slog.Int64("banner_id", banner.ID))
	}
	if err = t.counters.IncrementClicks(ctx, banner.ID); err != nil {
		t.logger.Warn("clicks counter increment failed",
			slog.Any("error", err), slog.Int64("banner_id", banner.ID))
	}

	return dest, nil
}

func clickURL(bannerID int64, eventID uuid.UUID, ts time.Time) string {
	q := url.Values{}
	q.Set("show_uuid", eventID.String())
	q.Set("show_time", strconv.FormatFloat(epoch(ts), 'f', -1, 64))
	return fmt.Sprintf("/banner/click/%d?%s", bannerID, q.Encode())
}

func epoch(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// clientIP prefers the first hop of X-Forwarded-For and falls back to the
// direct peer address.
func clientIP(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

func setString(dst **string, v string) {
	if v != "" {
		*dst = &v
	}
}
