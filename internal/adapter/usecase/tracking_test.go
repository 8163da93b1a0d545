package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
	"reklamito/internal/core/port/mocks"
	"reklamito/internal/useragent"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func activeBanner() *domain.Banner {
	return &domain.Banner{
		ID:         7,
		Name:       "spring sale",
		CampaignID: 3,
		Content:    json.RawMessage(`{"click_url":"https://example.com/landing","headline":"Sale"}`),
		IsActive:   true,
	}
}

func newTestTracking(t *testing.T, strict bool) (*Tracking, *mocks.MockBannerProvider, *mocks.MockAnalyticsSink, *mocks.MockCounterStore) {
	banners := mocks.NewMockBannerProvider(t)
	sink := mocks.NewMockAnalyticsSink(t)
	counters := mocks.NewMockCounterStore(t)
	tr := NewTracking(banners, sink, counters, useragent.New(), testLogger, strict)
	return tr, banners, sink, counters
}

func TestShowBanner(t *testing.T) {
	tr, banners, sink, counters := newTestTracking(t, false)
	shown := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return shown }

	banners.EXPECT().ActiveBanner(mock.Anything, int64(7)).Return(activeBanner(), nil)

	var logged domain.ShowEvent
	sink.EXPECT().
		LogShow(mock.Anything, mock.AnythingOfType("domain.ShowEvent")).
		Run(func(_ context.Context, ev domain.ShowEvent) { logged = ev }).
		Return(nil)
	counters.EXPECT().IncrementShows(mock.Anything, int64(7)).Return(nil)

	userID := int64(42)
	res, err := tr.ShowBanner(context.Background(), port.ShowRequest{
		BannerID:     7,
		RemoteAddr:   "10.0.0.1:51234",
		ForwardedFor: "203.0.113.9, 10.0.0.1",
		UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0.0.0",
		UserID:       &userID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), res.Banner.ID)
	assert.Equal(t, shown, res.ShowTime)
	assert.NotEqual(t, uuid.Nil, res.EventID)

	// The click URL carries the same correlation id and the epoch show time.
	u, err := url.Parse(res.ClickURL)
	require.NoError(t, err)
	assert.Equal(t, "/banner/click/7", u.Path)
	assert.Equal(t, res.EventID.String(), u.Query().Get("show_uuid"))
	assert.Equal(t, fmt.Sprintf("%d", shown.Unix()), u.Query().Get("show_time"))

	// The recorded event picks up the forwarded IP, user and agent info.
	assert.Equal(t, res.EventID, logged.EventID)
	require.NotNil(t, logged.IPAddress)
	assert.Equal(t, "203.0.113.9", *logged.IPAddress)
	require.NotNil(t, logged.UserID)
	assert.Equal(t, int64(42), *logged.UserID)
	require.NotNil(t, logged.BrowserFamily)
	assert.Equal(t, "Chrome", *logged.BrowserFamily)
	require.NotNil(t, logged.DeviceType)
	assert.Equal(t, domain.DeviceDesktop, *logged.DeviceType)
}

func TestShowBannerFreshEventIDs(t *testing.T) {
	tr, banners, sink, counters := newTestTracking(t, false)

	banners.EXPECT().ActiveBanner(mock.Anything, int64(7)).Return(activeBanner(), nil)
	sink.EXPECT().LogShow(mock.Anything, mock.AnythingOfType("domain.ShowEvent")).Return(nil)
	counters.EXPECT().IncrementShows(mock.Anything, int64(7)).Return(nil)

	first, err := tr.ShowBanner(context.Background(), port.ShowRequest{BannerID: 7})
	require.NoError(t, err)
	second, err := tr.ShowBanner(context.Background(), port.ShowRequest{BannerID: 7})
	require.NoError(t, err)

	assert.NotEqual(t, first.EventID, second.EventID)
}

func TestShowBannerNotFound(t *testing.T) {
	tr, banners, _, _ := newTestTracking(t, false)

	// ActiveBanner reports inactive and missing banners the same way.
	banners.EXPECT().ActiveBanner(mock.Anything, int64(99)).Return(nil, nil)

	_, err := tr.ShowBanner(context.Background(), port.ShowRequest{BannerID: 99})
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestShowBannerSinkFailure(t *testing.T) {
	writeErr := &port.AnalyticsWriteError{Table: "shows", Err: errors.New("connection refused")}

	t.Run("swallowed by default", func(t *testing.T) {
		tr, banners, sink, counters := newTestTracking(t, false)
		banners.EXPECT().ActiveBanner(mock.Anything, int64(7)).Return(activeBanner(), nil)
		sink.EXPECT().LogShow(mock.Anything, mock.AnythingOfType("domain.ShowEvent")).Return(writeErr)
		counters.EXPECT().IncrementShows(mock.Anything, int64(7)).Return(nil)

		res, err := tr.ShowBanner(context.Background(), port.ShowRequest{BannerID: 7})
		require.NoError(t, err)
		assert.NotEmpty(t, res.ClickURL)
	})

	t.Run("propagated in strict mode", func(t *testing.T) {
		tr, banners, sink, _ := newTestTracking(t, true)
		banners.EXPECT().ActiveBanner(mock.Anything, int64(7)).Return(activeBanner(), nil)
		sink.EXPECT().LogShow(mock.Anything, mock.AnythingOfType("domain.ShowEvent")).Return(writeErr)

		_, err := tr.ShowBanner(context.Background(), port.ShowRequest{BannerID: 7})
		var aw *port.AnalyticsWriteError
		require.ErrorAs(t, err, &aw)
		assert.Equal(t, "shows", aw.Table)
	})
}

func TestShowBannerCounterFailureIsNonFatal(t *testing.T) {
	tr, banners, sink, counters := newTestTracking(t, true)

	banners.EXPECT().ActiveBanner(mock.Anything, int64(7)).Return(activeBanner(), nil)
	sink.EXPECT().LogShow(mock.Anything, mock.AnythingOfType("domain.ShowEvent")).Return(nil)
	// A counter failure never fails the serve, strict mode included.
	counters.EXPECT().IncrementShows(mock.Anything, int64(7)).Return(errors.New("redis down"))

	_, err := tr.ShowBanner(context.Background(), port.ShowRequest{BannerID: 7})
	assert.NoError(t, err)
}

func TestHandleClick(t *testing.T) {
	tr, banners, sink, counters := newTestTracking(t, false)
	clicked := time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC)
	tr.now = func() time.Time { return clicked }

	banners.EXPECT().ActiveBanner(mock.Anything, int64(7)).Return(activeBanner(), nil)

	var logged domain.ClickEvent
	sink.EXPECT().
		LogClick(mock.Anything, mock.AnythingOfType("domain.ClickEvent")).
		Run(func(_ context.Context, ev domain.ClickEvent) { logged = ev }).
		Return(nil)
	counters.EXPECT().IncrementClicks(mock.Anything, int64(7)).Return(nil)

	showID := uuid.New()
	shown := clicked.Add(-5 * time.Second)
	dest, err := tr.HandleClick(context.Background(), port.ClickRequest{
		BannerID: 7,
		ShowUUID: showID.String(),
		ShowTime: float64(shown.UnixNano()) / 1e9,
		Referer:  "https://publisher.example/page",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/landing", dest)
	assert.Equal(t, showID, logged.ShowEventID)
	require.NotNil(t, logged.TimeToClick)
	assert.InDelta(t, 5.0, *logged.TimeToClick, 0.001)
	require.NotNil(t, logged.RefererURL)
	assert.Equal(t, "https://publisher.example/page", *logged.RefererURL)
}

func TestHandleClickWithoutShowTime(t *testing.T) {
	tr, banners, sink, counters := newTestTracking(t, false)

	banners.EXPECT().ActiveBanner(mock.Anything, int64(7)).Return(activeBanner(), nil)

	var logged domain.ClickEvent
	sink.EXPECT().
		LogClick(mock.Anything, mock.AnythingOfType("domain.ClickEvent")).
		Run(func(_ context.Context, ev domain.ClickEvent) { logged = ev }).
		Return(nil)
	counters.EXPECT().IncrementClicks(mock.Anything, int64(7)).Return(nil)

	_, err := tr.HandleClick(context.Background(), port.ClickRequest{
		BannerID: 7,
		ShowUUID: uuid.NewString(),
	})
	require.NoError(t, err)
	assert.Nil(t, logged.TimeToClick)
}

func TestHandleClickRejections(t *testing.T) {
	cases := []struct {
		name   string
		banner *domain.Banner
		req    port.ClickRequest
	}{
		{
			name:   "inactive banner",
			banner: nil,
			req:    port.ClickRequest{BannerID: 7, ShowUUID: uuid.NewString()},
		},
		{
			name:   "missing show_uuid",
			banner: activeBanner(),
			req:    port.ClickRequest{BannerID: 7},
		},
		{
			name:   "malformed show_uuid",
			banner: activeBanner(),
			req:    port.ClickRequest{BannerID: 7, ShowUUID: "not-a-uuid"},
		},
		{
			name: "no destination in content",
			banner: &domain.Banner{
				ID: 7, CampaignID: 3, IsActive: true,
				Content: json.RawMessage(`{"headline":"Sale"}`),
			},
			req: port.ClickRequest{BannerID: 7, ShowUUID: uuid.NewString()},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, banners, _, _ := newTestTracking(t, false)
			banners.EXPECT().ActiveBanner(mock.Anything, int64(7)).Return(tc.banner, nil)

			_, err := tr.HandleClick(context.Background(), tc.req)
			assert.ErrorIs(t, err, port.ErrNotFound)
		})
	}
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "203.0.113.9", clientIP("203.0.113.9, 10.0.0.1", "10.0.0.1:51234"))
	assert.Equal(t, "10.0.0.1", clientIP("", "10.0.0.1:51234"))
	assert.Equal(t, "weird", clientIP("", "weird"))
}

func TestClickURLEncoding(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 250_000_000, time.UTC)
	got := clickURL(7, uuid.MustParse("11111111-2222-3333-4444-555555555555"), ts)

	assert.True(t, strings.HasPrefix(got, "/banner/click/7?"))
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", u.Query().Get("show_uuid"))
	assert.Equal(t, "1748779200.25", u.Query().Get("show_time"))
}
