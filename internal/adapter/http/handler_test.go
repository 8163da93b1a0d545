package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// trackingStub lets each test script the serving surface without a real
// pipeline behind it.
type trackingStub struct {
	show  func(ctx context.Context, req port.ShowRequest) (*port.ShowResult, error)
	click func(ctx context.Context, req port.ClickRequest) (string, error)
}

func (s trackingStub) ShowBanner(ctx context.Context, req port.ShowRequest) (*port.ShowResult, error) {
	return s.show(ctx, req)
}

func (s trackingStub) HandleClick(ctx context.Context, req port.ClickRequest) (string, error) {
	return s.click(ctx, req)
}

// adminStub embeds the interface so tests override only what they call;
// anything else panics with a nil method.
type adminStub struct {
	port.AdminUseCase
	listClients func(ctx context.Context, actor domain.User) ([]port.ClientView, error)
	getClient   func(ctx context.Context, actor domain.User, id int64) (*port.ClientView, error)
}

func (s adminStub) ListClients(ctx context.Context, actor domain.User) ([]port.ClientView, error) {
	return s.listClients(ctx, actor)
}

func (s adminStub) GetClient(ctx context.Context, actor domain.User, id int64) (*port.ClientView, error) {
	return s.getClient(ctx, actor, id)
}

// identityStub resolves a single known token.
type identityStub struct {
	token string
	user  domain.User
}

func (s identityStub) UserByToken(_ context.Context, token string) (*domain.User, error) {
	if token == s.token {
		u := s.user
		return &u, nil
	}
	return nil, nil
}

func newTestHandler(tracking port.TrackingUseCase, admin port.AdminUseCase) *Handler {
	identity := identityStub{token: "token-alice", user: domain.User{ID: 2, Username: "alice"}}
	return NewHandler(tracking, admin, identity, testLogger)
}

func TestShowEndpoint(t *testing.T) {
	banner := domain.Banner{
		ID:         7,
		Name:       "spring sale",
		CampaignID: 3,
		Content:    json.RawMessage(`{"click_url":"https://example.com","headline":"Big Sale","image_url":"https://cdn.example.com/b.png"}`),
		IsActive:   true,
	}
	clickPath := "/banner/click/7?show_time=1748779200&show_uuid=" + uuid.NewString()

	var seen port.ShowRequest
	h := newTestHandler(trackingStub{
		show: func(_ context.Context, req port.ShowRequest) (*port.ShowResult, error) {
			seen = req
			return &port.ShowResult{
				Banner:   banner,
				EventID:  uuid.New(),
				ShowTime: time.Now(),
				ClickURL: clickPath,
			}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/banner/show/7", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Referer", "https://publisher.example/page")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Big Sale")
	assert.Contains(t, body, "https://cdn.example.com/b.png")
	assert.Contains(t, body, "/banner/click/7?show_time=1748779200")

	assert.Equal(t, int64(7), seen.BannerID)
	assert.Equal(t, "test-agent", seen.UserAgent)
	assert.Equal(t, "https://publisher.example/page", seen.Referer)
	assert.Nil(t, seen.UserID, "anonymous show carries no user")
}

func TestShowEndpointOptionalAuth(t *testing.T) {
	var seen port.ShowRequest
	h := newTestHandler(trackingStub{
		show: func(_ context.Context, req port.ShowRequest) (*port.ShowResult, error) {
			seen = req
			return &port.ShowResult{Banner: domain.Banner{ID: 7}, ClickURL: "/banner/click/7"}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/banner/show/7", nil)
	req.Header.Set("Authorization", "Bearer token-alice")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen.UserID)
	assert.Equal(t, int64(2), *seen.UserID)

	// An unknown token never blocks a public show.
	req = httptest.NewRequest(http.MethodGet, "/banner/show/7", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShowEndpointNotFound(t *testing.T) {
	h := newTestHandler(trackingStub{
		show: func(_ context.Context, req port.ShowRequest) (*port.ShowResult, error) {
			return nil, fmt.Errorf("banner %d: %w", req.BannerID, port.ErrNotFound)
		},
	}, nil)

	for _, path := range []string{"/banner/show/99", "/banner/show/abc"} {
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestClickEndpointRedirects(t *testing.T) {
	showID := uuid.NewString()

	var seen port.ClickRequest
	h := newTestHandler(trackingStub{
		click: func(_ context.Context, req port.ClickRequest) (string, error) {
			seen = req
			return "https://example.com/landing", nil
		},
	}, nil)

	target := fmt.Sprintf("/banner/click/7?show_uuid=%s&show_time=1748779200.25", showID)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/landing", rec.Header().Get("Location"))
	assert.Equal(t, showID, seen.ShowUUID)
	assert.InDelta(t, 1748779200.25, seen.ShowTime, 0.0001)
}

func TestClickEndpointNotFound(t *testing.T) {
	h := newTestHandler(trackingStub{
		click: func(_ context.Context, _ port.ClickRequest) (string, error) {
			return "", fmt.Errorf("missing show_uuid: %w", port.ErrNotFound)
		},
	}, nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/banner/click/7", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	h := newTestHandler(nil, adminStub{})

	for name, header := range map[string]string{
		"no header":     "",
		"wrong scheme":  "Basic abc",
		"unknown token": "Bearer bogus",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestListClientsEndpoint(t *testing.T) {
	var actor domain.User
	h := newTestHandler(nil, adminStub{
		listClients: func(_ context.Context, a domain.User) ([]port.ClientView, error) {
			actor = a
			return []port.ClientView{
				{ID: 10, Name: "Aurora Media", TaxID: "7701234567", OwnerID: 2},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/", nil)
	req.Header.Set("Authorization", "Bearer token-alice")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), actor.ID, "actor resolved from the token")

	var got []clientJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Aurora Media", got[0].Name)
	assert.Nil(t, got[0].Hidden)
	assert.NotContains(t, rec.Body.String(), "hidden", "hidden is omitted for non-superusers")
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("client 10: %w", port.ErrNotFound), http.StatusNotFound},
		{"denied", fmt.Errorf("client 10: %w", port.ErrPermissionDenied), http.StatusForbidden},
		{"validation", fmt.Errorf("bad input: %w", port.ErrValidation), http.StatusUnprocessableEntity},
		{"unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(nil, adminStub{
				getClient: func(context.Context, domain.User, int64) (*port.ClientView, error) {
					return nil, tc.err
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/10", nil)
			req.Header.Set("Authorization", "Bearer token-alice")
			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tc.code == http.StatusInternalServerError {
				assert.Equal(t, "internal error", body.Error, "internal detail never leaks")
				assert.False(t, strings.Contains(body.Error, "connection"))
			}
		})
	}
}
