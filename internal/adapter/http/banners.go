package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

type bannerJSON struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	CampaignID int64           `json:"campaign_id"`
	Content    json.RawMessage `json:"content"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
}

type bannerInputJSON struct {
	Name       string          `json:"name"`
	CampaignID int64           `json:"campaign_id"`
	Content    json.RawMessage `json:"content"`
	IsActive   bool            `json:"is_active"`
}

func toBannerJSON(b domain.Banner) bannerJSON {
	return bannerJSON{
		ID:         b.ID,
		Name:       b.Name,
		CampaignID: b.CampaignID,
		Content:    b.Content,
		IsActive:   b.IsActive,
		CreatedAt:  b.CreatedAt,
	}
}

func (h *Handler) handleListBanners(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	banners, err := h.admin.ListBanners(r.Context(), actor)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]bannerJSON, 0, len(banners))
	for _, b := range banners {
		out = append(out, toBannerJSON(b))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetBanner(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	banner, err := h.admin.GetBanner(r.Context(), actor, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBannerJSON(*banner))
}

func (h *Handler) handleCreateBanner(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	var in bannerInputJSON
	if !h.decodeBody(w, r, &in) {
		return
	}
	banner, err := h.admin.CreateBanner(r.Context(), actor, port.BannerInput{
		Name:       in.Name,
		CampaignID: in.CampaignID,
		Content:    in.Content,
		IsActive:   in.IsActive,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toBannerJSON(*banner))
}

func (h *Handler) handleUpdateBanner(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var in bannerInputJSON
	if !h.decodeBody(w, r, &in) {
		return
	}
	banner, err := h.admin.UpdateBanner(r.Context(), actor, id, port.BannerInput{
		Name:       in.Name,
		CampaignID: in.CampaignID,
		Content:    in.Content,
		IsActive:   in.IsActive,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBannerJSON(*banner))
}

func (h *Handler) handleDeleteBanner(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteBanner(r.Context(), actor, id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSelectableCampaigns(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	campaigns, err := h.admin.SelectableCampaigns(r.Context(), actor)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignListJSON(campaigns))
}

type countersJSON struct {
	Shows  int64 `json:"shows"`
	Clicks int64 `json:"clicks"`
}

func (h *Handler) handleBannerCounters(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	counters, err := h.admin.BannerCounters(r.Context(), actor, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, countersJSON{Shows: counters.Shows, Clicks: counters.Clicks})
}
