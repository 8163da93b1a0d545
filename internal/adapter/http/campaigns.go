package httpadapter

import (
	"net/http"
	"time"

	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

type campaignJSON struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ClientID  int64     `json:"client_id"`
	AuthorID  int64     `json:"author_id"`
	Budget    int64     `json:"budget"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type campaignInputJSON struct {
	Name      string    `json:"name"`
	ClientID  int64     `json:"client_id"`
	AuthorID  int64     `json:"author_id"`
	Budget    int64     `json:"budget"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
}

func toCampaignJSON(c domain.Campaign) campaignJSON {
	return campaignJSON{
		ID:        c.ID,
		Name:      c.Name,
		ClientID:  c.ClientID,
		AuthorID:  c.AuthorID,
		Budget:    c.Budget,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCampaignListJSON(cs []domain.Campaign) []campaignJSON {
	out := make([]campaignJSON, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignJSON(c))
	}
	return out
}

func (in campaignInputJSON) toInput() port.CampaignInput {
	return port.CampaignInput{
		Name:      in.Name,
		ClientID:  in.ClientID,
		AuthorID:  in.AuthorID,
		Budget:    in.Budget,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		IsActive:  in.IsActive,
	}
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	campaigns, err := h.admin.ListCampaigns(r.Context(), actor)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignListJSON(campaigns))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	campaign, err := h.admin.GetCampaign(r.Context(), actor, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignJSON(*campaign))
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	var in campaignInputJSON
	if !h.decodeBody(w, r, &in) {
		return
	}
	campaign, err := h.admin.CreateCampaign(r.Context(), actor, in.toInput())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignJSON(*campaign))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var in campaignInputJSON
	if !h.decodeBody(w, r, &in) {
		return
	}
	campaign, err := h.admin.UpdateCampaign(r.Context(), actor, id, in.toInput())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignJSON(*campaign))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteCampaign(r.Context(), actor, id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSelectableClients(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	clients, err := h.admin.SelectableClients(r.Context(), actor)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClientListJSON(clients))
}

type experimentResultJSON struct {
	VariantID   int64     `json:"variant_id"`
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Spend       int64     `json:"spend"`
	CTR         float64   `json:"ctr"`
}

type experimentJSON struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Type         string                 `json:"type"`
	CampaignID   int64                  `json:"campaign_id"`
	StartDate    time.Time              `json:"start_date"`
	EndDate      *time.Time             `json:"end_date,omitempty"`
	IsActive     bool                   `json:"is_active"`
	TargetMetric string                 `json:"target_metric"`
	Results      []experimentResultJSON `json:"results"`
}

func (h *Handler) handleCampaignExperiments(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	campaignID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	views, err := h.admin.CampaignExperiments(r.Context(), actor, campaignID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]experimentJSON, 0, len(views))
	for _, v := range views {
		results := make([]experimentResultJSON, 0, len(v.Results))
		for _, res := range v.Results {
			results = append(results, experimentResultJSON{
				VariantID:   res.VariantID,
				Date:        res.Date,
				Impressions: res.Impressions,
				Clicks:      res.Clicks,
				Conversions: res.Conversions,
				Spend:       res.Spend,
				CTR:         res.CTR,
			})
		}
		out = append(out, experimentJSON{
			ID:           v.Experiment.ID,
			Name:         v.Experiment.Name,
			Type:         string(v.Experiment.Type),
			CampaignID:   v.Experiment.CampaignID,
			StartDate:    v.Experiment.StartDate,
			EndDate:      v.Experiment.EndDate,
			IsActive:     v.Experiment.IsActive,
			TargetMetric: v.Experiment.TargetMetric,
			Results:      results,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}
