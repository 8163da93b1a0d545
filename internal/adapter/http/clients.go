package httpadapter

import (
	"net/http"
	"time"

	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

type clientJSON struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	OwnerID   int64     `json:"owner_id"`
	Hidden    *bool     `json:"hidden,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type clientInputJSON struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	OwnerID int64  `json:"owner_id"`
	Hidden  *bool  `json:"hidden"`
}

func toClientJSON(v port.ClientView) clientJSON {
	return clientJSON{
		ID:        v.ID,
		Name:      v.Name,
		TaxID:     v.TaxID,
		OwnerID:   v.OwnerID,
		Hidden:    v.Hidden,
		CreatedAt: v.CreatedAt,
	}
}

func toClientListJSON(vs []port.ClientView) []clientJSON {
	out := make([]clientJSON, 0, len(vs))
	for _, v := range vs {
		out = append(out, toClientJSON(v))
	}
	return out
}

func (in clientInputJSON) toInput() port.ClientInput {
	return port.ClientInput{
		Name:    in.Name,
		TaxID:   in.TaxID,
		OwnerID: in.OwnerID,
		Hidden:  in.Hidden,
	}
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	clients, err := h.admin.ListClients(r.Context(), actor)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClientListJSON(clients))
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	client, err := h.admin.GetClient(r.Context(), actor, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClientJSON(*client))
}

func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	var in clientInputJSON
	if !h.decodeBody(w, r, &in) {
		return
	}
	client, err := h.admin.CreateClient(r.Context(), actor, in.toInput())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toClientJSON(*client))
}

func (h *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var in clientInputJSON
	if !h.decodeBody(w, r, &in) {
		return
	}
	client, err := h.admin.UpdateClient(r.Context(), actor, id, in.toInput())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClientJSON(*client))
}

func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteClient(r.Context(), actor, id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type staffJSON struct {
	UserID   int64  `json:"user_id"`
	ClientID int64  `json:"client_id"`
	Role     string `json:"role"`
}

func (h *Handler) handleListStaff(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	clientID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	staff, err := h.admin.ListStaff(r.Context(), actor, clientID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]staffJSON, 0, len(staff))
	for _, m := range staff {
		out = append(out, staffJSON{UserID: m.UserID, ClientID: m.ClientID, Role: m.Role.String()})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleAddStaff(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	clientID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var in struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}
	if !h.decodeBody(w, r, &in) {
		return
	}
	role, err := domain.ParseStaffRole(in.Role)
	if err != nil {
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	if err := h.admin.AddStaff(r.Context(), actor, clientID, in.UserID, role); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRemoveStaff(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	clientID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}
	if err := h.admin.RemoveStaff(r.Context(), actor, clientID, userID); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type invoiceJSON struct {
	ID         int64      `json:"id"`
	ClientID   int64      `json:"client_id"`
	Number     string     `json:"number"`
	Amount     int64      `json:"amount"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	DueDate    time.Time  `json:"due_date"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CampaignID *int64     `json:"campaign_id,omitempty"`
}

func (h *Handler) handleClientInvoices(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	clientID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	invoices, err := h.admin.ClientInvoices(r.Context(), actor, clientID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]invoiceJSON, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, invoiceJSON{
			ID:         inv.ID,
			ClientID:   inv.ClientID,
			Number:     inv.Number,
			Amount:     inv.Amount,
			Status:     string(inv.Status),
			CreatedAt:  inv.CreatedAt,
			DueDate:    inv.DueDate,
			PaidAt:     inv.PaidAt,
			CampaignID: inv.CampaignID,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

type balanceJSON struct {
	ClientID    int64     `json:"client_id"`
	Amount      int64     `json:"amount"`
	CreditLimit int64     `json:"credit_limit"`
	LastUpdated time.Time `json:"last_updated"`
}

func (h *Handler) handleClientBalance(w http.ResponseWriter, r *http.Request) {
	actor, _ := userFrom(r.Context())
	clientID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	balance, err := h.admin.ClientBalance(r.Context(), actor, clientID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceJSON{
		ClientID:    balance.ClientID,
		Amount:      balance.Amount,
		CreditLimit: balance.CreditLimit,
		LastUpdated: balance.LastUpdated,
	})
}
