package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"log/slog"

	"reklamito/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. The public serving endpoints live outside the API group and need no
// authentication; the management API under /api/v1 requires a bearer token
// resolved through the identity provider.
type Handler struct {
	tracking port.TrackingUseCase
	admin    port.AdminUseCase
	identity port.IdentityProvider
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(tracking port.TrackingUseCase, admin port.AdminUseCase, identity port.IdentityProvider, logger *slog.Logger) *Handler {
	h := &Handler{tracking: tracking, admin: admin, identity: identity, logger: logger}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/banner/show/{bannerID}", h.withOptionalUser(h.handleShow))
	r.Get("/banner/click/{bannerID}", h.handleClick)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.requireUser)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.handleListClients)
			r.Post("/", h.handleCreateClient)
			r.Get("/{id}", h.handleGetClient)
			r.Put("/{id}", h.handleUpdateClient)
			r.Delete("/{id}", h.handleDeleteClient)
			r.Get("/{id}/staff", h.handleListStaff)
			r.Post("/{id}/staff", h.handleAddStaff)
			r.Delete("/{id}/staff/{userID}", h.handleRemoveStaff)
			r.Get("/{id}/invoices", h.handleClientInvoices)
			r.Get("/{id}/balance", h.handleClientBalance)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/selectable-clients", h.handleSelectableClients)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.Get("/{id}/experiments", h.handleCampaignExperiments)
		})

		r.Route("/banners", func(r chi.Router) {
			r.Get("/", h.handleListBanners)
			r.Post("/", h.handleCreateBanner)
			r.Get("/selectable-campaigns", h.handleSelectableCampaigns)
			r.Get("/{id}", h.handleGetBanner)
			r.Put("/{id}", h.handleUpdateBanner)
			r.Delete("/{id}", h.handleDeleteBanner)
			r.Get("/{id}/counters", h.handleBannerCounters)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
