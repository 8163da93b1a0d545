package httpadapter

import (
	"net/http"
	"strconv"

	"reklamito/internal/core/port"
)

// handleClick records a click and redirects to the banner's destination.
// The correlation parameters come back from the client as query values; a
// missing or unparsable show_time leaves time-to-click unset rather than
// failing the redirect.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	bannerID, ok := h.pathID(w, r, "bannerID")
	if !ok {
		return
	}

	q := r.URL.Query()
	req := port.ClickRequest{
		BannerID: bannerID,
		ShowUUID: q.Get("show_uuid"),
		Referer:  r.Referer(),
	}
	if st := q.Get("show_time"); st != "" {
		if v, err := strconv.ParseFloat(st, 64); err == nil {
			req.ShowTime = v
		}
	}

	destination, err := h.tracking.HandleClick(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	http.Redirect(w, r, destination, http.StatusFound)
}
