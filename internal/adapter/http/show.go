package httpadapter

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"reklamito/internal/core/port"
)

// showPage renders a served banner. The click link carries the correlation
// parameters produced by the tracking pipeline; nothing about the show is
// kept server-side.
var showPage = template.Must(template.New("show").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Headline}}</title></head>
<body>
<a href="{{.ClickURL}}">
{{- if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Headline}}">{{end}}
<p>{{.Headline}}</p>
</a>
</body>
</html>
`))

type showPageData struct {
	Headline string
	ImageURL string
	ClickURL string
}

// handleShow serves a banner page and records the impression. Unknown or
// inactive banners produce 404. Recording failures surface as 500 only in
// strict mode; the use case swallows them otherwise.
func (h *Handler) handleShow(w http.ResponseWriter, r *http.Request) {
	bannerID, ok := h.pathID(w, r, "bannerID")
	if !ok {
		return
	}

	req := port.ShowRequest{
		BannerID:     bannerID,
		RemoteAddr:   r.RemoteAddr,
		ForwardedFor: r.Header.Get("X-Forwarded-For"),
		UserAgent:    r.UserAgent(),
		Referer:      r.Referer(),
	}
	if user, ok := userFrom(r.Context()); ok {
		req.UserID = &user.ID
	}

	res, err := h.tracking.ShowBanner(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	var content struct {
		Headline string `json:"headline"`
		ImageURL string `json:"image_url"`
	}
	// Malformed content still renders; the page just ends up bare.
	_ = json.Unmarshal(res.Banner.Content, &content)

	data := showPageData{
		Headline: content.Headline,
		ImageURL: content.ImageURL,
		ClickURL: res.ClickURL,
	}
	if data.Headline == "" {
		data.Headline = res.Banner.Name
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := showPage.Execute(w, data); err != nil {
		h.logger.Error("render show page error", slog.Any("error", err))
	}
}
