package port

import (
	"context"
	"encoding/json"
	"time"

	"reklamito/internal/core/domain"
)

// AdminUseCase is the management surface over the Client/Campaign/Banner
// hierarchy. Every operation takes the acting user resolved by the identity
// middleware and enforces the permission model; listings are scoped in SQL
// by the repositories.
type AdminUseCase interface {
	ListClients(ctx context.Context, actor domain.User) ([]ClientView, error)
	GetClient(ctx context.Context, actor domain.User, id int64) (*ClientView, error)
	CreateClient(ctx context.Context, actor domain.User, in ClientInput) (*ClientView, error)
	UpdateClient(ctx context.Context, actor domain.User, id int64, in ClientInput) (*ClientView, error)
	// DeleteClient always returns ErrPermissionDenied: clients are
	// soft-deleted by hiding them.
	DeleteClient(ctx context.Context, actor domain.User, id int64) error

	ListStaff(ctx context.Context, actor domain.User, clientID int64) ([]domain.StaffMembership, error)
	AddStaff(ctx context.Context, actor domain.User, clientID, userID int64, role domain.StaffRole) error
	RemoveStaff(ctx context.Context, actor domain.User, clientID, userID int64) error

	ListCampaigns(ctx context.Context, actor domain.User) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, actor domain.User, id int64) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, actor domain.User, in CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, actor domain.User, id int64, in CampaignInput) (*domain.Campaign, error)
	// DeleteCampaign always returns ErrPermissionDenied: campaigns are only
	// deactivated.
	DeleteCampaign(ctx context.Context, actor domain.User, id int64) error
	SelectableClients(ctx context.Context, actor domain.User) ([]ClientView, error)

	ListBanners(ctx context.Context, actor domain.User) ([]domain.Banner, error)
	GetBanner(ctx context.Context, actor domain.User, id int64) (*domain.Banner, error)
	CreateBanner(ctx context.Context, actor domain.User, in BannerInput) (*domain.Banner, error)
	UpdateBanner(ctx context.Context, actor domain.User, id int64, in BannerInput) (*domain.Banner, error)
	DeleteBanner(ctx context.Context, actor domain.User, id int64) error
	SelectableCampaigns(ctx context.Context, actor domain.User) ([]domain.Campaign, error)
	// BannerCounters reads the volatile show/click counters, gated by view
	// permission on the banner.
	BannerCounters(ctx context.Context, actor domain.User, bannerID int64) (*BannerCounters, error)

	ClientInvoices(ctx context.Context, actor domain.User, clientID int64) ([]domain.Invoice, error)
	ClientBalance(ctx context.Context, actor domain.User, clientID int64) (*domain.ClientBalance, error)
	CampaignExperiments(ctx context.Context, actor domain.User, campaignID int64) ([]ExperimentView, error)
}

// ClientView is a client as exposed to a given actor. Hidden is nil for
// non-superusers; the flag exists only on the superuser surface.
type ClientView struct {
	ID        int64
	Name      string
	TaxID     string
	OwnerID   int64
	Hidden    *bool
	CreatedAt time.Time
}

// ClientInput carries client create/update fields. OwnerID, TaxID changes
// post-create and Hidden are honoured for superusers only; for everyone
// else the stored values win silently, matching read-only form fields.
type ClientInput struct {
	Name    string
	TaxID   string
	OwnerID int64
	Hidden  *bool
}

// CampaignInput carries campaign create/update fields. AuthorID and, on
// update, ClientID are honoured for superusers only; the author is always
// forced to the acting user on non-superuser creation.
type CampaignInput struct {
	Name      string
	ClientID  int64
	AuthorID  int64
	Budget    int64
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
}

// BannerInput carries banner create/update fields. CampaignID changes
// post-create are honoured for superusers only.
type BannerInput struct {
	Name       string
	CampaignID int64
	Content    json.RawMessage
	IsActive   bool
}

// BannerCounters are the volatile per-banner counters. They may lag or
// reset relative to the authoritative analytics counts.
type BannerCounters struct {
	Shows  int64
	Clicks int64
}

// ExperimentView pairs an experiment with its aggregated per-variant daily
// results, CTR included.
type ExperimentView struct {
	Experiment domain.Experiment
	Results    []ExperimentResultView
}

// ExperimentResultView is a result row with its derived CTR.
type ExperimentResultView struct {
	domain.ExperimentResult
	CTR float64
}
