package port

import (
	"context"

	"reklamito/internal/core/domain"
)

// BannerProvider is the narrow read surface the tracking pipeline depends
// on. ActiveBanner returns nil (no error) when the banner is missing or
// inactive.
type BannerProvider interface {
	ActiveBanner(ctx context.Context, id int64) (*domain.Banner, error)
}

// StaffDirectory resolves the staff role a user holds on a client. ok is
// false when no membership row exists.
type StaffDirectory interface {
	RoleFor(ctx context.Context, userID, clientID int64) (role domain.StaffRole, ok bool, err error)
}

// IdentityProvider resolves the acting user from an opaque API token.
// Returns nil (no error) for an unknown token.
type IdentityProvider interface {
	UserByToken(ctx context.Context, token string) (*domain.User, error)
}

// ClientRepository persists clients and their staff table. List queries
// apply the visibility scoping in SQL; single-record getters return nil (no
// error) when the row is absent.
type ClientRepository interface {
	Client(ctx context.Context, id int64) (*domain.Client, error)
	// Clients lists the clients visible to viewer: everything for
	// superusers, otherwise non-hidden clients the viewer owns or is staff
	// on, deduplicated.
	Clients(ctx context.Context, viewer domain.User) ([]domain.Client, error)
	CreateClient(ctx context.Context, c *domain.Client) error
	UpdateClient(ctx context.Context, c *domain.Client) error

	Staff(ctx context.Context, clientID int64) ([]domain.StaffMembership, error)
	// AddStaff inserts a membership row; a duplicate (user, client) pair is
	// rejected with ErrValidation.
	AddStaff(ctx context.Context, m domain.StaffMembership) error
	RemoveStaff(ctx context.Context, userID, clientID int64) error
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	Campaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// Campaigns lists campaigns visible in the admin listing: everything
	// for superusers, otherwise campaigns under clients the viewer owns or
	// holds admin/editor on. Readers are deliberately excluded here.
	Campaigns(ctx context.Context, viewer domain.User) ([]domain.Campaign, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// SelectableClients lists the clients the viewer may attach a new
	// campaign to: owned or admin/editor.
	SelectableClients(ctx context.Context, viewer domain.User) ([]domain.Client, error)
}

// BannerRepository persists banners.
type BannerRepository interface {
	Banner(ctx context.Context, id int64) (*domain.Banner, error)
	// Banners lists banners visible to the viewer: everything for
	// superusers, otherwise banners under clients the viewer owns or holds
	// any staff role on, reader included.
	Banners(ctx context.Context, viewer domain.User) ([]domain.Banner, error)
	CreateBanner(ctx context.Context, b *domain.Banner) error
	UpdateBanner(ctx context.Context, b *domain.Banner) error
	DeleteBanner(ctx context.Context, id int64) error
	// SelectableCampaigns lists the campaigns the viewer may attach a new
	// banner to: under clients owned or admin/editor.
	SelectableCampaigns(ctx context.Context, viewer domain.User) ([]domain.Campaign, error)
}

// BillingRepository reads the billing record group. The ad core never
// mutates it.
type BillingRepository interface {
	InvoicesByClient(ctx context.Context, clientID int64) ([]domain.Invoice, error)
	BalanceByClient(ctx context.Context, clientID int64) (*domain.ClientBalance, error)
}

// ExperimentRepository reads the experimentation record group.
type ExperimentRepository interface {
	ExperimentsByCampaign(ctx context.Context, campaignID int64) ([]domain.Experiment, error)
	ResultsByExperiment(ctx context.Context, experimentID int64) ([]domain.ExperimentResult, error)
}
