package usecase

import (
	"context"
	"log/slog"

	"reklamito/internal/core/access"
	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

// Admin implements the management surface. Object-level checks go through
// the access evaluator with a staff grant resolved from the directory;
// listings rely on the repositories' SQL scoping, which mirrors the same
// predicates set-wise.
type Admin struct {
	clients     port.ClientRepository
	campaigns   port.CampaignRepository
	banners     port.BannerRepository
	staff       port.StaffDirectory
	counters    port.CounterStore
	billing     port.BillingRepository
	experiments port.ExperimentRepository
	logger      *slog.Logger
}

// NewAdmin creates the management usecase.
func NewAdmin(
	clients port.ClientRepository,
	campaigns port.CampaignRepository,
	banners port.BannerRepository,
	staff port.StaffDirectory,
	counters port.CounterStore,
	billing port.BillingRepository,
	experiments port.ExperimentRepository,
	logger *slog.Logger,
) *Admin {
	return &Admin{
		clients:     clients,
		campaigns:   campaigns,
		banners:     banners,
		staff:       staff,
		counters:    counters,
		billing:     billing,
		experiments: experiments,
		logger:      logger,
	}
}

// grantFor resolves the actor's staff grant on a client. Superusers skip
// the lookup; the evaluator short-circuits on the flag anyway.
func (a *Admin) grantFor(ctx context.Context, actor domain.User, clientID int64) (access.Grant, error) {
	if actor.IsSuperuser {
		return access.Grant{}, nil
	}
	role, ok, err := a.staff.RoleFor(ctx, actor.ID, clientID)
	if err != nil {
		return access.Grant{}, err
	}
	return access.Grant{Role: role, IsStaff: ok}, nil
}

// clientOf loads the client scoping a campaign, for permission evaluation.
func (a *Admin) clientOf(ctx context.Context, campaign domain.Campaign) (*domain.Client, error) {
	return a.clients.Client(ctx, campaign.ClientID)
}
