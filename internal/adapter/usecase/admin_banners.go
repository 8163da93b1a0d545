package usecase

import (
	"context"
	"fmt"

	"reklamito/internal/core/access"
	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

// bannerScope resolves the client a banner inherits its permissions from,
// via campaign -> client.
func (a *Admin) bannerScope(ctx context.Context, banner domain.Banner) (*domain.Client, error) {
	cp, err := a.campaigns.Campaign(ctx, banner.CampaignID)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		return nil, nil
	}
	return a.clients.Client(ctx, cp.ClientID)
}

// ListBanners returns the banners in the actor's listing. Unlike the
// campaign listing this one includes readers.
func (a *Admin) ListBanners(ctx context.Context, actor domain.User) ([]domain.Banner, error) {
	return a.banners.Banners(ctx, actor)
}

func (a *Admin) GetBanner(ctx context.Context, actor domain.User, id int64) (*domain.Banner, error) {
	b, err := a.banners.Banner(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("banner %d: %w", id, port.ErrNotFound)
	}
	client, err := a.bannerScope(ctx, *b)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("banner %d: scope missing: %w", id, port.ErrNotFound)
	}
	g, err := a.grantFor(ctx, actor, client.ID)
	if err != nil {
		return nil, err
	}
	if !access.CanViewBanner(actor, *client, g) {
		return nil, fmt.Errorf("banner %d: %w", id, port.ErrPermissionDenied)
	}
	return b, nil
}

// CreateBanner creates a banner under a campaign the actor may attach
// banners to: campaigns under clients owned or held with admin/editor.
func (a *Admin) CreateBanner(ctx context.Context, actor domain.User, in port.BannerInput) (*domain.Banner, error) {
	if in.Name == "" || in.CampaignID == 0 {
		return nil, fmt.Errorf("name and campaign_id are required: %w", port.ErrValidation)
	}
	cp, err := a.campaigns.Campaign(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		return nil, fmt.Errorf("campaign %d: %w", in.CampaignID, port.ErrValidation)
	}
	client, err := a.clientOf(ctx, *cp)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("campaign %d: client missing: %w", in.CampaignID, port.ErrValidation)
	}
	g, err := a.grantFor(ctx, actor, client.ID)
	if err != nil {
		return nil, err
	}
	if !access.CanAssignClient(actor, *client, g) {
		return nil, fmt.Errorf("campaign %d is not assignable: %w", cp.ID, port.ErrPermissionDenied)
	}
	b := domain.Banner{
		Name:       in.Name,
		CampaignID: cp.ID,
		Content:    in.Content,
		IsActive:   in.IsActive,
	}
	if err = a.banners.CreateBanner(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBanner edits a banner. For non-superusers the campaign reference is
// read-only once the record exists.
func (a *Admin) UpdateBanner(ctx context.Context, actor domain.User, id int64, in port.BannerInput) (*domain.Banner, error) {
	b, err := a.banners.Banner(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("banner %d: %w", id, port.ErrNotFound)
	}
	client, err := a.bannerScope(ctx, *b)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("banner %d: scope missing: %w", id, port.ErrNotFound)
	}
	g, err := a.grantFor(ctx, actor, client.ID)
	if err != nil {
		return nil, err
	}
	if !access.CanEditBanner(actor, *client, g) {
		return nil, fmt.Errorf("banner %d: %w", id, port.ErrPermissionDenied)
	}
	if in.Name != "" {
		b.Name = in.Name
	}
	if len(in.Content) > 0 {
		b.Content = in.Content
	}
	b.IsActive = in.IsActive
	if actor.IsSuperuser && in.CampaignID != 0 {
		b.CampaignID = in.CampaignID
	}
	if err = a.banners.UpdateBanner(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBanner removes a banner; the bar is the same as editing it. Unlike
// clients and campaigns, banners carry no soft-delete state.
func (a *Admin) DeleteBanner(ctx context.Context, actor domain.User, id int64) error {
	b, err := a.banners.Banner(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("banner %d: %w", id, port.ErrNotFound)
	}
	client, err := a.bannerScope(ctx, *b)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("banner %d: scope missing: %w", id, port.ErrNotFound)
	}
	g, err := a.grantFor(ctx, actor, client.ID)
	if err != nil {
		return err
	}
	if !access.CanDeleteBanner(actor, *client, g) {
		return fmt.Errorf("banner %d: %w", id, port.ErrPermissionDenied)
	}
	return a.banners.DeleteBanner(ctx, id)
}

// SelectableCampaigns lists the campaigns the actor may attach a new banner
// to.
func (a *Admin) SelectableCampaigns(ctx context.Context, actor domain.User) ([]domain.Campaign, error) {
	return a.banners.SelectableCampaigns(ctx, actor)
}

// BannerCounters reads the volatile show/click counters for a banner the
// actor may view. The figures are allowed to drift from the authoritative
// analytics counts.
func (a *Admin) BannerCounters(ctx context.Context, actor domain.User, bannerID int64) (*port.BannerCounters, error) {
	if _, err := a.GetBanner(ctx, actor, bannerID); err != nil {
		return nil, err
	}
	shows, err := a.counters.Shows(ctx, bannerID)
	if err != nil {
		return nil, err
	}
	clicks, err := a.counters.Clicks(ctx, bannerID)
	if err != nil {
		return nil, err
	}
	return &port.BannerCounters{Shows: shows, Clicks: clicks}, nil
}
