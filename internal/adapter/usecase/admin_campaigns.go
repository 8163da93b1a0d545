package usecase

import (
	"context"
	"fmt"

	"reklamito/internal/core/access"
	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

// ListCampaigns returns the campaigns in the actor's admin listing. The
// repository scopes to owned clients plus admin/editor grants; readers are
// deliberately excluded from this listing even though they may open a
// campaign directly.
func (a *Admin) ListCampaigns(ctx context.Context, actor domain.User) ([]domain.Campaign, error) {
	return a.campaigns.Campaigns(ctx, actor)
}

func (a *Admin) GetCampaign(ctx context.Context, actor domain.User, id int64) (*domain.Campaign, error) {
	cp, err := a.campaigns.Campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	client, err := a.clientOf(ctx, *cp)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("campaign %d: client missing: %w", id, port.ErrNotFound)
	}
	g, err := a.grantFor(ctx, actor, client.ID)
	if err != nil {
		return nil, err
	}
	if !access.CanViewCampaign(actor, *client, g) {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrPermissionDenied)
	}
	return cp, nil
}

// CreateCampaign creates a campaign. The author is forced to the acting
// user, never taken from the request, unless a superuser assigns one
// explicitly. The target client must be one the actor may attach campaigns
// to: owned or held with admin/editor.
func (a *Admin) CreateCampaign(ctx context.Context, actor domain.User, in port.CampaignInput) (*domain.Campaign, error) {
	if in.Name == "" || in.ClientID == 0 {
		return nil, fmt.Errorf("name and client_id are required: %w", port.ErrValidation)
	}
	client, err := a.clients.Client(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %d: %w", in.ClientID, port.ErrValidation)
	}
	g, err := a.grantFor(ctx, actor, client.ID)
	if err != nil {
		return nil, err
	}
	if !access.CanAssignClient(actor, *client, g) {
		return nil, fmt.Errorf("client %d is not assignable: %w", client.ID, port.ErrPermissionDenied)
	}
	cp := domain.Campaign{
		Name:      in.Name,
		ClientID:  client.ID,
		AuthorID:  actor.ID,
		Budget:    in.Budget,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		IsActive:  in.IsActive,
	}
	if actor.IsSuperuser && in.AuthorID != 0 {
		cp.AuthorID = in.AuthorID
	}
	if err = a.campaigns.CreateCampaign(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// UpdateCampaign edits a campaign. For non-superusers the author and client
// references are read-only once the record exists: supplied values are
// silently ignored and the stored ones win.
func (a *Admin) UpdateCampaign(ctx context.Context, actor domain.User, id int64, in port.CampaignInput) (*domain.Campaign, error) {
	cp, err := a.campaigns.Campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	client, err := a.clientOf(ctx, *cp)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("campaign %d: client missing: %w", id, port.ErrNotFound)
	}
	g, err := a.grantFor(ctx, actor, client.ID)
	if err != nil {
		return nil, err
	}
	if !access.CanEditCampaign(actor, *client, g) {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrPermissionDenied)
	}
	if in.Name != "" {
		cp.Name = in.Name
	}
	cp.Budget = in.Budget
	if !in.StartDate.IsZero() {
		cp.StartDate = in.StartDate
	}
	if !in.EndDate.IsZero() {
		cp.EndDate = in.EndDate
	}
	cp.IsActive = in.IsActive
	if actor.IsSuperuser {
		if in.ClientID != 0 {
			cp.ClientID = in.ClientID
		}
		if in.AuthorID != 0 {
			cp.AuthorID = in.AuthorID
		}
	}
	if err = a.campaigns.UpdateCampaign(ctx, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

// DeleteCampaign is denied for every actor including superusers; campaigns
// are only ever deactivated.
func (a *Admin) DeleteCampaign(_ context.Context, actor domain.User, id int64) error {
	_ = access.CanDeleteCampaign(actor)
	return fmt.Errorf("campaign %d: deletion is not permitted: %w", id, port.ErrPermissionDenied)
}

// SelectableClients lists the clients the actor may attach a new campaign
// to.
func (a *Admin) SelectableClients(ctx context.Context, actor domain.User) ([]port.ClientView, error) {
	cs, err := a.campaigns.SelectableClients(ctx, actor)
	if err != nil {
		return nil, err
	}
	return clientViews(actor, cs), nil
}

// CampaignExperiments reads the experimentation record group for a
// campaign, gated by view permission. CTR is the only derived figure.
func (a *Admin) CampaignExperiments(ctx context.Context, actor domain.User, campaignID int64) ([]port.ExperimentView, error) {
	if _, err := a.GetCampaign(ctx, actor, campaignID); err != nil {
		return nil, err
	}
	exps, err := a.experiments.ExperimentsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	views := make([]port.ExperimentView, 0, len(exps))
	for _, exp := range exps {
		results, err := a.experiments.ResultsByExperiment(ctx, exp.ID)
		if err != nil {
			return nil, err
		}
		rv := make([]port.ExperimentResultView, 0, len(results))
		for _, r := range results {
			rv = append(rv, port.ExperimentResultView{ExperimentResult: r, CTR: r.CTR()})
		}
		views = append(views, port.ExperimentView{Experiment: exp, Results: rv})
	}
	return views, nil
}
