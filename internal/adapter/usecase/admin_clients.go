package usecase

import (
	"context"
	"fmt"

	"reklamito/internal/core/access"
	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

// clientView shapes a client for the actor: the hidden flag is exposed to
// superusers only.
func clientView(actor domain.User, c domain.Client) port.ClientView {
	v := port.ClientView{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		OwnerID:   c.OwnerID,
		CreatedAt: c.CreatedAt,
	}
	if actor.IsSuperuser {
		hidden := c.Hidden
		v.Hidden = &hidden
	}
	return v
}

func clientViews(actor domain.User, cs []domain.Client) []port.ClientView {
	views := make([]port.ClientView, 0, len(cs))
	for _, c := range cs {
		views = append(views, clientView(actor, c))
	}
	return views
}

// ListClients returns the clients visible to the actor. The repository
// applies the scoping: superusers see everything including hidden clients,
// everyone else sees non-hidden clients they own or are staff on.
func (a *Admin) ListClients(ctx context.Context, actor domain.User) ([]port.ClientView, error) {
	cs, err := a.clients.Clients(ctx, actor)
	if err != nil {
		return nil, err
	}
	return clientViews(actor, cs), nil
}

func (a *Admin) GetClient(ctx context.Context, actor domain.User, id int64) (*port.ClientView, error) {
	c, err := a.clients.Client(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client %d: %w", id, port.ErrNotFound)
	}
	g, err := a.grantFor(ctx, actor, c.ID)
	if err != nil {
		return nil, err
	}
	if !access.CanViewClient(actor, *c, g) {
		return nil, fmt.Errorf("client %d: %w", id, port.ErrPermissionDenied)
	}
	v := clientView(actor, *c)
	return &v, nil
}

// CreateClient creates a client. The owner defaults to the actor; only
// superusers may assign someone else. Hidden is settable by superusers
// only.
func (a *Admin) CreateClient(ctx context.Context, actor domain.User, in port.ClientInput) (*port.ClientView, error) {
	if in.Name == "" || in.TaxID == "" {
		return nil, fmt.Errorf("name and tax_id are required: %w", port.ErrValidation)
	}
	c := domain.Client{
		Name:    in.Name,
		TaxID:   in.TaxID,
		OwnerID: actor.ID,
	}
	if actor.IsSuperuser {
		if in.OwnerID != 0 {
			c.OwnerID = in.OwnerID
		}
		if in.Hidden != nil {
			c.Hidden = *in.Hidden
		}
	}
	if err := a.clients.CreateClient(ctx, &c); err != nil {
		return nil, err
	}
	v := clientView(actor, c)
	return &v, nil
}

// UpdateClient edits a client. Staff need the admin role. For
// non-superusers the tax_id, owner and hidden fields are read-only: any
// supplied values are silently ignored and the stored ones win.
func (a *Admin) UpdateClient(ctx context.Context, actor domain.User, id int64, in port.ClientInput) (*port.ClientView, error) {
	c, err := a.clients.Client(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client %d: %w", id, port.ErrNotFound)
	}
	g, err := a.grantFor(ctx, actor, c.ID)
	if err != nil {
		return nil, err
	}
	if !access.CanEditClient(actor, *c, g) {
		return nil, fmt.Errorf("client %d: %w", id, port.ErrPermissionDenied)
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if actor.IsSuperuser {
		if in.TaxID != "" {
			c.TaxID = in.TaxID
		}
		if in.OwnerID != 0 {
			c.OwnerID = in.OwnerID
		}
		if in.Hidden != nil {
			c.Hidden = *in.Hidden
		}
	}
	if err = a.clients.UpdateClient(ctx, c); err != nil {
		return nil, err
	}
	v := clientView(actor, *c)
	return &v, nil
}

// DeleteClient is denied for every actor including superusers; clients are
// soft-deleted via the hidden flag.
func (a *Admin) DeleteClient(_ context.Context, actor domain.User, id int64) error {
	_ = access.CanDeleteClient(actor) // always false, kept explicit and testable
	return fmt.Errorf("client %d: deletion is not permitted: %w", id, port.ErrPermissionDenied)
}

func (a *Admin) ListStaff(ctx context.Context, actor domain.User, clientID int64) ([]domain.StaffMembership, error) {
	c, err := a.clients.Client(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client %d: %w", clientID, port.ErrNotFound)
	}
	g, err := a.grantFor(ctx, actor, clientID)
	if err != nil {
		return nil, err
	}
	if !access.CanViewClient(actor, *c, g) {
		return nil, fmt.Errorf("client %d: %w", clientID, port.ErrPermissionDenied)
	}
	return a.clients.Staff(ctx, clientID)
}

// AddStaff grants a role on the client. The actor needs staff-management
// rights, and the client's owner can never be added: their privileges
// already dominate any staff role.
func (a *Admin) AddStaff(ctx context.Context, actor domain.User, clientID, userID int64, role domain.StaffRole) error {
	c, err := a.clients.Client(ctx, clientID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("client %d: %w", clientID, port.ErrNotFound)
	}
	g, err := a.grantFor(ctx, actor, clientID)
	if err != nil {
		return err
	}
	if !access.CanManageStaff(actor, *c, g) {
		return fmt.Errorf("client %d: %w", clientID, port.ErrPermissionDenied)
	}
	if userID == c.OwnerID {
		return fmt.Errorf("user %d owns client %d and cannot be added as staff: %w",
			userID, clientID, port.ErrValidation)
	}
	switch role {
	case domain.RoleAdmin, domain.RoleEditor, domain.RoleReader:
	default:
		return fmt.Errorf("unknown role: %w", port.ErrValidation)
	}
	return a.clients.AddStaff(ctx, domain.StaffMembership{
		UserID:   userID,
		ClientID: clientID,
		Role:     role,
	})
}

func (a *Admin) RemoveStaff(ctx context.Context, actor domain.User, clientID, userID int64) error {
	c, err := a.clients.Client(ctx, clientID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("client %d: %w", clientID, port.ErrNotFound)
	}
	g, err := a.grantFor(ctx, actor, clientID)
	if err != nil {
		return err
	}
	if !access.CanManageStaff(actor, *c, g) {
		return fmt.Errorf("client %d: %w", clientID, port.ErrPermissionDenied)
	}
	return a.clients.RemoveStaff(ctx, userID, clientID)
}
