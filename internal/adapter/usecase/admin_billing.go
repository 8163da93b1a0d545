package usecase

import (
	"context"
	"fmt"

	"reklamito/internal/core/access"
	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

// viewableClient fetches a client and checks view permission, shared by the
// billing read paths.
func (a *Admin) viewableClient(ctx context.Context, actor domain.User, clientID int64) (*domain.Client, error) {
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
	return c, nil
}

// ClientInvoices lists a client's invoices, gated by view permission on the
// client. The billing rows reference clients that are never hard-deleted.
func (a *Admin) ClientInvoices(ctx context.Context, actor domain.User, clientID int64) ([]domain.Invoice, error) {
	if _, err := a.viewableClient(ctx, actor, clientID); err != nil {
		return nil, err
	}
	return a.billing.InvoicesByClient(ctx, clientID)
}

// ClientBalance returns the client's current balance record, or ErrNotFound
// when none exists yet.
func (a *Admin) ClientBalance(ctx context.Context, actor domain.User, clientID int64) (*domain.ClientBalance, error) {
	if _, err := a.viewableClient(ctx, actor, clientID); err != nil {
		return nil, err
	}
	b, err := a.billing.BalanceByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("client %d balance: %w", clientID, port.ErrNotFound)
	}
	return b, nil
}
