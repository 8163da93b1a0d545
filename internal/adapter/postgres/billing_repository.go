package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reklamito/internal/core/domain"
)

// BillingRepository implements port.BillingRepository. The ad core only
// reads the billing record group; invoices and balances are written by the
// billing pipeline elsewhere.
type BillingRepository struct {
	pool *pgxpool.Pool
}

// NewBillingRepository returns a new repository instance.
func NewBillingRepository(pool *pgxpool.Pool) *BillingRepository {
	return &BillingRepository{pool: pool}
}

func (r *BillingRepository) InvoicesByClient(ctx context.Context, clientID int64) ([]domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, client_id, number, amount, status, created_at, due_date,
               paid_at, campaign_id, metadata
        FROM invoices WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invoice, error) {
		var (
			inv    domain.Invoice
			status string
		)
		err := row.Scan(&inv.ID, &inv.ClientID, &inv.Number, &inv.Amount, &status,
			&inv.CreatedAt, &inv.DueDate, &inv.PaidAt, &inv.CampaignID, &inv.Metadata)
		inv.Status = domain.InvoiceStatus(status)
		return inv, err
	})
}

func (r *BillingRepository) BalanceByClient(ctx context.Context, clientID int64) (*domain.ClientBalance, error) {
	var b domain.ClientBalance
	err := r.pool.QueryRow(ctx, `
        SELECT client_id, amount, credit_limit, last_updated
        FROM client_balances WHERE client_id = $1`, clientID).
		Scan(&b.ClientID, &b.Amount, &b.CreditLimit, &b.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
