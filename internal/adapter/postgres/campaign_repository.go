package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reklamito/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, name, client_id, author_id, budget, start_date, end_date, is_active, created_at, updated_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Name, &c.ClientID, &c.AuthorID, &c.Budget,
		&c.StartDate, &c.EndDate, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// Campaign returns a campaign by id, nil when absent.
func (r *CampaignRepository) Campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.ClientID, &c.AuthorID, &c.Budget,
			&c.StartDate, &c.EndDate, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Campaigns lists campaigns for the admin listing. Non-superusers see
// campaigns under clients they own or hold admin/editor on; readers are
// deliberately excluded, unlike the banner listing. DISTINCT collapses
// multiple matching grants.
func (r *CampaignRepository) Campaigns(ctx context.Context, viewer domain.User) ([]domain.Campaign, error) {
	if viewer.IsSuperuser {
		rows, err := r.pool.Query(ctx,
			`SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, scanCampaign)
	}
	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT cp.id, cp.name, cp.client_id, cp.author_id, cp.budget,
               cp.start_date, cp.end_date, cp.is_active, cp.created_at, cp.updated_at
        FROM campaigns cp
        JOIN clients c ON c.id = cp.client_id
        LEFT JOIN client_staff s ON s.client_id = c.id AND s.user_id = $1
             AND s.role IN ('admin', 'editor')
        WHERE c.owner_id = $1 OR s.user_id IS NOT NULL
        ORDER BY cp.id`, viewer.ID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// CreateCampaign inserts the campaign and fills in the generated id and
// timestamps.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO campaigns (name, client_id, author_id, budget, start_date, end_date, is_active)
         VALUES ($1,$2,$3,$4,$5,$6,$7)
         RETURNING id, created_at, updated_at`,
		c.Name, c.ClientID, c.AuthorID, c.Budget, c.StartDate, c.EndDate, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx,
		`UPDATE campaigns
         SET name = $1, client_id = $2, author_id = $3, budget = $4,
             start_date = $5, end_date = $6, is_active = $7, updated_at = now()
         WHERE id = $8
         RETURNING updated_at`,
		c.Name, c.ClientID, c.AuthorID, c.Budget, c.StartDate, c.EndDate, c.IsActive, c.ID).
		Scan(&c.UpdatedAt)
}

// SelectableClients lists the clients the viewer may attach a new campaign
// to: owned, or held with admin/editor.
func (r *CampaignRepository) SelectableClients(ctx context.Context, viewer domain.User) ([]domain.Client, error) {
	if viewer.IsSuperuser {
		rows, err := r.pool.Query(ctx,
			`SELECT id, name, tax_id, owner_id, hidden, created_at FROM clients ORDER BY id`)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, scanClient)
	}
	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT c.id, c.name, c.tax_id, c.owner_id, c.hidden, c.created_at
        FROM clients c
        LEFT JOIN client_staff s ON s.client_id = c.id AND s.user_id = $1
             AND s.role IN ('admin', 'editor')
        WHERE c.owner_id = $1 OR s.user_id IS NOT NULL
        ORDER BY c.id`, viewer.ID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanClient)
}
