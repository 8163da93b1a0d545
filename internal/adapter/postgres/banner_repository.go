package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reklamito/internal/core/domain"
)

// BannerRepository implements port.BannerRepository and port.BannerProvider
// using pgxpool.
type BannerRepository struct {
	pool *pgxpool.Pool
}

// NewBannerRepository returns a new repository instance.
func NewBannerRepository(pool *pgxpool.Pool) *BannerRepository {
	return &BannerRepository{pool: pool}
}

const bannerColumns = `id, name, campaign_id, content, is_active, created_at`

func scanBanner(row pgx.CollectableRow) (domain.Banner, error) {
	var b domain.Banner
	err := row.Scan(&b.ID, &b.Name, &b.CampaignID, &b.Content, &b.IsActive, &b.CreatedAt)
	return b, err
}

// Banner returns a banner by id regardless of its active state, nil when
// absent.
func (r *BannerRepository) Banner(ctx context.Context, id int64) (*domain.Banner, error) {
	var b domain.Banner
	err := r.pool.QueryRow(ctx,
		`SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.CampaignID, &b.Content, &b.IsActive, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ActiveBanner returns the banner only when it exists and is active, nil
// otherwise. The public serving endpoints treat both cases as not found.
func (r *BannerRepository) ActiveBanner(ctx context.Context, id int64) (*domain.Banner, error) {
	var b domain.Banner
	err := r.pool.QueryRow(ctx,
		`SELECT `+bannerColumns+` FROM banners WHERE id = $1 AND is_active = TRUE`, id).
		Scan(&b.ID, &b.Name, &b.CampaignID, &b.Content, &b.IsActive, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Banners lists banners visible to the viewer via campaign -> client. Any
// staff role qualifies, reader included; this is deliberately wider than
// the campaign listing. DISTINCT collapses multiple matching grants.
func (r *BannerRepository) Banners(ctx context.Context, viewer domain.User) ([]domain.Banner, error) {
	if viewer.IsSuperuser {
		rows, err := r.pool.Query(ctx,
			`SELECT `+bannerColumns+` FROM banners ORDER BY id`)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, scanBanner)
	}
	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT b.id, b.name, b.campaign_id, b.content, b.is_active, b.created_at
        FROM banners b
        JOIN campaigns cp ON cp.id = b.campaign_id
        JOIN clients c ON c.id = cp.client_id
        LEFT JOIN client_staff s ON s.client_id = c.id AND s.user_id = $1
             AND s.role IN ('admin', 'editor', 'reader')
        WHERE c.owner_id = $1 OR s.user_id IS NOT NULL
        ORDER BY b.id`, viewer.ID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBanner)
}

// CreateBanner inserts the banner and fills in the generated id and
// timestamp.
func (r *BannerRepository) CreateBanner(ctx context.Context, b *domain.Banner) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO banners (name, campaign_id, content, is_active)
         VALUES ($1,$2,$3,$4)
         RETURNING id, created_at`,
		b.Name, b.CampaignID, b.Content, b.IsActive).
		Scan(&b.ID, &b.CreatedAt)
}

func (r *BannerRepository) UpdateBanner(ctx context.Context, b *domain.Banner) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE banners SET name = $1, campaign_id = $2, content = $3, is_active = $4 WHERE id = $5`,
		b.Name, b.CampaignID, b.Content, b.IsActive, b.ID)
	return err
}

func (r *BannerRepository) DeleteBanner(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	return err
}

// SelectableCampaigns lists the campaigns the viewer may attach a new
// banner to: under clients owned or held with admin/editor.
func (r *BannerRepository) SelectableCampaigns(ctx context.Context, viewer domain.User) ([]domain.Campaign, error) {
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
