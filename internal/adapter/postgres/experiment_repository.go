package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reklamito/internal/core/domain"
)

// ExperimentRepository implements port.ExperimentRepository. Like billing,
// the experimentation record group is read-only from the ad core's
// perspective.
type ExperimentRepository struct {
	pool *pgxpool.Pool
}

// NewExperimentRepository returns a new repository instance.
func NewExperimentRepository(pool *pgxpool.Pool) *ExperimentRepository {
	return &ExperimentRepository{pool: pool}
}

func (r *ExperimentRepository) ExperimentsByCampaign(ctx context.Context, campaignID int64) ([]domain.Experiment, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, experiment_type, campaign_id, start_date, end_date,
               is_active, target_metric, min_sample_size, created_at
        FROM experiments WHERE campaign_id = $1 ORDER BY start_date DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Experiment, error) {
		var (
			exp domain.Experiment
			typ string
		)
		err := row.Scan(&exp.ID, &exp.Name, &typ, &exp.CampaignID, &exp.StartDate,
			&exp.EndDate, &exp.IsActive, &exp.TargetMetric, &exp.MinSampleSize, &exp.CreatedAt)
		exp.Type = domain.ExperimentType(typ)
		return exp, err
	})
}

func (r *ExperimentRepository) ResultsByExperiment(ctx context.Context, experimentID int64) ([]domain.ExperimentResult, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, experiment_id, variant_id, date, impressions, clicks,
               conversions, spend, metadata
        FROM experiment_results WHERE experiment_id = $1 ORDER BY date`, experimentID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExperimentResult, error) {
		var res domain.ExperimentResult
		err := row.Scan(&res.ID, &res.ExperimentID, &res.VariantID, &res.Date,
			&res.Impressions, &res.Clicks, &res.Conversions, &res.Spend, &res.Metadata)
		return res, err
	})
}
