package domain

import "time"

// ExperimentType classifies what an A/B experiment varies.
type ExperimentType string

const (
	ExperimentBannerDesign ExperimentType = "banner_design"
	ExperimentCTAButton    ExperimentType = "cta_button"
	ExperimentPricing      ExperimentType = "pricing"
	ExperimentTargeting    ExperimentType = "targeting"
	ExperimentPlacement    ExperimentType = "placement"
)

// Experiment is an A/B test attached to a campaign.
type Experiment struct {
	ID            int64
	Name          string
	Type          ExperimentType
	CampaignID    int64
	StartDate     time.Time
	EndDate       *time.Time
	IsActive      bool
	TargetMetric  string
	MinSampleSize int32
	CreatedAt     time.Time
}

// Variant is one arm of an experiment. Weight is a percentage in 1..100.
// Banner references survive banner deletion as NULL.
type Variant struct {
	ID           int64
	ExperimentID int64
	Name         string
	Weight       int16
	IsControl    bool
	Config       []byte
	BannerID     *int64
}

// ExperimentResult aggregates one variant's daily performance. Unique per
// (experiment, variant, date).
type ExperimentResult struct {
	ID           int64
	ExperimentID int64
	VariantID    int64
	Date         time.Time
	Impressions  int64
	Clicks       int64
	Conversions  int64
	Spend        int64
	Metadata     []byte
}

// CTR returns the click-through rate in percent, zero when there were no
// impressions.
func (r ExperimentResult) CTR() float64 {
	if r.Impressions == 0 {
		return 0
	}
	return float64(r.Clicks) / float64(r.Impressions) * 100
}

// TargetingGroup narrows an experiment to an audience described by free-form
// criteria (geo, devices, interests and so on).
type TargetingGroup struct {
	ID           int64
	ExperimentID int64
	Name         string
	Criteria     []byte
	IsActive     bool
}
