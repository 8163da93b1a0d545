package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the reklamito database: a superuser, a few
// client owners and staff, clients (one hidden), campaigns, banners and
// sample billing/experiment records. Inserts are idempotent.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	users := []struct {
		id        int64
		username  string
		superuser bool
		token     string
	}{
		{1, "root", true, "token-root"},
		{2, "alice", false, "token-alice"},
		{3, "bob", false, "token-bob"},
		{4, "carol", false, "token-carol"},
		{5, "dave", false, "token-dave"},
	}
	for _, u := range users {
		_, err := db.Exec(ctx, `INSERT INTO users (id, username, is_superuser, api_token)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, u.id, u.username, u.superuser, u.token)
		if err != nil {
			return err
		}
	}

	clients := []struct {
		id      int64
		name    string
		taxID   string
		ownerID int64
		hidden  bool
	}{
		{1, "Aurora Media", "770112345678", 2, false},
		{2, "Borealis Retail", "780198765432", 3, false},
		{3, "Cinder Foods", "540155512345", 2, true},
	}
	for _, c := range clients {
		_, err := db.Exec(ctx, `INSERT INTO clients (id, name, tax_id, owner_id, hidden)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`, c.id, c.name, c.taxID, c.ownerID, c.hidden)
		if err != nil {
			return err
		}
	}

	staff := []struct {
		userID   int64
		clientID int64
		role     string
	}{
		{4, 1, "admin"},
		{4, 2, "editor"},
		{5, 2, "reader"},
	}
	for _, s := range staff {
		_, err := db.Exec(ctx, `INSERT INTO client_staff (user_id, client_id, role)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, s.userID, s.clientID, s.role)
		if err != nil {
			return err
		}
	}

	// campaigns and banners per client
	bannerID := int64(0)
	for i, c := range clients {
		for j := 1; j <= 2; j++ {
			campaignID := int64(i*2 + j)
			name := fmt.Sprintf("%s campaign %d", c.name, j)
			start := time.Now().AddDate(0, 0, -7)
			end := time.Now().AddDate(0, 1, 0)
			budget := int64(500000) // 5000.00 units
			_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, client_id, author_id, budget, start_date, end_date, is_active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`,
				campaignID, name, c.id, c.ownerID, budget, start, end, true)
			if err != nil {
				return err
			}
			for k := 1; k <= 3; k++ {
				bannerID++
				content, _ := json.Marshal(map[string]any{
					"click_url": fmt.Sprintf("https://example.com/landing/%d", bannerID),
					"image_url": fmt.Sprintf("https://example.com/creative/%d.png", bannerID),
					"headline":  fmt.Sprintf("Offer %d", bannerID),
				})
				// one inactive banner per campaign to exercise the 404 path
				active := k != 3
				_, err = db.Exec(ctx, `INSERT INTO banners (id, name, campaign_id, content, is_active)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
					bannerID, fmt.Sprintf("Banner %d for campaign %d", k, campaignID), campaignID, content, active)
				if err != nil {
					return err
				}
			}
		}
	}

	// billing records
	for i, c := range clients {
		invoiceID := int64(i + 1)
		number := fmt.Sprintf("INV-2026-%04d", invoiceID)
		amount := int64(100000 + r.Intn(900000))
		_, err := db.Exec(ctx, `INSERT INTO invoices
    (id, client_id, number, amount, status, due_date, campaign_id, metadata)
VALUES ($1,$2,$3,$4,$5,$6,$7,'{}') ON CONFLICT DO NOTHING`,
			invoiceID, c.id, number, amount, "issued", time.Now().AddDate(0, 0, 14), int64(i*2+1))
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO payments
    (invoice_id, amount, method, external_id, details)
VALUES ($1,$2,$3,$4,'{}') ON CONFLICT DO NOTHING`,
			invoiceID, amount/2, "bank_card", fmt.Sprintf("ext-%d", invoiceID))
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO client_balances (client_id, amount, credit_limit)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, c.id, amount/2, int64(1000000))
		if err != nil {
			return err
		}
	}

	// one experiment with two variants and a week of results
	_, err := db.Exec(ctx, `INSERT INTO experiments
    (id, name, experiment_type, campaign_id, start_date, is_active, target_metric, min_sample_size)
VALUES (1, 'Headline test', 'banner_design', 1, $1, TRUE, 'ctr', 1000) ON CONFLICT DO NOTHING`,
		time.Now().AddDate(0, 0, -7))
	if err != nil {
		return err
	}
	variantCfg, _ := json.Marshal(map[string]any{"headline": "variant"})
	for v := int64(1); v <= 2; v++ {
		_, err = db.Exec(ctx, `INSERT INTO experiment_variants
    (id, experiment_id, name, weight, is_control, config, banner_id)
VALUES ($1, 1, $2, 50, $3, $4, $5) ON CONFLICT DO NOTHING`,
			v, fmt.Sprintf("variant-%d", v), v == 1, variantCfg, v)
		if err != nil {
			return err
		}
		for d := 0; d < 7; d++ {
			imps := int64(500 + r.Intn(1500))
			clicks := imps / int64(10+r.Intn(40))
			_, err = db.Exec(ctx, `INSERT INTO experiment_results
    (experiment_id, variant_id, date, impressions, clicks, conversions, spend, metadata)
VALUES (1, $1, $2, $3, $4, $5, $6, '{}') ON CONFLICT DO NOTHING`,
				v, time.Now().AddDate(0, 0, -d), imps, clicks, clicks/5, clicks*50)
			if err != nil {
				return err
			}
		}
	}
	targeting, _ := json.Marshal(map[string]any{"geos": []string{"RU", "AM"}, "devices": []string{"mobile"}})
	_, err = db.Exec(ctx, `INSERT INTO targeting_groups (experiment_id, name, criteria, is_active)
VALUES (1, 'mobile-ru', $1, TRUE) ON CONFLICT DO NOTHING`, targeting)
	return err
}
