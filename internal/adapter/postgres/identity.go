package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reklamito/internal/core/domain"
)

// IdentityRepository implements port.IdentityProvider against the users
// table. Users themselves are provisioned by the external identity flow;
// this core only resolves tokens.
type IdentityRepository struct {
	pool *pgxpool.Pool
}

// NewIdentityRepository returns a new repository instance.
func NewIdentityRepository(pool *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{pool: pool}
}

// UserByToken resolves an API token to a user, nil when unknown.
func (r *IdentityRepository) UserByToken(ctx context.Context, token string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, is_superuser, api_token, created_at FROM users WHERE api_token = $1`,
		token).
		Scan(&u.ID, &u.Username, &u.IsSuperuser, &u.APIToken, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
