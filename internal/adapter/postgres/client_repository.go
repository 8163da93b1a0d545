package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

// ClientRepository implements port.ClientRepository and port.StaffDirectory
// using pgxpool. List queries mirror, set-wise, the predicates in the
// access package.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a new repository instance.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func scanClient(row pgx.CollectableRow) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Name, &c.TaxID, &c.OwnerID, &c.Hidden, &c.CreatedAt)
	return c, err
}

// Client returns a client by id, nil when absent.
func (r *ClientRepository) Client(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, tax_id, owner_id, hidden, created_at FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.TaxID, &c.OwnerID, &c.Hidden, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Clients lists clients visible to the viewer. Superusers see every client,
// hidden included. Everyone else sees non-hidden clients they own or hold
// any staff role on; DISTINCT collapses multiple matching grants.
func (r *ClientRepository) Clients(ctx context.Context, viewer domain.User) ([]domain.Client, error) {
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
        WHERE c.hidden = FALSE
          AND (c.owner_id = $1 OR s.user_id IS NOT NULL)
        ORDER BY c.id`, viewer.ID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanClient)
}

// CreateClient inserts the client and fills in the generated id and
// timestamp. A duplicate tax_id is a validation failure.
func (r *ClientRepository) CreateClient(ctx context.Context, c *domain.Client) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO clients (name, tax_id, owner_id, hidden) VALUES ($1,$2,$3,$4)
         RETURNING id, created_at`,
		c.Name, c.TaxID, c.OwnerID, c.Hidden).
		Scan(&c.ID, &c.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("tax_id %q already registered: %w", c.TaxID, port.ErrValidation)
	}
	return err
}

func (r *ClientRepository) UpdateClient(ctx context.Context, c *domain.Client) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE clients SET name = $1, tax_id = $2, owner_id = $3, hidden = $4 WHERE id = $5`,
		c.Name, c.TaxID, c.OwnerID, c.Hidden, c.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("tax_id %q already registered: %w", c.TaxID, port.ErrValidation)
	}
	return err
}

// Staff lists the client's staff table.
func (r *ClientRepository) Staff(ctx context.Context, clientID int64) ([]domain.StaffMembership, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, client_id, role FROM client_staff WHERE client_id = $1 ORDER BY user_id`,
		clientID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanMembership)
}

func scanMembership(row pgx.CollectableRow) (domain.StaffMembership, error) {
	var (
		m    domain.StaffMembership
		role string
	)
	if err := row.Scan(&m.UserID, &m.ClientID, &role); err != nil {
		return m, err
	}
	parsed, err := domain.ParseStaffRole(role)
	if err != nil {
		return m, err
	}
	m.Role = parsed
	return m, nil
}

// AddStaff inserts a membership row. The (user, client) pair is unique; a
// duplicate insert is a validation failure.
func (r *ClientRepository) AddStaff(ctx context.Context, m domain.StaffMembership) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO client_staff (user_id, client_id, role) VALUES ($1,$2,$3)`,
		m.UserID, m.ClientID, m.Role.String())
	if isUniqueViolation(err) {
		return fmt.Errorf("user %d is already staff of client %d: %w",
			m.UserID, m.ClientID, port.ErrValidation)
	}
	return err
}

func (r *ClientRepository) RemoveStaff(ctx context.Context, userID, clientID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM client_staff WHERE user_id = $1 AND client_id = $2`, userID, clientID)
	return err
}

// RoleFor resolves the staff role a user holds on a client.
func (r *ClientRepository) RoleFor(ctx context.Context, userID, clientID int64) (domain.StaffRole, bool, error) {
	var role string
	err := r.pool.QueryRow(ctx,
		`SELECT role FROM client_staff WHERE user_id = $1 AND client_id = $2`,
		userID, clientID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	parsed, err := domain.ParseStaffRole(role)
	if err != nil {
		return 0, false, err
	}
	return parsed, true, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
