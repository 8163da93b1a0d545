package domain

import "time"

// Campaign is a budgeted, time-bounded advertising initiative belonging to
// a client. Budgets are stored in integer units (e.g. kopecks). The author
// is set to the creating user on first save and is immutable afterwards for
// non-superusers, as is the client reference. Campaigns are never
// hard-deleted, only deactivated.
type Campaign struct {
	ID        int64
	Name      string
	ClientID  int64
	AuthorID  int64
	Budget    int64
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
