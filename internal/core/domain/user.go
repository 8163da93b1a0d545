package domain

import "time"

// User is an account supplied by the identity provider. Superusers bypass
// all tenant scoping. The ad core never mutates users beyond role linkage.
type User struct {
	ID          int64
	Username    string
	IsSuperuser bool
	APIToken    string
	CreatedAt   time.Time
}
