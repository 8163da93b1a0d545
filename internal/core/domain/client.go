package domain

import (
	"fmt"
	"time"
)

// Client is a tenant owning campaigns. The owner always has full rights on
// the client and everything under it, regardless of the staff table. A
// hidden client is excluded from all non-superuser listings; clients are
// never hard-deleted.
type Client struct {
	ID        int64
	Name      string
	TaxID     string
	OwnerID   int64
	Hidden    bool
	CreatedAt time.Time
}

// StaffRole is a closed enumeration of roles a staff member may hold on a
// client. The zero value is invalid.
type StaffRole uint8

const (
	RoleAdmin StaffRole = iota + 1
	RoleEditor
	RoleReader
)

func (r StaffRole) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleEditor:
		return "editor"
	case RoleReader:
		return "reader"
	default:
		return fmt.Sprintf("StaffRole(%d)", uint8(r))
	}
}

// ParseStaffRole converts the stored representation back into a StaffRole.
func ParseStaffRole(s string) (StaffRole, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "editor":
		return RoleEditor, nil
	case "reader":
		return RoleReader, nil
	default:
		return 0, fmt.Errorf("unknown staff role %q", s)
	}
}

// RoleSet is a set of staff roles used for membership checks.
type RoleSet uint8

// Roles builds a RoleSet from the given roles.
func Roles(rs ...StaffRole) RoleSet {
	var s RoleSet
	for _, r := range rs {
		s |= 1 << r
	}
	return s
}

// Has reports whether r is a member of the set.
func (s RoleSet) Has(r StaffRole) bool {
	return s&(1<<r) != 0
}

// StaffMembership grants a user a scoped role on a client. Unique per
// (user, client). The client's owner must never appear as staff; that is
// validated at write time, not by the schema.
type StaffMembership struct {
	UserID   int64
	ClientID int64
	Role     StaffRole
}
