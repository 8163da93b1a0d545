package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffRoleRoundTrip(t *testing.T) {
	for _, r := range []StaffRole{RoleAdmin, RoleEditor, RoleReader} {
		parsed, err := ParseStaffRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseStaffRole("owner")
	assert.Error(t, err, "owner is a relation, not a staff role")
}

func TestRoleSet(t *testing.T) {
	s := Roles(RoleAdmin, RoleEditor)

	assert.True(t, s.Has(RoleAdmin))
	assert.True(t, s.Has(RoleEditor))
	assert.False(t, s.Has(RoleReader))
	assert.False(t, s.Has(StaffRole(0)))

	var empty RoleSet
	assert.False(t, empty.Has(RoleAdmin))
}
