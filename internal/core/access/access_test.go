package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reklamito/internal/core/domain"
)

var (
	superuser = domain.User{ID: 1, IsSuperuser: true}
	owner     = domain.User{ID: 2}
	staff     = domain.User{ID: 3}
	stranger  = domain.User{ID: 4}

	client = domain.Client{ID: 10, OwnerID: 2}
)

func grant(r domain.StaffRole) Grant {
	return Grant{Role: r, IsStaff: true}
}

func TestPrecedence(t *testing.T) {
	// Superusers pass every check regardless of the grant.
	assert.True(t, CanEditClient(superuser, client, Grant{}))
	assert.True(t, CanManageStaff(superuser, client, Grant{}))

	// Owners pass without a staff row, even for admin-only operations.
	assert.True(t, CanEditClient(owner, client, Grant{}))
	assert.True(t, CanManageStaff(owner, client, Grant{}))
	assert.True(t, CanEditCampaign(owner, client, Grant{}))

	// A reader grant on some client does not help a stranger on this one.
	assert.False(t, CanViewClient(stranger, client, Grant{}))
	assert.False(t, CanEditCampaign(stranger, client, Grant{}))
}

func TestStaffRoleThresholds(t *testing.T) {
	cases := []struct {
		name string
		op   func(domain.User, domain.Client, Grant) bool
		want map[domain.StaffRole]bool
	}{
		{
			name: "view client",
			op:   CanViewClient,
			want: map[domain.StaffRole]bool{domain.RoleAdmin: true, domain.RoleEditor: true, domain.RoleReader: true},
		},
		{
			name: "edit client",
			op:   CanEditClient,
			want: map[domain.StaffRole]bool{domain.RoleAdmin: true, domain.RoleEditor: false, domain.RoleReader: false},
		},
		{
			name: "manage staff",
			op:   CanManageStaff,
			want: map[domain.StaffRole]bool{domain.RoleAdmin: true, domain.RoleEditor: false, domain.RoleReader: false},
		},
		{
			name: "view campaign",
			op:   CanViewCampaign,
			want: map[domain.StaffRole]bool{domain.RoleAdmin: true, domain.RoleEditor: true, domain.RoleReader: true},
		},
		{
			name: "edit campaign",
			op:   CanEditCampaign,
			want: map[domain.StaffRole]bool{domain.RoleAdmin: true, domain.RoleEditor: true, domain.RoleReader: false},
		},
		{
			name: "assign client",
			op:   CanAssignClient,
			want: map[domain.StaffRole]bool{domain.RoleAdmin: true, domain.RoleEditor: true, domain.RoleReader: false},
		},
		{
			name: "view banner",
			op:   CanViewBanner,
			want: map[domain.StaffRole]bool{domain.RoleAdmin: true, domain.RoleEditor: true, domain.RoleReader: true},
		},
		{
			name: "edit banner",
			op:   CanEditBanner,
			want: map[domain.StaffRole]bool{domain.RoleAdmin: true, domain.RoleEditor: true, domain.RoleReader: false},
		},
		{
			name: "delete banner",
			op:   CanDeleteBanner,
			want: map[domain.StaffRole]bool{domain.RoleAdmin: true, domain.RoleEditor: true, domain.RoleReader: false},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for role, want := range tc.want {
				got := tc.op(staff, client, grant(role))
				assert.Equal(t, want, got, "role %s", role)
			}
			// Without any grant no staff check passes.
			assert.False(t, tc.op(staff, client, Grant{}))
		})
	}
}

func TestHardDeletesAlwaysDenied(t *testing.T) {
	for _, u := range []domain.User{superuser, owner, staff, stranger} {
		assert.False(t, CanDeleteClient(u))
		assert.False(t, CanDeleteCampaign(u))
	}
}

func TestZeroRoleGrantDeniesEverything(t *testing.T) {
	// A grant built from a zero StaffRole must not match any role set.
	g := Grant{IsStaff: true}
	assert.False(t, CanViewClient(staff, client, g))
	assert.False(t, CanEditBanner(staff, client, g))
}
