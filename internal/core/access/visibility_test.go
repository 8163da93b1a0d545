package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reklamito/internal/core/domain"
)

// fixture mirrors the demo data layout: one owner, one hidden client, staff
// grants of each role.
type fixture struct {
	user   domain.User
	grants map[int64]Grant // by client ID
}

func (f fixture) grantOn(clientID int64) Grant {
	return f.grants[clientID]
}

var clients = []domain.Client{
	{ID: 1, OwnerID: 100},
	{ID: 2, OwnerID: 101},
	{ID: 3, OwnerID: 100, Hidden: true},
}

func TestClientListable(t *testing.T) {
	su := fixture{user: domain.User{ID: 1, IsSuperuser: true}}
	own := fixture{user: domain.User{ID: 100}}
	reader := fixture{
		user:   domain.User{ID: 200},
		grants: map[int64]Grant{2: {Role: domain.RoleReader, IsStaff: true}},
	}

	listable := func(f fixture) []int64 {
		var ids []int64
		for _, c := range clients {
			if ClientListable(f.user, c, f.grantOn(c.ID)) {
				ids = append(ids, c.ID)
			}
		}
		return ids
	}

	// Superusers see everything, hidden included.
	assert.Equal(t, []int64{1, 2, 3}, listable(su))

	// Owners do not see their own hidden clients in listings.
	assert.Equal(t, []int64{1}, listable(own))

	// Staff see only clients they hold a role on.
	assert.Equal(t, []int64{2}, listable(reader))
}

// TestListingAsymmetry pins the deliberate difference between the campaign
// and banner listings: a reader sees banners but not campaigns, yet may
// still open a campaign directly.
func TestListingAsymmetry(t *testing.T) {
	client := domain.Client{ID: 2, OwnerID: 101}
	reader := domain.User{ID: 200}
	g := Grant{Role: domain.RoleReader, IsStaff: true}

	assert.False(t, CampaignListable(reader, client, g))
	assert.True(t, BannerListable(reader, client, g))
	assert.True(t, CanViewCampaign(reader, client, g))

	// Editors appear in both listings.
	ge := Grant{Role: domain.RoleEditor, IsStaff: true}
	assert.True(t, CampaignListable(reader, client, ge))
	assert.True(t, BannerListable(reader, client, ge))
}

// TestCampaignListingIgnoresHidden documents that campaign and banner
// listings do not re-check the client's hidden flag; hiding only affects
// the client listing itself.
func TestCampaignListingIgnoresHidden(t *testing.T) {
	hidden := domain.Client{ID: 3, OwnerID: 100, Hidden: true}
	owner := domain.User{ID: 100}

	assert.True(t, CampaignListable(owner, hidden, Grant{}))
	assert.True(t, BannerListable(owner, hidden, Grant{}))
	assert.False(t, ClientListable(owner, hidden, Grant{}))
}
