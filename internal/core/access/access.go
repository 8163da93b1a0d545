// Package access implements the permission evaluator and the list visibility
// predicates for the multi-tenant Client/Campaign/Banner hierarchy. All
// functions are pure computations over already-fetched data; callers resolve
// the acting user's staff grant first and pass it in.
//
// Precedence: superuser, then client owner, then staff role membership,
// otherwise denied. Campaigns and banners inherit the scope of their owning
// client.
package access

import "reklamito/internal/core/domain"

// Grant is the acting user's staff relationship to a client: the role held,
// if any. The owner relation is carried by the client itself and checked
// separately, so a Grant never represents ownership.
type Grant struct {
	Role    domain.StaffRole
	IsStaff bool
}

var (
	viewRoles       = domain.Roles(domain.RoleAdmin, domain.RoleEditor, domain.RoleReader)
	editRoles       = domain.Roles(domain.RoleAdmin, domain.RoleEditor)
	clientEditRoles = domain.Roles(domain.RoleAdmin)
)

// In reports whether the grant holds one of the given role set.
func (g Grant) In(set domain.RoleSet) bool {
	return g.IsStaff && set.Has(g.Role)
}

func permitted(user domain.User, client domain.Client, g Grant, set domain.RoleSet) bool {
	if user.IsSuperuser {
		return true
	}
	if client.OwnerID == user.ID {
		return true
	}
	return g.In(set)
}

// CanViewClient reports whether user may view the client. Any staff role
// suffices; the owner and superusers always may.
func CanViewClient(user domain.User, client domain.Client, g Grant) bool {
	return permitted(user, client, g, viewRoles)
}

// CanEditClient reports whether user may edit the client. Staff need the
// admin role specifically.
func CanEditClient(user domain.User, client domain.Client, g Grant) bool {
	return permitted(user, client, g, clientEditRoles)
}

// CanManageStaff reports whether user may add or remove staff rows on the
// client. Same bar as editing the client itself.
func CanManageStaff(user domain.User, client domain.Client, g Grant) bool {
	return CanEditClient(user, client, g)
}

// CanViewCampaign reports whether user may view a campaign under the given
// client. Readers are included here even though the campaign listing
// excludes them; see CampaignListable.
func CanViewCampaign(user domain.User, client domain.Client, g Grant) bool {
	return permitted(user, client, g, viewRoles)
}

// CanEditCampaign reports whether user may edit a campaign under the given
// client.
func CanEditCampaign(user domain.User, client domain.Client, g Grant) bool {
	return permitted(user, client, g, editRoles)
}

// CanAssignClient reports whether user may attach a new campaign to the
// client. Matches the edit bar: owned clients plus admin/editor grants.
func CanAssignClient(user domain.User, client domain.Client, g Grant) bool {
	return permitted(user, client, g, editRoles)
}

// CanViewBanner and CanEditBanner inherit the campaign's client scope with
// the same role thresholds.
func CanViewBanner(user domain.User, client domain.Client, g Grant) bool {
	return permitted(user, client, g, viewRoles)
}

func CanEditBanner(user domain.User, client domain.Client, g Grant) bool {
	return permitted(user, client, g, editRoles)
}

// CanDeleteClient is false for every actor including superusers: clients are
// soft-deleted by hiding them, never removed.
func CanDeleteClient(domain.User) bool { return false }

// CanDeleteCampaign is false for every actor including superusers:
// campaigns are only ever deactivated.
func CanDeleteCampaign(domain.User) bool { return false }

// CanDeleteBanner follows the edit threshold; banners have no soft-delete
// state of their own.
func CanDeleteBanner(user domain.User, client domain.Client, g Grant) bool {
	return CanEditBanner(user, client, g)
}
