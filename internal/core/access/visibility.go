package access

import "reklamito/internal/core/domain"

// The *Listable predicates mirror, set-wise, the SQL scoping applied by the
// repositories to list queries. They exist so the single-object evaluator
// and the bulk filter can be tested for set-equivalence; a known class of
// bug is the two drifting apart.

// ClientListable reports whether the client appears in the user's client
// listing. Hidden clients are silently excluded for non-superusers even when
// the user could otherwise view them.
func ClientListable(user domain.User, client domain.Client, g Grant) bool {
	if user.IsSuperuser {
		return true
	}
	if client.Hidden {
		return false
	}
	return CanViewClient(user, client, g)
}

// CampaignListable reports whether a campaign under the given client appears
// in the user's campaign listing. Deliberately narrower than
// CanViewCampaign: only the owner and admin/editor staff see campaigns in
// lists, while readers may still open one directly. BannerListable includes
// readers; the asymmetry is intentional and pinned by tests.
func CampaignListable(user domain.User, client domain.Client, g Grant) bool {
	if user.IsSuperuser {
		return true
	}
	if client.OwnerID == user.ID {
		return true
	}
	return g.In(editRoles)
}

// BannerListable reports whether a banner under the given client appears in
// the user's banner listing. Any staff role qualifies.
func BannerListable(user domain.User, client domain.Client, g Grant) bool {
	if user.IsSuperuser {
		return true
	}
	if client.OwnerID == user.ID {
		return true
	}
	return g.In(viewRoles)
}
