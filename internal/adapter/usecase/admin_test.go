package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
	"reklamito/internal/core/port/mocks"
)

type adminMocks struct {
	clients     *mocks.MockClientRepository
	campaigns   *mocks.MockCampaignRepository
	banners     *mocks.MockBannerRepository
	staff       *mocks.MockStaffDirectory
	counters    *mocks.MockCounterStore
	billing     *mocks.MockBillingRepository
	experiments *mocks.MockExperimentRepository
}

func newTestAdmin(t *testing.T) (*Admin, adminMocks) {
	m := adminMocks{
		clients:     mocks.NewMockClientRepository(t),
		campaigns:   mocks.NewMockCampaignRepository(t),
		banners:     mocks.NewMockBannerRepository(t),
		staff:       mocks.NewMockStaffDirectory(t),
		counters:    mocks.NewMockCounterStore(t),
		billing:     mocks.NewMockBillingRepository(t),
		experiments: mocks.NewMockExperimentRepository(t),
	}
	a := NewAdmin(m.clients, m.campaigns, m.banners, m.staff, m.counters, m.billing, m.experiments, testLogger)
	return a, m
}

var (
	root  = domain.User{ID: 1, IsSuperuser: true}
	alice = domain.User{ID: 2} // owns client 10
	carol = domain.User{ID: 4} // staff, role varies per test
	dave  = domain.User{ID: 5} // stranger unless granted

	aurora = domain.Client{ID: 10, Name: "Aurora Media", TaxID: "7701234567", OwnerID: 2}
)

func TestCreateClientOwnerForcedToActor(t *testing.T) {
	a, m := newTestAdmin(t)

	m.clients.EXPECT().
		CreateClient(mock.Anything, mock.AnythingOfType("*domain.Client")).
		RunAndReturn(func(_ context.Context, c *domain.Client) error {
			c.ID = 11
			return nil
		})

	hidden := true
	v, err := a.CreateClient(context.Background(), carol, port.ClientInput{
		Name:    "Borealis Retail",
		TaxID:   "7809876543",
		OwnerID: 99,     // ignored for non-superusers
		Hidden:  &hidden, // likewise
	})
	require.NoError(t, err)

	assert.Equal(t, carol.ID, v.OwnerID)
	assert.Nil(t, v.Hidden, "hidden flag is a superuser-only field")
}

func TestCreateClientSuperuserAssignsOwner(t *testing.T) {
	a, m := newTestAdmin(t)

	var created domain.Client
	m.clients.EXPECT().
		CreateClient(mock.Anything, mock.AnythingOfType("*domain.Client")).
		RunAndReturn(func(_ context.Context, c *domain.Client) error {
			c.ID = 12
			created = *c
			return nil
		})

	hidden := true
	v, err := a.CreateClient(context.Background(), root, port.ClientInput{
		Name:    "Cinder Foods",
		TaxID:   "7712345678",
		OwnerID: 2,
		Hidden:  &hidden,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), created.OwnerID)
	assert.True(t, created.Hidden)
	require.NotNil(t, v.Hidden)
	assert.True(t, *v.Hidden)
}

func TestCreateClientValidation(t *testing.T) {
	a, _ := newTestAdmin(t)

	_, err := a.CreateClient(context.Background(), alice, port.ClientInput{TaxID: "7701"})
	assert.ErrorIs(t, err, port.ErrValidation)

	_, err = a.CreateClient(context.Background(), alice, port.ClientInput{Name: "No Tax"})
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestUpdateClientFieldOwnership(t *testing.T) {
	a, m := newTestAdmin(t)

	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.staff.EXPECT().RoleFor(mock.Anything, carol.ID, int64(10)).Return(domain.RoleAdmin, true, nil)

	var updated domain.Client
	m.clients.EXPECT().
		UpdateClient(mock.Anything, mock.AnythingOfType("*domain.Client")).
		RunAndReturn(func(_ context.Context, c *domain.Client) error {
			updated = *c
			return nil
		})

	hidden := true
	_, err := a.UpdateClient(context.Background(), carol, 10, port.ClientInput{
		Name:    "Aurora Media Group",
		TaxID:   "0000000000",
		OwnerID: 99,
		Hidden:  &hidden,
	})
	require.NoError(t, err)

	// Name changes, everything read-only keeps its stored value.
	assert.Equal(t, "Aurora Media Group", updated.Name)
	assert.Equal(t, aurora.TaxID, updated.TaxID)
	assert.Equal(t, aurora.OwnerID, updated.OwnerID)
	assert.False(t, updated.Hidden)
}

func TestUpdateClientRequiresAdminRole(t *testing.T) {
	a, m := newTestAdmin(t)

	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.staff.EXPECT().RoleFor(mock.Anything, carol.ID, int64(10)).Return(domain.RoleEditor, true, nil)

	_, err := a.UpdateClient(context.Background(), carol, 10, port.ClientInput{Name: "x"})
	assert.ErrorIs(t, err, port.ErrPermissionDenied)
}

func TestDeleteClientAndCampaignAlwaysDenied(t *testing.T) {
	a, _ := newTestAdmin(t)

	for _, actor := range []domain.User{root, alice, dave} {
		assert.ErrorIs(t, a.DeleteClient(context.Background(), actor, 10), port.ErrPermissionDenied)
		assert.ErrorIs(t, a.DeleteCampaign(context.Background(), actor, 20), port.ErrPermissionDenied)
	}
}

func TestAddStaffRejectsOwner(t *testing.T) {
	a, m := newTestAdmin(t)

	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.staff.EXPECT().RoleFor(mock.Anything, alice.ID, int64(10)).Return(domain.StaffRole(0), false, nil)

	err := a.AddStaff(context.Background(), alice, 10, alice.ID, domain.RoleReader)
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestAddStaffPermissions(t *testing.T) {
	t.Run("editor cannot manage staff", func(t *testing.T) {
		a, m := newTestAdmin(t)
		c := aurora
		m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
		m.staff.EXPECT().RoleFor(mock.Anything, carol.ID, int64(10)).Return(domain.RoleEditor, true, nil)

		err := a.AddStaff(context.Background(), carol, 10, dave.ID, domain.RoleReader)
		assert.ErrorIs(t, err, port.ErrPermissionDenied)
	})

	t.Run("owner adds staff without a grant", func(t *testing.T) {
		a, m := newTestAdmin(t)
		c := aurora
		m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
		m.staff.EXPECT().RoleFor(mock.Anything, alice.ID, int64(10)).Return(domain.StaffRole(0), false, nil)
		m.clients.EXPECT().
			AddStaff(mock.Anything, domain.StaffMembership{UserID: dave.ID, ClientID: 10, Role: domain.RoleReader}).
			Return(nil)

		err := a.AddStaff(context.Background(), alice, 10, dave.ID, domain.RoleReader)
		assert.NoError(t, err)
	})
}

func TestCreateCampaignAuthorForcedToActor(t *testing.T) {
	a, m := newTestAdmin(t)

	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.staff.EXPECT().RoleFor(mock.Anything, carol.ID, int64(10)).Return(domain.RoleEditor, true, nil)

	var created domain.Campaign
	m.campaigns.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		RunAndReturn(func(_ context.Context, cp *domain.Campaign) error {
			cp.ID = 20
			created = *cp
			return nil
		})

	cp, err := a.CreateCampaign(context.Background(), carol, port.CampaignInput{
		Name:      "Summer push",
		ClientID:  10,
		AuthorID:  99, // ignored for non-superusers
		Budget:    500000,
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, carol.ID, created.AuthorID)
	assert.Equal(t, carol.ID, cp.AuthorID)
}

func TestCreateCampaignSuperuserAssignsAuthor(t *testing.T) {
	a, m := newTestAdmin(t)

	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.campaigns.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	cp, err := a.CreateCampaign(context.Background(), root, port.CampaignInput{
		Name:     "Root push",
		ClientID: 10,
		AuthorID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cp.AuthorID)
}

func TestCreateCampaignStrangerDenied(t *testing.T) {
	a, m := newTestAdmin(t)

	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.staff.EXPECT().RoleFor(mock.Anything, dave.ID, int64(10)).Return(domain.StaffRole(0), false, nil)

	_, err := a.CreateCampaign(context.Background(), dave, port.CampaignInput{
		Name: "Sneaky", ClientID: 10,
	})
	assert.ErrorIs(t, err, port.ErrPermissionDenied)
}

func TestUpdateCampaignImmutableReferences(t *testing.T) {
	a, m := newTestAdmin(t)

	stored := domain.Campaign{ID: 20, Name: "Summer push", ClientID: 10, AuthorID: 2, IsActive: true}
	m.campaigns.EXPECT().Campaign(mock.Anything, int64(20)).Return(&stored, nil)
	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.staff.EXPECT().RoleFor(mock.Anything, carol.ID, int64(10)).Return(domain.RoleEditor, true, nil)

	var updated domain.Campaign
	m.campaigns.EXPECT().
		UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		RunAndReturn(func(_ context.Context, cp *domain.Campaign) error {
			updated = *cp
			return nil
		})

	_, err := a.UpdateCampaign(context.Background(), carol, 20, port.CampaignInput{
		Name:     "Summer push v2",
		ClientID: 99, // both ignored for non-superusers
		AuthorID: 99,
		Budget:   700000,
		IsActive: false,
	})
	require.NoError(t, err)

	assert.Equal(t, "Summer push v2", updated.Name)
	assert.Equal(t, int64(10), updated.ClientID)
	assert.Equal(t, int64(2), updated.AuthorID)
	assert.Equal(t, int64(700000), updated.Budget)
	assert.False(t, updated.IsActive)
}

func TestGetCampaignReaderMayOpen(t *testing.T) {
	a, m := newTestAdmin(t)

	stored := domain.Campaign{ID: 20, ClientID: 10}
	m.campaigns.EXPECT().Campaign(mock.Anything, int64(20)).Return(&stored, nil)
	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.staff.EXPECT().RoleFor(mock.Anything, dave.ID, int64(10)).Return(domain.RoleReader, true, nil)

	cp, err := a.GetCampaign(context.Background(), dave, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(20), cp.ID)
}

func TestBannerCounters(t *testing.T) {
	a, m := newTestAdmin(t)

	banner := domain.Banner{ID: 7, CampaignID: 20, Content: json.RawMessage(`{}`)}
	m.banners.EXPECT().Banner(mock.Anything, int64(7)).Return(&banner, nil)
	stored := domain.Campaign{ID: 20, ClientID: 10}
	m.campaigns.EXPECT().Campaign(mock.Anything, int64(20)).Return(&stored, nil)
	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.staff.EXPECT().RoleFor(mock.Anything, dave.ID, int64(10)).Return(domain.RoleReader, true, nil)
	m.counters.EXPECT().Shows(mock.Anything, int64(7)).Return(int64(140), nil)
	m.counters.EXPECT().Clicks(mock.Anything, int64(7)).Return(int64(9), nil)

	got, err := a.BannerCounters(context.Background(), dave, 7)
	require.NoError(t, err)
	assert.Equal(t, &port.BannerCounters{Shows: 140, Clicks: 9}, got)
}

func TestUpdateBannerCampaignImmutable(t *testing.T) {
	a, m := newTestAdmin(t)

	banner := domain.Banner{ID: 7, Name: "old", CampaignID: 20, Content: json.RawMessage(`{}`)}
	m.banners.EXPECT().Banner(mock.Anything, int64(7)).Return(&banner, nil)
	stored := domain.Campaign{ID: 20, ClientID: 10}
	m.campaigns.EXPECT().Campaign(mock.Anything, int64(20)).Return(&stored, nil)
	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.staff.EXPECT().RoleFor(mock.Anything, carol.ID, int64(10)).Return(domain.RoleEditor, true, nil)

	var updated domain.Banner
	m.banners.EXPECT().
		UpdateBanner(mock.Anything, mock.AnythingOfType("*domain.Banner")).
		RunAndReturn(func(_ context.Context, b *domain.Banner) error {
			updated = *b
			return nil
		})

	_, err := a.UpdateBanner(context.Background(), carol, 7, port.BannerInput{
		Name:       "new",
		CampaignID: 99,
		IsActive:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Name)
	assert.Equal(t, int64(20), updated.CampaignID)
}

func TestDeleteBannerAtEditThreshold(t *testing.T) {
	banner := domain.Banner{ID: 7, CampaignID: 20, Content: json.RawMessage(`{}`)}
	stored := domain.Campaign{ID: 20, ClientID: 10}

	t.Run("editor may delete", func(t *testing.T) {
		a, m := newTestAdmin(t)
		b, cp, c := banner, stored, aurora
		m.banners.EXPECT().Banner(mock.Anything, int64(7)).Return(&b, nil)
		m.campaigns.EXPECT().Campaign(mock.Anything, int64(20)).Return(&cp, nil)
		m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
		m.staff.EXPECT().RoleFor(mock.Anything, carol.ID, int64(10)).Return(domain.RoleEditor, true, nil)
		m.banners.EXPECT().DeleteBanner(mock.Anything, int64(7)).Return(nil)

		assert.NoError(t, a.DeleteBanner(context.Background(), carol, 7))
	})

	t.Run("reader may not", func(t *testing.T) {
		a, m := newTestAdmin(t)
		b, cp, c := banner, stored, aurora
		m.banners.EXPECT().Banner(mock.Anything, int64(7)).Return(&b, nil)
		m.campaigns.EXPECT().Campaign(mock.Anything, int64(20)).Return(&cp, nil)
		m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
		m.staff.EXPECT().RoleFor(mock.Anything, dave.ID, int64(10)).Return(domain.RoleReader, true, nil)

		assert.ErrorIs(t, a.DeleteBanner(context.Background(), dave, 7), port.ErrPermissionDenied)
	})
}

func TestClientBalance(t *testing.T) {
	t.Run("missing record is not found", func(t *testing.T) {
		a, m := newTestAdmin(t)
		c := aurora
		m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
		m.staff.EXPECT().RoleFor(mock.Anything, alice.ID, int64(10)).Return(domain.StaffRole(0), false, nil)
		m.billing.EXPECT().BalanceByClient(mock.Anything, int64(10)).Return(nil, nil)

		_, err := a.ClientBalance(context.Background(), alice, 10)
		assert.ErrorIs(t, err, port.ErrNotFound)
	})

	t.Run("stranger denied before billing read", func(t *testing.T) {
		a, m := newTestAdmin(t)
		c := aurora
		m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
		m.staff.EXPECT().RoleFor(mock.Anything, dave.ID, int64(10)).Return(domain.StaffRole(0), false, nil)

		_, err := a.ClientBalance(context.Background(), dave, 10)
		assert.ErrorIs(t, err, port.ErrPermissionDenied)
	})
}

func TestCampaignExperiments(t *testing.T) {
	a, m := newTestAdmin(t)

	stored := domain.Campaign{ID: 20, ClientID: 10}
	m.campaigns.EXPECT().Campaign(mock.Anything, int64(20)).Return(&stored, nil)
	c := aurora
	m.clients.EXPECT().Client(mock.Anything, int64(10)).Return(&c, nil)
	m.staff.EXPECT().RoleFor(mock.Anything, alice.ID, int64(10)).Return(domain.StaffRole(0), false, nil)

	exp := domain.Experiment{ID: 1, Name: "Headline test", CampaignID: 20}
	m.experiments.EXPECT().ExperimentsByCampaign(mock.Anything, int64(20)).Return([]domain.Experiment{exp}, nil)
	m.experiments.EXPECT().ResultsByExperiment(mock.Anything, int64(1)).Return([]domain.ExperimentResult{
		{ExperimentID: 1, VariantID: 1, Impressions: 1000, Clicks: 25},
		{ExperimentID: 1, VariantID: 2, Impressions: 0, Clicks: 0},
	}, nil)

	views, err := a.CampaignExperiments(context.Background(), alice, 20)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Results, 2)
	assert.InDelta(t, 2.5, views[0].Results[0].CTR, 0.0001)
	assert.Zero(t, views[0].Results[1].CTR)
}
