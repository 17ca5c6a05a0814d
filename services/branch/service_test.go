package branch

import (
	"testing"

	"barberdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBranchRepo struct {
	branch  *models.Branch
	updates int
}

func (f *fakeBranchRepo) GetByID(id string) (*models.Branch, error) {
	if f.branch == nil || f.branch.ID != id {
		return nil, nil
	}
	b := *f.branch
	b.Services = append([]models.BranchService(nil), f.branch.Services...)
	return &b, nil
}

func (f *fakeBranchRepo) GetByOwner(string) ([]models.Branch, error) { return nil, nil }

func (f *fakeBranchRepo) Create(b *models.Branch) error {
	f.branch = b
	return nil
}

func (f *fakeBranchRepo) Update(b *models.Branch) error {
	f.updates++
	f.branch = b
	return nil
}

func (f *fakeBranchRepo) Delete(string) error {
	f.branch = nil
	return nil
}

func TestUpsertServiceReplacesByName(t *testing.T) {
	repo := &fakeBranchRepo{branch: &models.Branch{
		ID: "b1", Name: "Piassa", OwnerID: "o1",
		Services: []models.BranchService{{Name: "Cut", BarberPrice: 100}},
	}}
	svc := &DefaultBranchService{Repo: repo}

	b, err := svc.UpsertService("b1", models.BranchService{Name: "Cut", BarberPrice: 120})
	require.NoError(t, err)
	require.Len(t, b.Services, 1)
	assert.Equal(t, 120.0, b.Services[0].BarberPrice)

	b, err = svc.UpsertService("b1", models.BranchService{Name: "Wash", WasherPrice: 50})
	require.NoError(t, err)
	assert.Len(t, b.Services, 2)
}

func TestUpsertServiceRequiresName(t *testing.T) {
	svc := &DefaultBranchService{Repo: &fakeBranchRepo{}}

	_, err := svc.UpsertService("b1", models.BranchService{BarberPrice: 100})
	assert.Error(t, err)
}

func TestRemoveService(t *testing.T) {
	repo := &fakeBranchRepo{branch: &models.Branch{
		ID: "b1", Name: "Piassa", OwnerID: "o1",
		Services: []models.BranchService{
			{Name: "Cut", BarberPrice: 100},
			{Name: "Wash", WasherPrice: 50},
		},
	}}
	svc := &DefaultBranchService{Repo: repo}

	b, err := svc.RemoveService("b1", "Wash")
	require.NoError(t, err)
	require.Len(t, b.Services, 1)
	assert.Equal(t, "Cut", b.Services[0].Name)

	_, err = svc.RemoveService("b1", "Shave")
	assert.Error(t, err)
}

func TestUpdateBranchMigratesLegacyShares(t *testing.T) {
	repo := &fakeBranchRepo{branch: &models.Branch{
		ID: "b1", Name: "Piassa", OwnerID: "o1",
		Services: []models.BranchService{
			{Name: "Cut", BarberPrice: 100, ShareSettings: &models.ShareSettings{BarberShare: 45}},
			{Name: "Wash", WasherPrice: 50},
		},
		ShareSettings: &models.ShareSettings{BarberShare: 50, WasherShare: 50},
	}}
	svc := &DefaultBranchService{Repo: repo}

	b, err := svc.UpdateBranch("b1", BranchInput{Name: "Piassa Main"})
	require.NoError(t, err)
	assert.Equal(t, "Piassa Main", b.Name)
	assert.Nil(t, b.ShareSettings)

	// configured service keeps its own settings
	require.NotNil(t, b.Services[0].ShareSettings)
	assert.Equal(t, 45.0, b.Services[0].ShareSettings.BarberShare)

	// unconfigured service inherits the legacy branch-level settings
	require.NotNil(t, b.Services[1].ShareSettings)
	assert.Equal(t, 50.0, b.Services[1].ShareSettings.WasherShare)
	assert.Equal(t, 1, repo.updates)
}

func TestUpdateBranchUnknownID(t *testing.T) {
	svc := &DefaultBranchService{Repo: &fakeBranchRepo{}}

	_, err := svc.UpdateBranch("ghost", BranchInput{Name: "x"})
	assert.Error(t, err)
}
