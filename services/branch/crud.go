package branch

import (
	"fmt"

	"barberdesk/models"

	"github.com/google/uuid"
)

// CreateBranch creates a branch for the given owner.
func (s *DefaultBranchService) CreateBranch(ownerID string, input BranchInput) (*models.Branch, error) {
	b := &models.Branch{
		ID:      uuid.New().String(),
		Name:    input.Name,
		OwnerID: ownerID,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}
	return b, nil
}

// GetBranchByID retrieves a branch by its unique ID.
func (s *DefaultBranchService) GetBranchByID(id string) (*models.Branch, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch branch: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("branch with id %s not found", id)
	}
	return b, nil
}

// GetBranchesByOwner retrieves all branches of one owner.
func (s *DefaultBranchService) GetBranchesByOwner(ownerID string) ([]models.Branch, error) {
	return s.Repo.GetByOwner(ownerID)
}

// UpdateBranch renames a branch. Legacy branch-level share settings are
// migrated onto services that have none of their own, then cleared; from then
// on the per-service settings are the only source.
func (s *DefaultBranchService) UpdateBranch(id string, input BranchInput) (*models.Branch, error) {
	b, err := s.GetBranchByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		b.Name = input.Name
	}
	migrateShares(b)

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBranch removes a branch.
func (s *DefaultBranchService) DeleteBranch(id string) error {
	return s.Repo.Delete(id)
}

// migrateShares copies the legacy branch-level share settings to every
// service still missing its own, then drops the branch-level copy.
func migrateShares(b *models.Branch) {
	if b.ShareSettings == nil {
		return
	}
	for i := range b.Services {
		if b.Services[i].ShareSettings == nil {
			shares := *b.ShareSettings
			b.Services[i].ShareSettings = &shares
		}
	}
	b.ShareSettings = nil
}
