package branch

import (
	branchRepo "barberdesk/database/repository/branch"
	"barberdesk/models"
)

// BranchInput carries the fields needed to create or rename a branch.
type BranchInput struct {
	Name string `json:"name" binding:"required"`
}

// BranchService defines business logic for branches and their embedded
// service catalogs.
type BranchService interface {
	// CreateBranch creates a branch for the given owner.
	CreateBranch(ownerID string, input BranchInput) (*models.Branch, error)
	// GetBranchByID retrieves a branch by its unique ID.
	GetBranchByID(id string) (*models.Branch, error)
	// GetBranchesByOwner retrieves all branches of one owner.
	GetBranchesByOwner(ownerID string) ([]models.Branch, error)
	// UpdateBranch renames a branch and migrates legacy branch-level share
	// settings onto services that have none of their own.
	UpdateBranch(id string, input BranchInput) (*models.Branch, error)
	// DeleteBranch removes a branch.
	DeleteBranch(id string) error
	// UpsertService adds or replaces one service in the branch catalog.
	UpsertService(branchID string, svc models.BranchService) (*models.Branch, error)
	// RemoveService drops one service from the branch catalog by name.
	RemoveService(branchID, serviceName string) (*models.Branch, error)
}

// DefaultBranchService is the production implementation.
type DefaultBranchService struct {
	Repo branchRepo.BranchRepository
}
