package branchRepo

import "barberdesk/models"

// BranchRepository defines methods for branch data access.
type BranchRepository interface {
	// GetByID retrieves a branch by its unique ID.
	GetByID(id string) (*models.Branch, error)
	// GetByOwner retrieves all branches owned by the given user.
	GetByOwner(ownerID string) ([]models.Branch, error)
	// Create inserts a new branch record.
	Create(branch *models.Branch) error
	// Update modifies an existing branch record.
	Update(branch *models.Branch) error
	// Delete removes a branch record by its ID.
	Delete(id string) error
}
