package userRepo

import (
	"barberdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByPhone retrieves a user by its phone number.
	GetByPhone(phone string) (*models.User, error)
	// GetByBranch retrieves all users assigned to a branch.
	GetByBranch(branchID string) ([]models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// PushOperation appends one operation to the named operations array.
	PushOperation(userID, field string, op models.Operation) error
	// PullOperation removes one operation by its stable ID from the named array.
	PullOperation(userID, field, operationID string) error
	// UpdateOperations writes the status and date/payment fields of each given
	// operation back to the named array, addressing elements by their stable
	// IDs so concurrent writers cannot clobber unrelated entries.
	UpdateOperations(userID, field string, ops []models.Operation) error
}
