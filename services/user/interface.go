package user

import (
	userRepo "barberdesk/database/repository/user"
	"barberdesk/models"

	"github.com/go-redis/redis/v8"
)

// RegistrationInput carries the fields needed to create an account.
type RegistrationInput struct {
	Name     string      `json:"name" binding:"required"`
	Phone    string      `json:"phone" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
	BranchID string      `json:"branchId"`
}

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService defines business logic for account operations.
type UserService interface {
	// RegisterUser validates the registration details and creates the account.
	RegisterUser(input RegistrationInput) (*AuthResponse, error)
	// AuthenticateUser verifies phone+password and returns a session token.
	// Inactive and suspended accounts cannot sign in.
	AuthenticateUser(phone, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// GetUsersByBranch retrieves the staff of one branch.
	GetUsersByBranch(branchID string) ([]models.User, error)
	// GetAllUsers retrieves every account.
	GetAllUsers() ([]models.User, error)
	// UpdateUser updates an existing user's profile.
	UpdateUser(user models.User) (*models.User, error)
	// DeleteUser removes a user record.
	DeleteUser(userID string) error
	// SetSuspended flips the suspension flag; suspended staff cannot sign in.
	SetSuspended(userID string, suspended bool) (*models.User, error)
	// RevokeAuthToken revokes the user's session token (for logout).
	RevokeAuthToken(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
	// AuthCache holds issued token hashes; may be nil, in which case sessions
	// are not revocable.
	AuthCache *redis.Client
}
