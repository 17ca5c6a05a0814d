package user

import (
	"fmt"

	"barberdesk/models"
	"barberdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser validates the registration details, creates the account and
// signs the new user in. Staff roles must name the branch they work at.
func (s *DefaultUserService) RegisterUser(input RegistrationInput) (*AuthResponse, error) {
	if !models.ValidRole(input.Role) {
		return nil, fmt.Errorf("unknown role %q", input.Role)
	}
	if input.Role.IsStaff() && input.BranchID == "" {
		return nil, fmt.Errorf("role %s requires a branchId", input.Role)
	}

	existing, err := s.Repo.GetByPhone(input.Phone)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check phone", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, DuplicatePhoneError{Phone: input.Phone}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         input.Role,
		BranchID:     input.BranchID,
		IsActive:     true,
	}
	if err := s.Repo.Create(newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(newUser)
	if err != nil {
		return nil, err
	}

	newUser.PasswordHash = ""
	return &AuthResponse{User: newUser, Token: token}, nil
}
