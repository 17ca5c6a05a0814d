package user

import (
	"fmt"

	"barberdesk/models"
)

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	usr.PasswordHash = ""
	return usr, nil
}

// GetUsersByBranch retrieves the staff of one branch.
func (s *DefaultUserService) GetUsersByBranch(branchID string) ([]models.User, error) {
	users, err := s.Repo.GetByBranch(branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch branch staff: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// GetAllUsers retrieves every account.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// UpdateUser updates profile fields. The password hash, role and operation
// arrays are not updatable through this path.
func (s *DefaultUserService) UpdateUser(updated models.User) (*models.User, error) {
	usr, err := s.Repo.GetByID(updated.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", updated.ID)
	}

	if updated.Name != "" {
		usr.Name = updated.Name
	}
	if updated.Phone != "" {
		usr.Phone = updated.Phone
	}
	if updated.BranchID != "" {
		usr.BranchID = updated.BranchID
	}

	if err := s.Repo.Update(usr); err != nil {
		return nil, err
	}
	usr.PasswordHash = ""
	return usr, nil
}

// DeleteUser removes a user record.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.RevokeAuthToken(userID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return s.Repo.Delete(userID)
}

// SetSuspended flips the suspension flag and, when suspending, ends the
// user's session immediately.
func (s *DefaultUserService) SetSuspended(userID string, suspended bool) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}

	usr.IsSuspended = suspended
	if err := s.Repo.Update(usr); err != nil {
		return nil, err
	}
	if suspended {
		if err := s.RevokeAuthToken(userID); err != nil {
			return nil, fmt.Errorf("failed to revoke session: %w", err)
		}
	}
	usr.PasswordHash = ""
	return usr, nil
}
