package user

import (
	"fmt"

	"barberdesk/models"
	"barberdesk/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = utils.AuthCacheTTL

// AuthenticateUser verifies credentials and returns a session token. The
// isActive and isSuspended flags gate sign-in before any token is issued.
func (s *DefaultUserService) AuthenticateUser(phone, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByPhone(phone)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid phone or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid phone or password")
	}

	if !userRec.IsActive {
		return nil, InactiveError{}
	}
	if userRec.IsSuspended {
		return nil, SuspendedError{}
	}

	token, err := s.issueToken(userRec)
	if err != nil {
		return nil, err
	}

	userRec.PasswordHash = ""
	return &AuthResponse{User: userRec, Token: token}, nil
}

// issueToken signs a session token and caches its hash for revocation.
func (s *DefaultUserService) issueToken(u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.Name, u.Phone, string(u.Role), tokenLifetime)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if s.AuthCache != nil {
		if err := utils.CacheAuthToken(s.AuthCache, u.ID, utils.HashToken(token)); err != nil {
			utils.GetLogger().Error("issueToken: failed to cache token hash",
				zap.String("userID", u.ID), zap.Error(err))
		}
	}
	return token, nil
}

// RevokeAuthToken drops the cached token hash, ending the session.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if s.AuthCache == nil {
		return nil
	}
	return utils.RevokeAuthToken(s.AuthCache, userID)
}
