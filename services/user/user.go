package user

import (
	"fmt"

	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Register stores a newly registered user. The assigned id is the one every
// read path returns and the one GrantAdmin accepts.
func (s *DefaultUserService) Register(u *models.User) (string, error) {
	u.ID = uuid.NewString()
	id, err := s.Repo.Create(u)
	if err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}
	return id, nil
}

// GetAll returns every registered user.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// IsAdmin reports whether the user with the given email carries the admin role.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to check admin role for %s: %w", email, err)
	}
	return usr.IsAdmin(), nil
}

// GrantAdmin sets the admin role on the user with the given storage id and
// returns the updated record.
func (s *DefaultUserService) GrantAdmin(id string) (*models.User, error) {
	usr, err := s.Repo.GrantAdmin(id)
	if err != nil {
		return nil, fmt.Errorf("failed to grant admin role: %w", err)
	}
	return usr, nil
}

// IssueToken mints a bearer token for the given email when a matching user
// exists. The token carries only the email claim.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("IssueToken: failed to fetch user", zap.String("email", email), zap.Error(err))
		return "", fmt.Errorf("failed to look up user %s: %w", email, err)
	}
	if usr == nil {
		return "", ErrUnknownUser
	}
	token, err := utils.GenerateToken(email)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
