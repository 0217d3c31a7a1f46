package user

import (
	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
)

// UserService manages user records, role checks and token issuance.
type UserService interface {
	// Register stores a newly registered user, assigns its id and returns it.
	Register(user *models.User) (string, error)
	// GetAll returns every registered user.
	GetAll() ([]models.User, error)
	// IsAdmin reports whether the user with the given email carries the
	// admin role. An unknown email is simply not an admin.
	IsAdmin(email string) (bool, error)
	// GrantAdmin sets the admin role on the user with the given id and
	// returns the updated record.
	GrantAdmin(id string) (*models.User, error)
	// IssueToken mints a bearer token for the given email when a matching
	// user exists; otherwise it returns ErrUnknownUser.
	IssueToken(email string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
