package userRepo

import "doctorsportal/models"

// UserRepository provides access to the users collection.
type UserRepository interface {
	// Create inserts a new user document and returns its application id.
	Create(user *models.User) (string, error)
	// GetAll returns every registered user.
	GetAll() ([]models.User, error)
	// GetByEmail returns the user with the given email, or (nil, nil) when
	// no such user exists.
	GetByEmail(email string) (*models.User, error)
	// GrantAdmin sets the admin role on the user with the given id and
	// returns the updated record. The id is the one read paths expose.
	GrantAdmin(id string) (*models.User, error)
}
