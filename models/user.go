package models

import "time"

// RoleAdmin is the role marker granting access to doctor management and
// role-granting operations.
const RoleAdmin = "admin"

// User represents a registered patient or administrator. Role is empty for
// regular users and RoleAdmin for administrators.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
