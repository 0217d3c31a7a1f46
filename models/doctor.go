package models

import "time"

// Doctor is a practitioner offering one of the catalog treatments.
type Doctor struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Specialty string    `bson:"specialty" json:"specialty"` // Matches an AppointmentOption name
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
