package models

import "time"

// Booking represents a confirmed reservation of one slot for one treatment
// by one patient on one date.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                           // Application-level identifier (UUID)
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"` // "YYYY-MM-DD" as sent by the client
	TreatmentName   string    `bson:"treatmentName" json:"treatmentName"`
	SelectedSlot    string    `bson:"selectedSlot" json:"selectedSlot"`
	Email           string    `bson:"email" json:"email"`
	PatientName     string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// BookingResult is the outcome of a booking submission. A duplicate booking
// is a normal negative outcome, not an error: Acknowledged is false and
// Message explains why.
type BookingResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
