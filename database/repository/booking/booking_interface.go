package bookingRepo

import "doctorsportal/models"

// BookingRepository provides access to the bookings collection.
type BookingRepository interface {
	// GetByDate returns every booking whose appointmentDate equals date.
	GetByDate(date string) ([]models.Booking, error)
	// GetByEmail returns every booking made by the given patient.
	GetByEmail(email string) ([]models.Booking, error)
	// CountByOwner counts bookings matching the (date, email, treatment) triple.
	CountByOwner(date, email, treatment string) (int64, error)
	// CountBySlot counts bookings holding the given slot for a date and treatment.
	CountBySlot(date, treatment, slot string) (int64, error)
	// Insert stores a new booking and returns its identifier, the same one
	// listings expose.
	Insert(booking *models.Booking) (string, error)
}
