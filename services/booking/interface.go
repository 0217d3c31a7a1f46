package booking

import (
	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/tasks"
)

// BookingService admits booking submissions and lists existing bookings.
type BookingService interface {
	// Submit runs the admission check and inserts the booking when it passes.
	// A duplicate is a normal negative outcome: the returned result has
	// Acknowledged set to false and the error is nil.
	Submit(booking *models.Booking) (*models.BookingResult, error)
	// ListByEmail returns the bookings made by the given patient.
	ListByEmail(email string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
	// Reminders is optional; when set, an accepted booking schedules an
	// appointment reminder. Enqueue failures never reject the booking.
	Reminders tasks.ReminderEnqueuer
	// RejectSlotCollision rejects a slot already taken for the same date and
	// treatment even when the patient differs. Off by default: slots may be
	// shared (e.g. group sessions).
	RejectSlotCollision bool
}
