package availability

import (
	bookingRepo "doctorsportal/database/repository/booking"
	optionRepo "doctorsportal/database/repository/option"
	"doctorsportal/models"
)

// AvailabilityService computes the remaining open slots per treatment.
type AvailabilityService interface {
	// AvailableOptions returns the option catalog for the given date with
	// already-booked slots removed.
	AvailableOptions(date string) ([]models.AppointmentOption, error)
	// Specialties returns only the treatment names.
	Specialties() ([]string, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Options  optionRepo.OptionRepository
	Bookings bookingRepo.BookingRepository
}
