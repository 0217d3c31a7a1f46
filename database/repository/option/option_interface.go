package optionRepo

import "doctorsportal/models"

// OptionRepository provides read access to the appointment option catalog.
// The catalog is seeded administratively; there is no write path here.
type OptionRepository interface {
	GetAll() ([]models.AppointmentOption, error)
	GetSpecialties() ([]string, error)
}
