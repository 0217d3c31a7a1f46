package doctorRepo

import "doctorsportal/models"

// DoctorRepository provides access to the doctors collection.
type DoctorRepository interface {
	GetAll() ([]models.Doctor, error)
	Create(doctor *models.Doctor) (string, error)
	Delete(id string) error
}
