package doctor

import (
	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
)

// DoctorService manages the doctors collection. Every operation is
// admin-gated at the route level.
type DoctorService interface {
	GetAll() ([]models.Doctor, error)
	Add(doctor *models.Doctor) (string, error)
	Remove(id string) error
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}
