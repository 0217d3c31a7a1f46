package doctor

import (
	"fmt"

	"doctorsportal/models"

	"github.com/google/uuid"
)

// GetAll returns every doctor.
func (s *DefaultDoctorService) GetAll() ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// Add stores a new doctor and returns the storage id.
func (s *DefaultDoctorService) Add(d *models.Doctor) (string, error) {
	d.ID = uuid.NewString()
	id, err := s.Repo.Create(d)
	if err != nil {
		return "", fmt.Errorf("failed to add doctor: %w", err)
	}
	return id, nil
}

// Remove deletes the doctor with the given storage id.
func (s *DefaultDoctorService) Remove(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to remove doctor: %w", err)
	}
	return nil
}
