package doctor

import (
	"fmt"
	"testing"

	"doctorsportal/models"
)

// memDoctorRepo is an in-memory DoctorRepository keyed by the doctor id.
type memDoctorRepo struct {
	doctors []models.Doctor
}

func (m *memDoctorRepo) GetAll() ([]models.Doctor, error) {
	return append([]models.Doctor(nil), m.doctors...), nil
}

func (m *memDoctorRepo) Create(d *models.Doctor) (string, error) {
	m.doctors = append(m.doctors, *d)
	return d.ID, nil
}

func (m *memDoctorRepo) Delete(id string) error {
	for i, d := range m.doctors {
		if d.ID == id {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("doctor with id %s not found", id)
}

func TestAddReturnsListedID(t *testing.T) {
	svc := &DefaultDoctorService{Repo: &memDoctorRepo{}}

	id, err := svc.Add(&models.Doctor{Name: "Dr. Lee", Email: "lee@x.com", Specialty: "Braces"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id == "" {
		t.Fatal("Add returned an empty id")
	}

	doctors, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(doctors) != 1 || doctors[0].ID != id {
		t.Fatalf("listed id = %q, want %q", doctors[0].ID, id)
	}
}

func TestRemoveByListedID(t *testing.T) {
	svc := &DefaultDoctorService{Repo: &memDoctorRepo{}}

	if _, err := svc.Add(&models.Doctor{Name: "Dr. Lee", Email: "lee@x.com", Specialty: "Braces"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.Add(&models.Doctor{Name: "Dr. Kim", Email: "kim@x.com", Specialty: "Teeth Cleaning"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	doctors, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}

	// Deleting by the id the list path returns must succeed.
	if err := svc.Remove(doctors[0].ID); err != nil {
		t.Fatalf("Remove with listed id failed: %v", err)
	}

	remaining, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID == doctors[0].ID {
		t.Fatalf("unexpected doctors after delete: %+v", remaining)
	}
}

func TestRemoveUnknownID(t *testing.T) {
	svc := &DefaultDoctorService{Repo: &memDoctorRepo{}}

	if err := svc.Remove("no-such-id"); err == nil {
		t.Fatal("expected an error removing an unknown id")
	}
}
