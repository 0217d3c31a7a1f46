package availability

import (
	"fmt"

	"doctorsportal/models"
)

// AvailableOptions subtracts the slots consumed by existing bookings on the
// given date from the full catalog. Catalog order and slot order are
// preserved; the stored catalog entries are never mutated. A date with no
// bookings (including a malformed date, which matches nothing) yields the
// catalog unchanged.
func (s *DefaultAvailabilityService) AvailableOptions(date string) ([]models.AppointmentOption, error) {
	catalog, err := s.Options.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load option catalog: %w", err)
	}

	booked, err := s.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	// Slots taken per treatment on this date.
	taken := make(map[string]map[string]struct{})
	for _, b := range booked {
		slots, ok := taken[b.TreatmentName]
		if !ok {
			slots = make(map[string]struct{})
			taken[b.TreatmentName] = slots
		}
		slots[b.SelectedSlot] = struct{}{}
	}

	result := make([]models.AppointmentOption, 0, len(catalog))
	for _, opt := range catalog {
		remaining := make([]string, 0, len(opt.Slots))
		for _, slot := range opt.Slots {
			if _, used := taken[opt.Name][slot]; !used {
				remaining = append(remaining, slot)
			}
		}
		opt.Slots = remaining
		result = append(result, opt)
	}
	return result, nil
}

// Specialties returns the treatment names only.
func (s *DefaultAvailabilityService) Specialties() ([]string, error) {
	names, err := s.Options.GetSpecialties()
	if err != nil {
		return nil, fmt.Errorf("failed to load specialties: %w", err)
	}
	return names, nil
}
