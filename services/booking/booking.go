package booking

import (
	"fmt"
	"time"

	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit checks whether the patient already holds a booking for the same
// (date, email, treatment) triple and inserts the booking when they do not.
// The check and the insert are separate calls; two concurrent submissions can
// both pass the check (accepted property of the design, see DESIGN.md).
func (s *DefaultBookingService) Submit(b *models.Booking) (*models.BookingResult, error) {
	count, err := s.Repo.CountByOwner(b.AppointmentDate, b.Email, b.TreatmentName)
	if err != nil {
		return nil, fmt.Errorf("admission check failed: %w", err)
	}
	if count > 0 {
		return &models.BookingResult{
			Acknowledged: false,
			Message:      fmt.Sprintf("You already have a booking on %s, on %s.", b.AppointmentDate, b.TreatmentName),
		}, nil
	}

	if s.RejectSlotCollision {
		taken, err := s.Repo.CountBySlot(b.AppointmentDate, b.TreatmentName, b.SelectedSlot)
		if err != nil {
			return nil, fmt.Errorf("slot collision check failed: %w", err)
		}
		if taken > 0 {
			return &models.BookingResult{
				Acknowledged: false,
				Message:      fmt.Sprintf("The %s slot on %s for %s is already taken.", b.SelectedSlot, b.AppointmentDate, b.TreatmentName),
			}, nil
		}
	}

	b.ID = uuid.NewString()
	insertedID, err := s.Repo.Insert(b)
	if err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	s.scheduleReminder(b)

	return &models.BookingResult{
		Acknowledged: true,
		InsertedID:   insertedID,
	}, nil
}

// ListByEmail returns the bookings made by the given patient.
func (s *DefaultBookingService) ListByEmail(email string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", email, err)
	}
	return bookings, nil
}

// scheduleReminder enqueues a reminder the morning before the appointment.
// Best effort: an unparsable date or a queue failure is logged and ignored.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking) {
	if s.Reminders == nil {
		return
	}

	day, err := time.Parse("2006-01-02", b.AppointmentDate)
	if err != nil {
		utils.GetLogger().Debug("Skipping reminder for unparsable date",
			zap.String("date", b.AppointmentDate))
		return
	}

	fireAt := day.Add(-16 * time.Hour) // 8 AM the day before
	payload := models.ReminderPayload{
		BookingID:       b.ID,
		Email:           b.Email,
		AppointmentDate: b.AppointmentDate,
		TreatmentName:   b.TreatmentName,
		SelectedSlot:    b.SelectedSlot,
	}
	if err := s.Reminders.EnqueueReminder(payload, fireAt); err != nil {
		utils.GetLogger().Warn("Failed to enqueue booking reminder",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
}
