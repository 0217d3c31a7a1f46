package models

// ReminderPayload is the task payload queued when a booking is accepted and
// consumed by the reminder worker.
type ReminderPayload struct {
	BookingID       string `json:"bookingId"`
	Email           string `json:"email"`
	AppointmentDate string `json:"appointmentDate"`
	TreatmentName   string `json:"treatmentName"`
	SelectedSlot    string `json:"selectedSlot"`
}
