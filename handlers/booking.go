package handlers

import (
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking submission and per-patient listings.
type BookingHandler struct {
	Svc booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// SubmitBooking handles POST /bookings. A duplicate booking is answered with
// 200 and acknowledged:false, not an HTTP error.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	result, err := h.Svc.Submit(&b)
	if err != nil {
		utils.GetLogger().Error("Failed to submit booking",
			zap.String("email", b.Email), zap.String("date", b.AppointmentDate), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit booking", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookings handles GET /bookings?email=. The queried email must equal the
// caller's verified identity.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	identity := middleware.GetIdentity(c)

	if email != identity {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
		return
	}

	bookings, err := h.Svc.ListByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings",
			zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}
