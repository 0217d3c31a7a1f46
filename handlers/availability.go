package handlers

import (
	"net/http"

	"doctorsportal/services/availability"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the appointment option catalog.
type AvailabilityHandler struct {
	Svc availability.AvailabilityService
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// GetAppointmentOptions handles GET /appointmentOptions?date=.
// It returns the catalog with slots already booked on the date removed.
func (h *AvailabilityHandler) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")

	options, err := h.Svc.AvailableOptions(date)
	if err != nil {
		utils.GetLogger().Error("Failed to compute available options",
			zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load appointment options", "")
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetSpecialties handles GET /appointmentSpecialty, returning treatment
// names only.
func (h *AvailabilityHandler) GetSpecialties(c *gin.Context) {
	names, err := h.Svc.Specialties()
	if err != nil {
		utils.GetLogger().Error("Failed to load specialties", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load specialties", "")
		return
	}
	c.JSON(http.StatusOK, names)
}
