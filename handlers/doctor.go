package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves doctor management. All routes are admin-gated.
type DoctorHandler struct {
	Svc doctor.DoctorService
}

// NewDoctorHandler creates a DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Svc: svc}
}

// GetDoctors handles GET /doctors.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Svc.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load doctors", "")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctor handles POST /doctors.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor payload", err.Error())
		return
	}

	id, err := h.Svc.Add(&d)
	if err != nil {
		utils.GetLogger().Error("Failed to add doctor",
			zap.String("email", d.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add doctor", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// DeleteDoctor handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.Remove(id); err != nil {
		utils.GetLogger().Error("Failed to delete doctor",
			zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 1})
}
