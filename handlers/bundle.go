package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the endpoint handlers so routes can be registered in
// one place.
type HandlerBundle struct {
	// Availability endpoints.
	GetAppointmentOptionsHandler gin.HandlerFunc
	GetSpecialtiesHandler        gin.HandlerFunc

	// Booking endpoints.
	SubmitBookingHandler gin.HandlerFunc
	GetBookingsHandler   gin.HandlerFunc

	// Token issuance.
	IssueTokenHandler gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler gin.HandlerFunc
	GetUsersHandler     gin.HandlerFunc
	CheckAdminHandler   gin.HandlerFunc
	GrantAdminHandler   gin.HandlerFunc

	// Doctor endpoints.
	GetDoctorsHandler   gin.HandlerFunc
	AddDoctorHandler    gin.HandlerFunc
	DeleteDoctorHandler gin.HandlerFunc
}
