package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterLivenessRoute registers the plain-text liveness endpoint.
func RegisterLivenessRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "doctors portal server is running")
	})
}

// RegisterAvailabilityRoutes registers the public catalog endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.GetAppointmentOptionsHandler)
	r.GET("/appointmentSpecialty", hb.GetSpecialtiesHandler)
}

// RegisterBookingRoutes registers booking submission and listing.
// Submission is public; listing requires a verified identity whose email
// matches the query.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/bookings", hb.SubmitBookingHandler)
	r.GET("/bookings", middleware.Authenticate(), hb.GetBookingsHandler)
}

// RegisterUserRoutes registers user registration, listing, token issuance
// and role management. Granting the admin role requires a verified admin.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, admin middleware.Guard) {
	r.GET("/jwt", hb.IssueTokenHandler)
	r.POST("/users", hb.RegisterUserHandler)
	r.GET("/users", hb.GetUsersHandler)
	r.GET("/users/admin/:email", hb.CheckAdminHandler)
	r.PUT("/users/admin/:id", middleware.Authenticate(), middleware.RequireGuards(admin), hb.GrantAdminHandler)
}

// RegisterDoctorRoutes registers doctor management; every route requires a
// verified identity with the admin role.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle, admin middleware.Guard) {
	doctors := r.Group("/doctors")
	doctors.Use(middleware.Authenticate(), middleware.RequireGuards(admin))
	{
		doctors.GET("", hb.GetDoctorsHandler)
		doctors.POST("", hb.AddDoctorHandler)
		doctors.DELETE("/:id", hb.DeleteDoctorHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, admin middleware.Guard) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLivenessRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb, admin)
	RegisterDoctorRoutes(r, hb, admin)
}
