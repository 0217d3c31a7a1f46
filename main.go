// File: doctorsportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	optionRepoPkg "doctorsportal/database/repository/option"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/tasks"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	optionRepo := optionRepoPkg.NewMongoOptionRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{
		Options:  optionRepo,
		Bookings: bookingRepo,
	}

	reminders := tasks.NewAsynqReminderEnqueuer()
	defer reminders.Close()

	bookingSvc := &booking.DefaultBookingService{
		Repo:                bookingRepo,
		Reminders:           reminders,
		RejectSlotCollision: config.AppConfig.RejectSlotCollision,
	}

	userSvc := &user.DefaultUserService{Repo: userRepo}
	doctorSvc := &doctor.DefaultDoctorService{Repo: doctorRepo}

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilitySvc)
	bookingHandler := handlers.NewBookingHandler(bookingSvc)
	authHandler := handlers.NewAuthHandler(userSvc)
	userHandler := handlers.NewUserHandler(userSvc)
	doctorHandler := handlers.NewDoctorHandler(doctorSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAppointmentOptionsHandler: availabilityHandler.GetAppointmentOptions,
		GetSpecialtiesHandler:        availabilityHandler.GetSpecialties,

		SubmitBookingHandler: bookingHandler.SubmitBooking,
		GetBookingsHandler:   bookingHandler.GetBookings,

		IssueTokenHandler: authHandler.IssueToken,

		RegisterUserHandler: userHandler.RegisterUser,
		GetUsersHandler:     userHandler.GetUsers,
		CheckAdminHandler:   userHandler.CheckAdmin,
		GrantAdminHandler:   userHandler.GrantAdmin,

		GetDoctorsHandler:   doctorHandler.GetDoctors,
		AddDoctorHandler:    doctorHandler.AddDoctor,
		DeleteDoctorHandler: doctorHandler.DeleteDoctor,
	}

	adminGuard := middleware.NewAdminGuard(userRepo)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, adminGuard)

	// Start the reminder worker.
	cron.InitReminderWorker()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
