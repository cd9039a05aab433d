package routes

import (
	"github.com/anjalidev/restaurant-booking-api/internal/container"
	"github.com/anjalidev/restaurant-booking-api/internal/handlers"
	"github.com/anjalidev/restaurant-booking-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container, allowedOrigins []string) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.Metrics())
	r.Use(gin.Recovery())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "OK",
			"service": "restaurant-booking-api",
		})
	})

	// Prometheus exposition
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	bookingRoutes := r.Group("/bookings")
	{
		bookingRoutes.POST("/create", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("/all", handlers.GetBookings(container.BookingService))
		bookingRoutes.DELETE("/delete/:id", handlers.DeleteBooking(container.BookingService))
		bookingRoutes.DELETE("/delete-by-user/:id", handlers.DeleteBookingByUser(container.BookingService))
		bookingRoutes.GET("/bookings-by-user", handlers.GetBookingsByUser(container.BookingService))
		bookingRoutes.GET("/available-slots", handlers.GetAvailableTimeSlots(container.BookingService))
		bookingRoutes.GET("/bookings-in-range", handlers.GetBookingsInRange(container.BookingService))
	}

	return r
}
