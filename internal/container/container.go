package container

import (
	"log/slog"

	"github.com/anjalidev/restaurant-booking-api/internal/models"
	"github.com/anjalidev/restaurant-booking-api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	MongoDBClient  *mongo.Client
	BookingService *services.BookingService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)
	bookingService := services.NewBookingService(repo)

	return &Container{
		Logger:         logger,
		MongoDBClient:  mongoDBClient,
		BookingService: bookingService,
	}
}
