package handlers

import (
	"errors"
	"net/http"

	"github.com/anjalidev/restaurant-booking-api/internal/helpers"
	"github.com/anjalidev/restaurant-booking-api/internal/models"
	"github.com/anjalidev/restaurant-booking-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body", err))
			return
		}

		booking, err := bs.CreateBooking(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err, "booking not found")
			return
		}

		c.JSON(http.StatusCreated, models.BookingResponse("booking successful", booking))
	}
}

func GetBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := bs.ListAllBookings(c.Request.Context())
		if err != nil {
			respondError(c, err, "booking not found")
			return
		}

		c.JSON(http.StatusOK, emptyIfNil(bookings))
	}
}

func DeleteBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format", nil))
			return
		}

		if err := bs.DeleteBooking(c.Request.Context(), id); err != nil {
			respondError(c, err, "booking not found")
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse("booking canceled successfully"))
	}
}

func DeleteBookingByUser(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format", nil))
			return
		}

		var reqBody struct {
			Name string `json:"name"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body", err))
			return
		}

		if err := bs.DeleteBookingByUser(c.Request.Context(), id, reqBody.Name); err != nil {
			respondError(c, err, "booking not found")
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse("booking canceled successfully"))
	}
}

func GetBookingsByUser(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := helpers.StringTrim(c.Query("name"))

		bookings, err := bs.ListBookingsByUser(c.Request.Context(), name)
		if err != nil {
			respondError(c, err, "no bookings found for this name")
			return
		}

		c.JSON(http.StatusOK, emptyIfNil(bookings))
	}
}

func GetAvailableTimeSlots(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		availability, err := bs.GetAvailableTimeSlots(c.Request.Context(), c.Query("date"))
		if err != nil {
			respondError(c, err, "booking not found")
			return
		}

		c.JSON(http.StatusOK, availability)
	}
}

func GetBookingsInRange(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := bs.ListBookingsInRange(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
		if err != nil {
			respondError(c, err, "booking not found")
			return
		}

		c.JSON(http.StatusOK, emptyIfNil(bookings))
	}
}

// respondError translates the service error taxonomy to HTTP:
// validation and capacity to 400, ownership to 403, missing records to
// 404 with the endpoint's message, anything else to 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var validationErr *services.ValidationError
	var capacityErr *services.CapacityError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(validationErr.Message, nil))
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(capacityErr.Error(), nil))
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse(services.ErrForbidden.Error(), nil))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(notFoundMsg, nil))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("server error", err))
	}
}

func emptyIfNil(bookings []models.Booking) []models.Booking {
	if bookings == nil {
		return []models.Booking{}
	}
	return bookings
}
