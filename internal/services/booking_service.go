package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/anjalidev/restaurant-booking-api/internal/helpers"
	"github.com/anjalidev/restaurant-booking-api/internal/metrics"
	"github.com/anjalidev/restaurant-booking-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookingRepo models.BookingRepo
	slotLocks   *slotLocker
}

func NewBookingService(bookingRepo models.BookingRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		slotLocks:   newSlotLocker(),
	}
}

// CreateBooking validates the request, checks the slot's guest cap and
// persists the booking. The capacity check and insert run under a
// per-slot lock so concurrent creates cannot overshoot the cap.
func (bs *BookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, NewValidationError("date and time are required")
	}

	guests, err := parseGuests(req.Guests)
	if err != nil || guests <= 0 {
		return nil, NewValidationError("invalid guest count: please enter a positive number")
	}

	timeLabel := helpers.StringTrim(req.Time)
	if !models.IsValidTimeSlot(timeLabel) {
		return nil, NewValidationError("invalid time slot %q: valid slots are %s",
			timeLabel, strings.Join(models.AllTimeSlots, ", "))
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}

	unlock := bs.slotLocks.Lock(slotKey(date, timeLabel))
	defer unlock()

	existing, err := bs.bookingRepo.FindBookingsBySlot(ctx, date, timeLabel)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, b := range existing {
		total += b.Guests
	}
	if total+guests > models.MaxGuestsPerSlot {
		metrics.IncCapacityRejected()
		return nil, NewCapacityError()
	}

	booking := &models.Booking{
		Date:    date,
		Time:    timeLabel,
		Guests:  guests,
		Name:    req.Name,
		Contact: req.Contact,
	}
	created, err := bs.bookingRepo.InsertBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	return created, nil
}

func (bs *BookingService) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	return bs.bookingRepo.FindAllBookings(ctx)
}

// ListBookingsByUser returns all bookings held under name. Zero
// matches is ErrNotFound, never an empty success list.
func (bs *BookingService) ListBookingsByUser(ctx context.Context, name string) ([]models.Booking, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name is required")
	}

	bookings, err := bs.bookingRepo.FindBookingsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("no bookings found for this name: %w", ErrNotFound)
	}
	return bookings, nil
}

// ListBookingsInRange returns bookings with startDate <= date <=
// endDate. Both bounds compare as full date-time values; a bare
// calendar date means midnight UTC, so callers wanting inclusive
// end-of-day semantics must pass an end-of-day timestamp.
func (bs *BookingService) ListBookingsInRange(ctx context.Context, startDate, endDate string) ([]models.Booking, error) {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return nil, NewValidationError("start date and end date are required")
	}

	start, err := helpers.ParseDate(startDate)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	end, err := helpers.ParseDate(endDate)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}

	return bs.bookingRepo.FindBookingsInRange(ctx, start, end)
}

// GetAvailableTimeSlots partitions the canonical slot labels for date
// into available and booked, preserving canonical order. A slot with
// no bookings is always available; a slot at or past the cap is
// booked.
func (bs *BookingService) GetAvailableTimeSlots(ctx context.Context, date string) (*models.SlotAvailability, error) {
	if strings.TrimSpace(date) == "" {
		return nil, NewValidationError("date is required")
	}

	parsed, err := helpers.ParseDate(date)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}

	bookings, err := bs.bookingRepo.FindBookingsByDate(ctx, parsed)
	if err != nil {
		return nil, err
	}

	return PartitionTimeSlots(bookings), nil
}

// PartitionTimeSlots buckets every canonical slot by the summed guest
// count of the given bookings.
func PartitionTimeSlots(bookings []models.Booking) *models.SlotAvailability {
	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.Time] += b.Guests
	}

	availability := &models.SlotAvailability{
		AvailableSlots: []string{},
		BookedSlots:    []string{},
	}
	for _, slot := range models.AllTimeSlots {
		if counts[slot] >= models.MaxGuestsPerSlot {
			availability.BookedSlots = append(availability.BookedSlots, slot)
		} else {
			availability.AvailableSlots = append(availability.AvailableSlots, slot)
		}
	}
	return availability
}

// DeleteBooking removes a booking unconditionally after an existence
// check.
func (bs *BookingService) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	booking, err := bs.bookingRepo.FindBookingByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrNotFound
	}

	if err := bs.bookingRepo.DeleteBookingByID(ctx, id); err != nil {
		return err
	}
	metrics.IncBookingDeleted()
	return nil
}

// DeleteBookingByUser removes a booking only when name exactly matches
// the stored holder's name. The name is a client-supplied ownership
// token, not an authenticated identity.
func (bs *BookingService) DeleteBookingByUser(ctx context.Context, id primitive.ObjectID, name string) error {
	booking, err := bs.bookingRepo.FindBookingByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrNotFound
	}
	if booking.Name != name {
		return ErrForbidden
	}

	if err := bs.bookingRepo.DeleteBookingByID(ctx, id); err != nil {
		return err
	}
	metrics.IncBookingDeleted()
	return nil
}

func slotKey(date time.Time, timeLabel string) string {
	return date.Format(time.RFC3339) + "|" + timeLabel
}

// parseGuests accepts the guest count as a JSON number or a numeric
// string, mirroring what booking forms actually send.
func parseGuests(v any) (int, error) {
	switch g := v.(type) {
	case nil:
		return 0, fmt.Errorf("guest count is missing")
	case int:
		return g, nil
	case int64:
		return int(g), nil
	case float64:
		return int(g), nil
	case string:
		n, err := strconv.Atoi(helpers.StringTrim(g))
		if err != nil {
			return 0, fmt.Errorf("guest count %q is not a number", g)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("guest count has unsupported type %T", v)
	}
}
