package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingDbName  = "restaurant"
	BookingColName = "bookings"

	// MaxGuestsPerSlot is the total guest capacity shared by every
	// booking on one (date, time) slot.
	MaxGuestsPerSlot = 25
)

// AllTimeSlots is the fixed set of daily service slots, in serving
// order. Availability responses preserve this order.
var AllTimeSlots = []string{
	"10:00 AM",
	"12:00 PM",
	"2:00 PM",
	"4:00 PM",
	"6:00 PM",
	"8:00 PM",
	"10:00 PM",
}

// IsValidTimeSlot reports whether label is one of the canonical slots.
func IsValidTimeSlot(label string) bool {
	for _, slot := range AllTimeSlots {
		if slot == label {
			return true
		}
	}
	return false
}

type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date      time.Time          `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	Guests    int                `bson:"guests" json:"guests"`
	Name      string             `bson:"name" json:"name"`
	Contact   string             `bson:"contact" json:"contact"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

func (b *Booking) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	return nil
}

// CreateBookingRequest is the POST /bookings/create body. Guests is
// left untyped because clients send it both as a JSON number and as a
// numeric string; the service parses and rejects anything that is not
// a positive integer.
type CreateBookingRequest struct {
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Guests  any    `json:"guests"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// SlotAvailability partitions the canonical slots for one date into
// slots that still take bookings and slots at or over capacity.
type SlotAvailability struct {
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}

type BookingRepo interface {
	InsertBooking(ctx context.Context, booking *Booking) (*Booking, error)
	FindBookingsBySlot(ctx context.Context, date time.Time, timeLabel string) ([]Booking, error)
	FindBookingsByDate(ctx context.Context, date time.Time) ([]Booking, error)
	FindAllBookings(ctx context.Context) ([]Booking, error)
	FindBookingsByName(ctx context.Context, name string) ([]Booking, error)
	FindBookingsInRange(ctx context.Context, start, end time.Time) ([]Booking, error)
	FindBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	DeleteBookingByID(ctx context.Context, id primitive.ObjectID) error
}
