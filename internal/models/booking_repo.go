package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (mdb *MongodbRepo) InsertBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingDbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := booking.BeforeCreate(); err != nil {
		return nil, err
	}

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}

	return booking, nil
}

func (mdb *MongodbRepo) FindBookingsBySlot(ctx context.Context, date time.Time, timeLabel string) ([]Booking, error) {
	return mdb.findBookings(ctx, bson.M{"date": date, "time": timeLabel})
}

func (mdb *MongodbRepo) FindBookingsByDate(ctx context.Context, date time.Time) ([]Booking, error) {
	return mdb.findBookings(ctx, bson.M{"date": date})
}

func (mdb *MongodbRepo) FindAllBookings(ctx context.Context) ([]Booking, error) {
	return mdb.findBookings(ctx, bson.M{})
}

func (mdb *MongodbRepo) FindBookingsByName(ctx context.Context, name string) ([]Booking, error) {
	return mdb.findBookings(ctx, bson.M{"name": name})
}

func (mdb *MongodbRepo) FindBookingsInRange(ctx context.Context, start, end time.Time) ([]Booking, error) {
	return mdb.findBookings(ctx, bson.M{
		"date": bson.M{"$gte": start, "$lte": end},
	})
}

// FindBookingByID returns (nil, nil) when no booking has the given id.
func (mdb *MongodbRepo) FindBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingDbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking by ID: %v", err)
	}

	return &booking, nil
}

func (mdb *MongodbRepo) DeleteBookingByID(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, BookingDbName, BookingColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error deleting booking: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) findBookings(ctx context.Context, filter bson.M) ([]Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingDbName, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []Booking
	for cursor.Next(ctx) {
		var booking Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, booking)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}
