package bookingRepo

import (
	"context"
	"time"

	"cardoctor/database"
	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Find returns the bookings owned by email, or every booking when email is empty.
	Find(ctx context.Context, email string) ([]models.Booking, error)
	// Create inserts a booking as a new document.
	Create(ctx context.Context, booking models.Booking) (models.InsertAck, error)
	// UpdateStatus overwrites the status field of the booking with the given id
	// owned by ownerEmail. Other fields are left untouched.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, ownerEmail, status string) (models.UpdateAck, error)
	// Delete removes the booking with the given id owned by ownerEmail.
	Delete(ctx context.Context, id primitive.ObjectID, ownerEmail string) (models.DeleteAck, error)
}

type mongoBookingRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoBookingRepo returns a BookingRepository backed by the bookings
// collection of db. Every call is bounded by timeout.
func NewMongoBookingRepo(db *mongo.Database, timeout time.Duration) BookingRepository {
	return &mongoBookingRepo{
		coll:    db.Collection(database.BookingsCollection),
		timeout: timeout,
	}
}

// newContext derives a context bounded by the repository timeout.
func (r *mongoBookingRepo) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, r.timeout)
}
