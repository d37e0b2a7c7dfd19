package bookingRepo

import (
	"context"
	"fmt"

	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Find fetches bookings, filtered by owner email when one is given.
func (r *mongoBookingRepo) Find(ctx context.Context, email string) ([]models.Booking, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Create inserts a new booking and reports the generated identifier.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (models.InsertAck, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	booking.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return models.InsertAck{}, fmt.Errorf("failed to insert booking: %w", err)
	}
	return models.InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// UpdateStatus sets the status field only. A booking that does not exist, or
// is owned by someone else, matches nothing and is not an error.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, ownerEmail, status string) (models.UpdateAck, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	res, err := r.coll.UpdateOne(ctx, ownedFilter(id, ownerEmail), update)
	if err != nil {
		return models.UpdateAck{}, fmt.Errorf("failed to update booking %s: %w", id.Hex(), err)
	}
	return models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// Delete removes a booking. Deleting a missing booking reports zero deletions.
func (r *mongoBookingRepo) Delete(ctx context.Context, id primitive.ObjectID, ownerEmail string) (models.DeleteAck, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, ownedFilter(id, ownerEmail))
	if err != nil {
		return models.DeleteAck{}, fmt.Errorf("failed to delete booking %s: %w", id.Hex(), err)
	}
	return models.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func ownedFilter(id primitive.ObjectID, ownerEmail string) bson.M {
	filter := bson.M{"_id": id}
	if ownerEmail != "" {
		filter["email"] = ownerEmail
	}
	return filter
}
