package serviceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cardoctor/database"
	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoServiceRepo creates a ServiceRepository over the services
// collection of db.
func NewMongoServiceRepo(db *mongo.Database, timeout time.Duration) ServiceRepository {
	return &MongoServiceRepo{
		coll:    db.Collection(database.ServicesCollection),
		timeout: timeout,
	}
}

func (r *MongoServiceRepo) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, r.timeout)
}

func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer cursor.Close(ctx)

	services := make([]models.Service, 0)
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// GetByIDWithProjection retrieves a service by ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoServiceRepo) GetByIDWithProjection(ctx context.Context, id primitive.ObjectID, projection bson.M) (*models.Service, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id.Hex(), err)
	}
	return &service, nil
}
