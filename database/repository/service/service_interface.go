package serviceRepo

import (
	"context"

	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRepository defines read access to the service catalog.
type ServiceRepository interface {
	// GetAll retrieves every service.
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetByIDWithProjection retrieves a service by its document ID.
	// It returns nil, nil when no service matches.
	GetByIDWithProjection(ctx context.Context, id primitive.ObjectID, projection bson.M) (*models.Service, error)
}
