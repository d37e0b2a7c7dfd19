package catalog

import (
	"context"

	serviceRepo "cardoctor/database/repository/service"
	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const SortAscending = "asc"

// CatalogService serves the read-only service catalog.
type CatalogService interface {
	// ListServices returns every service ordered by price, ascending when
	// order is exactly "asc" and descending otherwise.
	ListServices(ctx context.Context, order string) ([]models.Service, error)
	// GetService returns the card view of one service, or nil when it does not exist.
	GetService(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
}

// DefaultCatalogService implements CatalogService. Cache and Images are optional.
type DefaultCatalogService struct {
	Repo   serviceRepo.ServiceRepository
	Cache  ServiceCache
	Images ImageResolver
	Logger *zap.Logger
}
