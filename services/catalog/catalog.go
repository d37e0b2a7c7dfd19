package catalog

import (
	"context"
	"sort"

	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// cardProjection is the subset of fields the service detail view shows.
var cardProjection = bson.M{"img": 1, "title": 1, "price": 1, "service_id": 1}

func (s *DefaultCatalogService) ListServices(ctx context.Context, order string) ([]models.Service, error) {
	services, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]models.Service, len(services))
	copy(sorted, services)
	sortByPrice(sorted, order == SortAscending)

	for i := range sorted {
		sorted[i].Img = s.resolveImage(sorted[i].Img)
	}
	return sorted, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	svc, err := s.Repo.GetByIDWithProjection(ctx, id, cardProjection)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, nil
	}
	svc.Img = s.resolveImage(svc.Img)
	return svc, nil
}

// loadAll reads the catalog through the cache. Cache failures are logged and
// fall back to the store.
func (s *DefaultCatalogService) loadAll(ctx context.Context) ([]models.Service, error) {
	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx)
		if err != nil {
			s.logger().Warn("ListServices: cache read failed", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	services, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, services); err != nil {
			s.logger().Warn("ListServices: cache write failed", zap.Error(err))
		}
	}
	return services, nil
}

func (s *DefaultCatalogService) resolveImage(ref string) string {
	if s.Images == nil {
		return ref
	}
	resolved, err := s.Images.Resolve(ref)
	if err != nil {
		s.logger().Warn("failed to resolve service image", zap.String("img", ref), zap.Error(err))
		return ref
	}
	return resolved
}

func (s *DefaultCatalogService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// sortByPrice orders services in place. Equal prices keep their store order.
func sortByPrice(services []models.Service, ascending bool) {
	sort.SliceStable(services, func(i, j int) bool {
		if ascending {
			return services[i].Price < services[j].Price
		}
		return services[i].Price > services[j].Price
	})
}
