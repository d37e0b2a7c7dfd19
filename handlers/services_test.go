package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardoctor/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListServices(ctx context.Context, order string) ([]models.Service, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockCatalogService) GetService(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func newCatalogContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestCatalogHandler_List(t *testing.T) {
	svc := &MockCatalogService{}
	handler := NewCatalogHandler(svc)
	c, w := newCatalogContext("/services?sort=asc")

	svc.On("ListServices", mock.Anything, "asc").Return([]models.Service{
		{Title: "Wash", Price: 20},
		{Title: "Engine", Price: 300},
	}, nil)

	handler.ListServicesHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, float64(20), got[0]["price"])
	svc.AssertExpectations(t)
}

func TestCatalogHandler_ListError(t *testing.T) {
	svc := &MockCatalogService{}
	handler := NewCatalogHandler(svc)
	c, w := newCatalogContext("/services")

	svc.On("ListServices", mock.Anything, "").Return(nil, errors.New("boom"))

	handler.ListServicesHandler(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCatalogHandler_Get(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		svc := &MockCatalogService{}
		handler := NewCatalogHandler(svc)
		c, w := newCatalogContext("/services/" + id.Hex())
		c.Params = gin.Params{{Key: "id", Value: id.Hex()}}

		svc.On("GetService", mock.Anything, id).Return(&models.Service{ID: id, ServiceID: "01", Title: "Wash", Price: 20}, nil)

		handler.GetServiceHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var got models.Service
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, id, got.ID)
		assert.Equal(t, models.Price(20), got.Price)
	})

	t.Run("missing is null", func(t *testing.T) {
		svc := &MockCatalogService{}
		handler := NewCatalogHandler(svc)
		c, w := newCatalogContext("/services/" + id.Hex())
		c.Params = gin.Params{{Key: "id", Value: id.Hex()}}

		svc.On("GetService", mock.Anything, id).Return(nil, nil)

		handler.GetServiceHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := &MockCatalogService{}
		handler := NewCatalogHandler(svc)
		c, w := newCatalogContext("/services/xyz")
		c.Params = gin.Params{{Key: "id", Value: "xyz"}}

		handler.GetServiceHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetService", mock.Anything, mock.Anything)
	})
}
