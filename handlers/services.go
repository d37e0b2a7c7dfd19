package handlers

import (
	"net/http"

	"cardoctor/services/catalog"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ListServicesHandler handles GET /services?sort=asc|desc.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Catalog.ListServices(c.Request.Context(), c.Query("sort"))
	if err != nil {
		getLogger(c).Error("ListServicesHandler: failed to fetch services", zap.Error(err))
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /services/:id. An unknown id yields null.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	id, err := objectIDParam(c, "id")
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	svc, err := h.Catalog.GetService(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Error("GetServiceHandler: failed to fetch service", zap.String("serviceID", id.Hex()), zap.Error(err))
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
