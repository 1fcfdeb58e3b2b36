package handler

import (
	"net/http"

	"catalog/internal/delivery/api/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	catalogUC usecase.CatalogUsecase
	refreshUC usecase.RefreshUsecase
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(catalogUC usecase.CatalogUsecase, refreshUC usecase.RefreshUsecase) *HealthHandler {
	return &HealthHandler{
		catalogUC: catalogUC,
		refreshUC: refreshUC,
	}
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status   string                `json:"status"`
	Products int                   `json:"products"`
	Refresh  usecase.RefreshStatus `json:"refresh"`
}

// Ping is the liveness probe.
func (h *HealthHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, "pong")
}

// Health reports the size of the published list and the latest refresh.
func (h *HealthHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthStatus{
		Status:   "ok",
		Products: len(h.catalogUC.Products()),
		Refresh:  h.refreshUC.Status(),
	})
}
