// Package handler holds the echo handlers of the catalog API.
package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/api/response"
	"catalog/internal/delivery/api/validator"
	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	RefreshUC usecase.RefreshUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the ranked products, their price series and refresh control.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	refreshUC usecase.RefreshUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		refreshUC: params.RefreshUC,
		logger:    params.Logger,
	}
}

// ProductsResponse is the body of GET /api/data.
type ProductsResponse struct {
	Products []ProductView `json:"products"`
}

// PriceRequest binds the sku path parameter.
type PriceRequest struct {
	SKU string `param:"sku" validate:"required,max=32,alphanum"`
}

// ReloadResponse is the body of POST /reload.
type ReloadResponse struct {
	Message string `json:"message"`
	RunID   string `json:"runId"`
}

// ListProducts returns the published list, best score first.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return response.Success(c, http.StatusOK, ProductsResponse{
		Products: NewProductViews(h.catalogUC.Products()),
	})
}

// PriceHistory returns the compacted price series of one sku.
func (h *CatalogHandler) PriceHistory(c echo.Context) error {
	var req PriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sku")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid sku", validator.FieldErrors(err))
	}

	history, err := h.catalogUC.PriceHistory(c.Request().Context(), req.SKU)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewPricePointViews(history))
}

// Reload starts a background refresh. A refresh already running is reported with 409.
func (h *CatalogHandler) Reload(c echo.Context) error {
	runID, err := h.refreshUC.Trigger()
	if errors.Is(err, domainerrors.ErrRefreshInProgress) {
		return response.Error(c, http.StatusConflict, domainerrors.ErrRefreshInProgress.ErrorCode(),
			domainerrors.ErrRefreshInProgress.Message(), map[string]string{"runId": runID})
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.LoggerOrDefault(c.Request().Context(), h.logger).
		Info("Refresh triggered", slog.String("run_id", runID))

	return response.Success(c, http.StatusAccepted, ReloadResponse{
		Message: "Reload task started",
		RunID:   runID,
	})
}

// RefreshStatus reports the latest refresh run.
func (h *CatalogHandler) RefreshStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.refreshUC.Status())
}
