package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/surojitbera2/inventory/internal/api/metrics"
	"github.com/surojitbera2/inventory/internal/core/domain"
	"github.com/surojitbera2/inventory/internal/core/ports"
)

// SaleHandler handles HTTP requests for sale posting and listing.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// Create handles POST /sales. Stock is deducted per line as the sale is
// posted; a replayed request carrying the same Idempotency-Key header
// returns the originally created sale.
//
// @Summary      Post a sale transaction
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Replay protection key"
// @Param        body             body      createSaleRequest  true   "Sale lines"
// @Success      201  {object}  domain.Sale
// @Failure      400  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in := ports.PostSaleInput{
		CustomerID:     req.CustomerID,
		Items:          make([]ports.SaleItemInput, 0, len(req.Items)),
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, ports.SaleItemInput{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			SellingPrice: item.SellingPrice,
			TotalAmount:  item.TotalAmount,
		})
	}

	start := time.Now()
	sale, err := h.service.PostSale(c.Request().Context(), in)
	if err != nil {
		metrics.SalePostingDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		metrics.SalesFailedTotal.WithLabelValues(failureReason(err)).Inc()
		return err
	}
	metrics.SalePostingDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	metrics.SalesPostedTotal.Inc()

	return c.JSON(http.StatusCreated, sale)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidReference):
		return "invalid_reference"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "error"
	}
}

// List handles GET /sales, newest first.
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Sale
// @Router       /sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}
