package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surojitbera2/inventory/internal/core/ports"
)

// ReportHandler serves read-only stock and dashboard projections.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Stock handles GET /stock.
//
// @Summary      Stock valuation report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.StockReport
// @Router       /stock [get]
func (h *ReportHandler) Stock(c echo.Context) error {
	report, err := h.service.Stock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Dashboard handles GET /dashboard/stats.
//
// @Summary      Dashboard statistics
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Router       /dashboard/stats [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
