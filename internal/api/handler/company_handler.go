package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surojitbera2/inventory/internal/core/ports"
)

// CompanyHandler reads and rewrites the single company profile.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Get handles GET /company. A default profile is created on first read.
//
// @Summary      Company profile
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CompanyProfile
// @Router       /company [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update handles PUT /company (elevated role only).
//
// @Summary      Replace the company profile
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyRequest  true  "Company details"
// @Success      200   {object}  domain.CompanyProfile
// @Failure      403   {object}  errorResponse
// @Router       /company [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.service.Update(c.Request().Context(), ports.CompanyInput{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		TaxNumber: req.TaxNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
