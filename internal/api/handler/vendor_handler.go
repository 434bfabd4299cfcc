package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surojitbera2/inventory/internal/core/ports"
)

// VendorHandler handles HTTP requests for vendor operations.
type VendorHandler struct {
	service ports.VendorService
}

func NewVendorHandler(service ports.VendorService) *VendorHandler {
	return &VendorHandler{service: service}
}

// Create handles POST /vendors.
//
// @Summary      Create a vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contactRequest  true  "Vendor details"
// @Success      201   {object}  domain.Vendor
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /vendors [post]
func (h *VendorHandler) Create(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	vendor, err := h.service.Create(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vendor)
}

// List handles GET /vendors.
//
// @Summary      List vendors
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Vendor
// @Failure      401  {object}  errorResponse
// @Router       /vendors [get]
func (h *VendorHandler) List(c echo.Context) error {
	vendors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vendors)
}

// Update handles PUT /vendors/:id.
//
// @Summary      Replace a vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Vendor id"
// @Param        body  body      contactRequest  true  "Vendor details"
// @Success      200   {object}  domain.Vendor
// @Failure      404   {object}  errorResponse
// @Router       /vendors/{id} [put]
func (h *VendorHandler) Update(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	vendor, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ContactInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vendor)
}

// Delete handles DELETE /vendors/:id (elevated role only).
//
// @Summary      Delete a vendor
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Vendor id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /vendors/{id} [delete]
func (h *VendorHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "vendor deleted successfully"})
}
