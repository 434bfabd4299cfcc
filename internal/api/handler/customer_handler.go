package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surojitbera2/inventory/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Create handles POST /customers.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contactRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	customer, err := h.service.Create(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

// List handles GET /customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Customer
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Update handles PUT /customers/:id.
//
// @Summary      Replace a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Customer id"
// @Param        body  body      contactRequest  true  "Customer details"
// @Success      200   {object}  domain.Customer
// @Failure      404   {object}  errorResponse
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	customer, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ContactInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /customers/:id (elevated role only).
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Customer id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "customer deleted successfully"})
}
