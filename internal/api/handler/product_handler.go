package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surojitbera2/inventory/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.ProductInput{
		Name:          req.Name,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		VendorID:      req.VendorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// List handles GET /products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Update handles PUT /products/:id.
//
// @Summary      Replace a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ProductInput{
		Name:          req.Name,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		VendorID:      req.VendorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id (elevated role only).
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted successfully"})
}
