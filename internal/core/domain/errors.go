package domain

import "errors"

var (
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("admin access required")

	ErrVendorNotFound   = errors.New("vendor not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrCompanyNotFound  = errors.New("company profile not found")

	// ErrInvalidReference marks a create/update that points at a vendor,
	// customer or product that does not exist. Callers wrap it with the
	// missing entity's identity.
	ErrInvalidReference = errors.New("referenced entity not found")

	// ErrInsufficientStock marks a sale item requesting more units than the
	// product currently holds. Callers wrap it with the product name.
	ErrInsufficientStock = errors.New("insufficient stock")
)
