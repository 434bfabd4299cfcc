package ports

import (
	"context"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

// VendorRepository defines persistence for vendors.
type VendorRepository interface {
	Insert(ctx context.Context, v *domain.Vendor) error
	FindByID(ctx context.Context, id string) (*domain.Vendor, error)
	List(ctx context.Context) ([]*domain.Vendor, error)
	// Replace overwrites the vendor with the given id. Returns
	// domain.ErrVendorNotFound when no document matched.
	Replace(ctx context.Context, id string, v *domain.Vendor) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CustomerRepository defines persistence for customers.
type CustomerRepository interface {
	Insert(ctx context.Context, c *domain.Customer) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Replace(ctx context.Context, id string, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ContactInput carries the writable fields of a vendor or customer.
type ContactInput struct {
	Name    string
	Address string
	Phone   string
}

// VendorService defines use-case operations for vendors.
type VendorService interface {
	Create(ctx context.Context, in ContactInput) (*domain.Vendor, error)
	List(ctx context.Context) ([]*domain.Vendor, error)
	Update(ctx context.Context, id string, in ContactInput) (*domain.Vendor, error)
	Delete(ctx context.Context, id string) error
}

// CustomerService defines use-case operations for customers.
type CustomerService interface {
	Create(ctx context.Context, in ContactInput) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, id string, in ContactInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
