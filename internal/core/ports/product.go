package ports

import (
	"context"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

// ProductRepository defines persistence for products.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Replace(ctx context.Context, id string, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// DecrementQuantity subtracts n units only if the stored quantity is at
	// least n ("decrement if sufficient", applied atomically by the store).
	// Returns domain.ErrInsufficientStock when the guard fails and
	// domain.ErrProductNotFound when the product does not exist.
	DecrementQuantity(ctx context.Context, id string, n int) error
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name          string
	VendorID      string
	Quantity      int
	PurchasePrice float64
	SellingPrice  float64
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
