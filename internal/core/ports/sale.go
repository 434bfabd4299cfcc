package ports

import (
	"context"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

// SaleRepository defines persistence for sale records. Sales are immutable:
// there is no replace or delete operation.
type SaleRepository interface {
	Insert(ctx context.Context, s *domain.Sale) error
	FindByID(ctx context.Context, id string) (*domain.Sale, error)
	// List returns all sales, newest first.
	List(ctx context.Context) ([]*domain.Sale, error)
}

// SaleItemInput is one requested line of a sale. SellingPrice and
// TotalAmount are trusted as supplied by the caller.
type SaleItemInput struct {
	ProductID    string
	Quantity     int
	SellingPrice float64
	TotalAmount  float64
}

// PostSaleInput carries a proposed sale transaction.
type PostSaleInput struct {
	CustomerID string
	Items      []SaleItemInput
	// IdempotencyKey, when non-empty, makes a replayed request return the
	// originally created sale instead of deducting stock again.
	IdempotencyKey string
}

// SaleService posts sale transactions and lists the resulting records.
type SaleService interface {
	PostSale(ctx context.Context, in PostSaleInput) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
}
