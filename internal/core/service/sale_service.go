package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/surojitbera2/inventory/internal/core/domain"
	"github.com/surojitbera2/inventory/internal/core/ports"
)

// ReplayStore abstracts the idempotency store (Redis). It maps an
// Idempotency-Key to the id of the sale it originally created.
type ReplayStore interface {
	// Lookup returns the sale id recorded for key, or "" when unseen.
	Lookup(ctx context.Context, key string) (string, error)
	Remember(ctx context.Context, key, saleID string) error
}

// SaleService posts sale transactions.
//
// Stock is deducted per item, in the order supplied, through a conditional
// atomic decrement ("subtract n only if quantity >= n"), so two concurrent
// sales can never both take the last units of a product. Items deducted
// before a later item fails are NOT rolled back: the call errors, no sale
// record is written, and the earlier deductions stand. That partial
// application mirrors the system this one replaces and is asserted by the
// tests rather than hidden.
type SaleService struct {
	sales     ports.SaleRepository
	products  ports.ProductRepository
	customers ports.CustomerRepository
	replay    ReplayStore
	logger    zerolog.Logger
}

func NewSaleService(
	sales ports.SaleRepository,
	products ports.ProductRepository,
	customers ports.CustomerRepository,
	replay ReplayStore,
	logger zerolog.Logger,
) *SaleService {
	return &SaleService{
		sales:     sales,
		products:  products,
		customers: customers,
		replay:    replay,
		logger:    logger,
	}
}

// PostSale validates and applies a proposed sale, returning the persisted
// immutable record. Line totals are accumulated as supplied by the caller;
// only stock quantity is validated server-side.
func (s *SaleService) PostSale(ctx context.Context, in ports.PostSaleInput) (*domain.Sale, error) {
	// 1. Idempotent replay: a key seen before returns the original sale
	// without touching stock. Store errors are non-fatal.
	if in.IdempotencyKey != "" {
		saleID, err := s.replay.Lookup(ctx, in.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("replay lookup failed, posting anyway")
		} else if saleID != "" {
			existing, err := s.sales.FindByID(ctx, saleID)
			if err == nil {
				s.logger.Info().Str("idempotency_key", in.IdempotencyKey).Str("sale_id", saleID).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	// 2. The customer reference must resolve before any stock moves.
	customer, err := s.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, fmt.Errorf("customer %s: %w", in.CustomerID, domain.ErrInvalidReference)
		}
		return nil, err
	}

	// 3. Per item, in the order supplied: resolve, deduct, accumulate.
	items := make([]domain.SaleItem, 0, len(in.Items))
	var total float64
	for _, item := range in.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return nil, fmt.Errorf("product %s: %w", item.ProductID, domain.ErrInvalidReference)
			}
			return nil, err
		}

		if err := s.products.DecrementQuantity(ctx, product.ID, item.Quantity); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return nil, fmt.Errorf("product %s: %w", product.Name, domain.ErrInsufficientStock)
			}
			return nil, fmt.Errorf("deduct stock for product %s: %w", product.ID, err)
		}

		items = append(items, domain.SaleItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			Quantity:     item.Quantity,
			SellingPrice: item.SellingPrice,
			TotalAmount:  item.TotalAmount,
		})
		total += item.TotalAmount
	}

	// 4. Persist the immutable record with the denormalized customer name.
	sale := &domain.Sale{
		ID:           uuid.NewString(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Items:        items,
		TotalAmount:  total,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.sales.Insert(ctx, sale); err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	if in.IdempotencyKey != "" {
		if err := s.replay.Remember(ctx, in.IdempotencyKey, sale.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("failed to record replay key")
		}
	}

	s.logger.Info().
		Str("sale_id", sale.ID).
		Str("customer_id", sale.CustomerID).
		Int("items", len(sale.Items)).
		Float64("total_amount", sale.TotalAmount).
		Msg("sale posted")

	return sale, nil
}

func (s *SaleService) List(ctx context.Context) ([]*domain.Sale, error) {
	return s.sales.List(ctx)
}
