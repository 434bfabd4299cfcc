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

// ProductService implements product CRUD. Create and Update verify the
// vendor reference before touching the products collection.
type ProductService struct {
	repo    ports.ProductRepository
	vendors ports.VendorRepository
	logger  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, vendors ports.VendorRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, vendors: vendors, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if err := s.checkVendor(ctx, in.VendorID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:            uuid.NewString(),
		Name:          in.Name,
		VendorID:      in.VendorID,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, err
	}
	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Int("quantity", product.Quantity).Msg("product created")
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// Update replaces the whole product document, quantity included.
func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	if err := s.checkVendor(ctx, in.VendorID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:            id,
		Name:          in.Name,
		VendorID:      in.VendorID,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Replace(ctx, id, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) checkVendor(ctx context.Context, vendorID string) error {
	if _, err := s.vendors.FindByID(ctx, vendorID); err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			return fmt.Errorf("vendor %s: %w", vendorID, domain.ErrInvalidReference)
		}
		return err
	}
	return nil
}
