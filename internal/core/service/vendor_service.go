package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/surojitbera2/inventory/internal/core/domain"
	"github.com/surojitbera2/inventory/internal/core/ports"
)

// VendorService implements vendor CRUD.
type VendorService struct {
	repo   ports.VendorRepository
	logger zerolog.Logger
}

func NewVendorService(repo ports.VendorRepository, logger zerolog.Logger) *VendorService {
	return &VendorService{repo: repo, logger: logger}
}

func (s *VendorService) Create(ctx context.Context, in ports.ContactInput) (*domain.Vendor, error) {
	vendor := &domain.Vendor{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, vendor); err != nil {
		return nil, err
	}
	s.logger.Info().Str("vendor_id", vendor.ID).Str("name", vendor.Name).Msg("vendor created")
	return vendor, nil
}

func (s *VendorService) List(ctx context.Context) ([]*domain.Vendor, error) {
	return s.repo.List(ctx)
}

// Update replaces the whole vendor document; the creation timestamp is
// refreshed the same way the original replace did.
func (s *VendorService) Update(ctx context.Context, id string, in ports.ContactInput) (*domain.Vendor, error) {
	vendor := &domain.Vendor{
		ID:        id,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Replace(ctx, id, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *VendorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("vendor_id", id).Msg("vendor deleted")
	return nil
}
