package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/surojitbera2/inventory/internal/core/domain"
	"github.com/surojitbera2/inventory/internal/core/ports"
)

// Defaults written on first read, before anyone has saved a profile.
const (
	defaultCompanyName    = "ABC Pvt Ltd"
	defaultCompanyAddress = "Singur, Hooghly"
)

// CompanyService reads and rewrites the single company profile.
type CompanyService struct {
	repo   ports.CompanyRepository
	logger zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, logger: logger}
}

// Get returns the stored profile. When none exists yet a default profile is
// created, persisted and returned.
func (s *CompanyService) Get(ctx context.Context) (*domain.CompanyProfile, error) {
	profile, err := s.repo.Find(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, err
	}

	profile = &domain.CompanyProfile{
		ID:        uuid.NewString(),
		Name:      defaultCompanyName,
		Address:   defaultCompanyAddress,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info().Str("company_id", profile.ID).Msg("default company profile created")
	return profile, nil
}

// Update replaces the profile, creating it when none exists.
func (s *CompanyService) Update(ctx context.Context, in ports.CompanyInput) (*domain.CompanyProfile, error) {
	profile := &domain.CompanyProfile{
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		TaxNumber: in.TaxNumber,
		UpdatedAt: time.Now().UTC(),
	}

	existing, err := s.repo.Find(ctx)
	switch {
	case err == nil:
		profile.ID = existing.ID
		if err := s.repo.Replace(ctx, existing.ID, profile); err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrCompanyNotFound):
		profile.ID = uuid.NewString()
		if err := s.repo.Insert(ctx, profile); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.logger.Info().Str("company_id", profile.ID).Msg("company profile updated")
	return profile, nil
}
