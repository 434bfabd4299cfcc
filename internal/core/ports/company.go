package ports

import (
	"context"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

// CompanyRepository persists the single company-profile document.
type CompanyRepository interface {
	// Find returns the profile, or domain.ErrCompanyNotFound when none has
	// been written yet.
	Find(ctx context.Context) (*domain.CompanyProfile, error)
	Insert(ctx context.Context, p *domain.CompanyProfile) error
	Replace(ctx context.Context, id string, p *domain.CompanyProfile) error
}

// CompanyInput carries the writable fields of the company profile.
type CompanyInput struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	TaxNumber string
}

// CompanyService reads and rewrites the company profile.
type CompanyService interface {
	// Get returns the profile, creating a default one on first read.
	Get(ctx context.Context) (*domain.CompanyProfile, error)
	Update(ctx context.Context, in CompanyInput) (*domain.CompanyProfile, error)
}
