package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/surojitbera2/inventory/internal/core/domain"
	"github.com/surojitbera2/inventory/internal/core/ports"
)

// CustomerService implements customer CRUD.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, in ports.ContactInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, customer); err != nil {
		return nil, err
	}
	s.logger.Info().Str("customer_id", customer.ID).Str("name", customer.Name).Msg("customer created")
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Update(ctx context.Context, id string, in ports.ContactInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:        id,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Replace(ctx, id, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("customer_id", id).Msg("customer deleted")
	return nil
}
