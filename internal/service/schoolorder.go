package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
	"github.com/toybridge/toybridge-api/internal/repository"
)

var ErrSchoolOrderNotFound = repository.ErrSchoolOrderNotFound

type SchoolOrderRepository interface {
	Create(ctx context.Context, order domain.SchoolOrder) (domain.SchoolOrder, error)
	FindByID(ctx context.Context, id string) (domain.SchoolOrder, error)
	FindBySchoolID(ctx context.Context, schoolID string) ([]domain.SchoolOrder, error)
	Update(ctx context.Context, order domain.SchoolOrder, replaceLines bool) (domain.SchoolOrder, error)
	Delete(ctx context.Context, id string) error
}

type SchoolOrderService struct {
	repo    SchoolOrderRepository
	toys    ToyCatalog
	schools SchoolFinder
}

func NewSchoolOrderService(repo SchoolOrderRepository, toys ToyCatalog, schools SchoolFinder) *SchoolOrderService {
	return &SchoolOrderService{
		repo:    repo,
		toys:    toys,
		schools: schools,
	}
}

func (s *SchoolOrderService) PlaceOrder(ctx context.Context, order domain.SchoolOrder) (domain.SchoolOrder, error) {
	if err := identifier.Validate(order.SchoolID, "school"); err != nil {
		return domain.SchoolOrder{}, err
	}
	if len(order.Lines) == 0 {
		return domain.SchoolOrder{}, ErrEmptyCart
	}

	ids := make([]string, 0, len(order.Lines))
	for _, line := range order.Lines {
		if err := identifier.Validate(line.ToyID, "toy"); err != nil {
			return domain.SchoolOrder{}, err
		}
		if line.Quantity < 1 {
			return domain.SchoolOrder{}, ErrInvalidQuantity
		}
		ids = append(ids, line.ToyID)
	}

	missing, err := s.toys.Exists(ctx, ids)
	if err != nil {
		return domain.SchoolOrder{}, fmt.Errorf("s.toys.Exists -> %w", err)
	}
	if missing != "" {
		return domain.SchoolOrder{}, fmt.Errorf("toy %v: %w", missing, ErrToyNotFound)
	}

	if _, err = s.schools.FindByID(ctx, order.SchoolID); err != nil {
		if errors.Is(err, ErrSchoolNotFound) {
			return domain.SchoolOrder{}, ErrSchoolNotFound
		}
		return domain.SchoolOrder{}, fmt.Errorf("s.schools.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return domain.SchoolOrder{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SchoolOrderService) GetOrder(ctx context.Context, id string) (domain.SchoolOrder, error) {
	if err := identifier.Validate(id, "order"); err != nil {
		return domain.SchoolOrder{}, err
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.SchoolOrder{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return order, nil
}

func (s *SchoolOrderService) GetOrdersBySchool(ctx context.Context, schoolID string) ([]domain.SchoolOrder, error) {
	if err := identifier.Validate(schoolID, "school"); err != nil {
		return nil, err
	}

	orders, err := s.repo.FindBySchoolID(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySchoolID -> %w", err)
	}

	return orders, nil
}

func (s *SchoolOrderService) UpdateOrder(ctx context.Context, order domain.SchoolOrder, replaceLines bool) (domain.SchoolOrder, error) {
	if err := identifier.Validate(order.ID, "order"); err != nil {
		return domain.SchoolOrder{}, err
	}

	updated, err := s.repo.Update(ctx, order, replaceLines)
	if err != nil {
		return domain.SchoolOrder{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *SchoolOrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := identifier.Validate(id, "order"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrSchoolOrderNotFound) {
			return err
		}
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
