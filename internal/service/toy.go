package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
	"github.com/toybridge/toybridge-api/internal/repository"
)

var ErrToyNotFound = repository.ErrToyNotFound

type ToyRepository interface {
	Create(ctx context.Context, toy domain.Toy) (domain.Toy, error)
	FindByID(ctx context.Context, id string) (domain.Toy, error)
	FindAll(ctx context.Context) ([]domain.Toy, error)
	Update(ctx context.Context, toy domain.Toy) (domain.Toy, error)
	Delete(ctx context.Context, id string) (domain.Toy, error)
}

// StockCleaner removes a toy's ledger entry when the toy is deleted.
type StockCleaner interface {
	DeleteByToyID(ctx context.Context, toyID string) error
}

type ToyService struct {
	repo  ToyRepository
	stock StockCleaner
}

func NewToyService(repo ToyRepository, stock StockCleaner) *ToyService {
	return &ToyService{
		repo:  repo,
		stock: stock,
	}
}

func (s *ToyService) AddToy(ctx context.Context, toy domain.Toy) (domain.Toy, error) {
	created, err := s.repo.Create(ctx, toy)
	if err != nil {
		return domain.Toy{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ToyService) GetToy(ctx context.Context, id string) (domain.Toy, error) {
	if err := identifier.Validate(id, "toy"); err != nil {
		return domain.Toy{}, err
	}

	toy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Toy{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return toy, nil
}

func (s *ToyService) GetToys(ctx context.Context) ([]domain.Toy, error) {
	toys, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return toys, nil
}

func (s *ToyService) UpdateToy(ctx context.Context, toy domain.Toy) (domain.Toy, error) {
	if err := identifier.Validate(toy.ID, "toy"); err != nil {
		return domain.Toy{}, err
	}

	updated, err := s.repo.Update(ctx, toy)
	if err != nil {
		return domain.Toy{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteToy removes the catalog entry along with its stock entry, if
// one exists.
func (s *ToyService) DeleteToy(ctx context.Context, id string) (domain.Toy, error) {
	if err := identifier.Validate(id, "toy"); err != nil {
		return domain.Toy{}, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Toy{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	if err = s.stock.DeleteByToyID(ctx, id); err != nil && !errors.Is(err, repository.ErrStockEntryNotFound) {
		return domain.Toy{}, fmt.Errorf("s.stock.DeleteByToyID -> %w", err)
	}

	return deleted, nil
}
