package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
	"github.com/toybridge/toybridge-api/internal/repository"
)

var ErrOtherProductNotFound = repository.ErrOtherProductNotFound

type OtherProductRepository interface {
	Create(ctx context.Context, product domain.OtherProduct) (domain.OtherProduct, error)
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OtherProduct, error)
	Delete(ctx context.Context, id string) error
}

type OtherProductService struct {
	repo   OtherProductRepository
	orders OrderMarker
}

func NewOtherProductService(repo OtherProductRepository, orders OrderMarker) *OtherProductService {
	return &OtherProductService{
		repo:   repo,
		orders: orders,
	}
}

// AddToOrder attaches a non-catalog line item to an existing vendor
// order.
func (s *OtherProductService) AddToOrder(ctx context.Context, orderID, item string, quantity int) (domain.OtherProduct, error) {
	if err := identifier.Validate(orderID, "order"); err != nil {
		return domain.OtherProduct{}, err
	}
	if quantity < 1 {
		return domain.OtherProduct{}, ErrInvalidQuantity
	}

	exists, err := s.orders.Exists(ctx, orderID)
	if err != nil {
		return domain.OtherProduct{}, fmt.Errorf("s.orders.Exists -> %w", err)
	}
	if !exists {
		return domain.OtherProduct{}, ErrOrderNotFound
	}

	product, err := s.repo.Create(ctx, domain.OtherProduct{
		OrderID:  orderID,
		Item:     item,
		Quantity: quantity,
	})
	if err != nil {
		return domain.OtherProduct{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return product, nil
}

func (s *OtherProductService) GetByOrder(ctx context.Context, orderID string) ([]domain.OtherProduct, error) {
	if err := identifier.Validate(orderID, "order"); err != nil {
		return nil, err
	}

	products, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOrderID -> %w", err)
	}

	return products, nil
}

func (s *OtherProductService) Delete(ctx context.Context, id string) error {
	if err := identifier.Validate(id, "product"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrOtherProductNotFound) {
			return err
		}
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
