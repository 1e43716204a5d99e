package repository

import (
	"context"
	"fmt"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/repository/dao"
)

var ErrOtherProductNotFound = dao.ErrOtherProductNotFound

type OtherProductDAO interface {
	Insert(ctx context.Context, product dao.OtherProduct) (dao.OtherProduct, error)
	FindByOrderID(ctx context.Context, orderID string) ([]dao.OtherProduct, error)
	Delete(ctx context.Context, id string) error
}

type OtherProductRepository struct {
	dao OtherProductDAO
}

func NewOtherProductRepository(dao OtherProductDAO) *OtherProductRepository {
	return &OtherProductRepository{
		dao: dao,
	}
}

func (r *OtherProductRepository) Create(ctx context.Context, product domain.OtherProduct) (domain.OtherProduct, error) {
	created, err := r.dao.Insert(ctx, dao.OtherProduct{
		ID:       product.ID,
		OrderID:  product.OrderID,
		Item:     product.Item,
		Quantity: product.Quantity,
	})
	if err != nil {
		return domain.OtherProduct{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return otherProductDAOToDomain(created), nil
}

func (r *OtherProductRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.OtherProduct, error) {
	found, err := r.dao.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOrderID -> %w", err)
	}

	products := make([]domain.OtherProduct, 0, len(found))
	for _, p := range found {
		products = append(products, otherProductDAOToDomain(p))
	}

	return products, nil
}

func (r *OtherProductRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func otherProductDAOToDomain(p dao.OtherProduct) domain.OtherProduct {
	return domain.OtherProduct{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Item:      p.Item,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
