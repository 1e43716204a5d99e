package repository

import (
	"context"
	"fmt"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/repository/dao"
)

var ErrToyNotFound = dao.ErrToyNotFound

type ToyDAO interface {
	Insert(ctx context.Context, toy dao.Toy) (dao.Toy, error)
	FindByID(ctx context.Context, id string) (dao.Toy, error)
	FindAll(ctx context.Context) ([]dao.Toy, error)
	Exists(ctx context.Context, ids []string) (string, error)
	Update(ctx context.Context, toy dao.Toy) (dao.Toy, error)
	Delete(ctx context.Context, id string) (dao.Toy, error)
}

type ToyRepository struct {
	dao ToyDAO
}

func NewToyRepository(dao ToyDAO) *ToyRepository {
	return &ToyRepository{
		dao: dao,
	}
}

func (r *ToyRepository) Create(ctx context.Context, toy domain.Toy) (domain.Toy, error) {
	created, err := r.dao.Insert(ctx, toyDomainToDAO(toy))
	if err != nil {
		return domain.Toy{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return toyDAOToDomain(created), nil
}

func (r *ToyRepository) FindByID(ctx context.Context, id string) (domain.Toy, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Toy{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return toyDAOToDomain(found), nil
}

func (r *ToyRepository) FindAll(ctx context.Context) ([]domain.Toy, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	toys := make([]domain.Toy, 0, len(found))
	for _, t := range found {
		toys = append(toys, toyDAOToDomain(t))
	}

	return toys, nil
}

// Exists reports the first id in ids that is not in the catalog.
func (r *ToyRepository) Exists(ctx context.Context, ids []string) (string, error) {
	missing, err := r.dao.Exists(ctx, ids)
	if err != nil {
		return missing, err
	}

	return "", nil
}

func (r *ToyRepository) Update(ctx context.Context, toy domain.Toy) (domain.Toy, error) {
	updated, err := r.dao.Update(ctx, toyDomainToDAO(toy))
	if err != nil {
		return domain.Toy{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return toyDAOToDomain(updated), nil
}

func (r *ToyRepository) Delete(ctx context.Context, id string) (domain.Toy, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Toy{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return toyDAOToDomain(deleted), nil
}

func toyDomainToDAO(t domain.Toy) dao.Toy {
	return dao.Toy{
		ID:            t.ID,
		Brand:         t.Brand,
		SubBrand:      t.SubBrand,
		Name:          t.Name,
		Price:         t.Price,
		Category:      t.Category,
		CodeName:      t.CodeName,
		CataloguePgNo: t.CataloguePgNo,
		Level:         string(t.Level),
		Learn:         t.Learn,
		Link:          t.Link,
	}
}

func toyDAOToDomain(t dao.Toy) domain.Toy {
	return domain.Toy{
		ID:            t.ID,
		Brand:         t.Brand,
		SubBrand:      t.SubBrand,
		Name:          t.Name,
		Price:         t.Price,
		Category:      t.Category,
		CodeName:      t.CodeName,
		CataloguePgNo: t.CataloguePgNo,
		Level:         domain.ToyLevel(t.Level),
		Learn:         t.Learn,
		Link:          t.Link,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
