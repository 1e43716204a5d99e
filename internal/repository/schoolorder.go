package repository

import (
	"context"
	"fmt"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/repository/dao"
)

var ErrSchoolOrderNotFound = dao.ErrSchoolOrderNotFound

type SchoolOrderDAO interface {
	Insert(ctx context.Context, order dao.SchoolOrder) (dao.SchoolOrder, error)
	FindByID(ctx context.Context, id string) (dao.SchoolOrder, error)
	FindBySchoolID(ctx context.Context, schoolID string) ([]dao.SchoolOrder, error)
	Update(ctx context.Context, up dao.SchoolOrderUpdate) (dao.SchoolOrder, error)
	Delete(ctx context.Context, id string) error
}

type SchoolOrderRepository struct {
	dao SchoolOrderDAO
}

func NewSchoolOrderRepository(dao SchoolOrderDAO) *SchoolOrderRepository {
	return &SchoolOrderRepository{
		dao: dao,
	}
}

func (r *SchoolOrderRepository) Create(ctx context.Context, order domain.SchoolOrder) (domain.SchoolOrder, error) {
	created, err := r.dao.Insert(ctx, schoolOrderDomainToDAO(order))
	if err != nil {
		return domain.SchoolOrder{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return schoolOrderDAOToDomain(created), nil
}

func (r *SchoolOrderRepository) FindByID(ctx context.Context, id string) (domain.SchoolOrder, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.SchoolOrder{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return schoolOrderDAOToDomain(found), nil
}

func (r *SchoolOrderRepository) FindBySchoolID(ctx context.Context, schoolID string) ([]domain.SchoolOrder, error) {
	found, err := r.dao.FindBySchoolID(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySchoolID -> %w", err)
	}

	orders := make([]domain.SchoolOrder, 0, len(found))
	for _, o := range found {
		orders = append(orders, schoolOrderDAOToDomain(o))
	}

	return orders, nil
}

func (r *SchoolOrderRepository) Update(ctx context.Context, order domain.SchoolOrder, replaceLines bool) (domain.SchoolOrder, error) {
	updated, err := r.dao.Update(ctx, dao.SchoolOrderUpdate{
		Order:        schoolOrderDomainToDAO(order),
		ReplaceLines: replaceLines,
	})
	if err != nil {
		return domain.SchoolOrder{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return schoolOrderDAOToDomain(updated), nil
}

func (r *SchoolOrderRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func schoolOrderDomainToDAO(o domain.SchoolOrder) dao.SchoolOrder {
	order := dao.SchoolOrder{
		ID:               o.ID,
		SchoolID:         o.SchoolID,
		DateOfDispatch:   o.DateOfDispatch,
		ModeOfDispatch:   o.ModeOfDispatch,
		TrackingDetails:  o.TrackingDetails,
		DateOfDelivery:   o.DateOfDelivery,
		PhotosVideosLink: o.PhotosVideosLink,
	}
	for _, line := range o.Lines {
		order.Lines = append(order.Lines, dao.SchoolOrderLine{
			ToyID:    line.ToyID,
			Quantity: line.Quantity,
		})
	}

	return order
}

func schoolOrderDAOToDomain(o dao.SchoolOrder) domain.SchoolOrder {
	order := domain.SchoolOrder{
		ID:               o.ID,
		SchoolID:         o.SchoolID,
		DateOfDispatch:   o.DateOfDispatch,
		ModeOfDispatch:   o.ModeOfDispatch,
		TrackingDetails:  o.TrackingDetails,
		DateOfDelivery:   o.DateOfDelivery,
		PhotosVideosLink: o.PhotosVideosLink,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	for _, line := range o.Lines {
		domainLine := domain.SchoolOrderLine{
			ToyID:    line.ToyID,
			Quantity: line.Quantity,
		}
		if line.Toy.ID != "" {
			toy := toyDAOToDomain(line.Toy)
			domainLine.Toy = &toy
		}
		order.Lines = append(order.Lines, domainLine)
	}

	return order
}
