package repository

import (
	"context"
	"fmt"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/repository/dao"
)

var ErrOrderNotFound = dao.ErrOrderNotFound

type VendorOrderDAO interface {
	InsertBatch(ctx context.Context, orders []dao.VendorOrder) ([]dao.VendorOrder, error)
	FindByID(ctx context.Context, id string) (dao.VendorOrder, error)
	FindAll(ctx context.Context) ([]dao.VendorOrder, error)
	FindBySchoolID(ctx context.Context, schoolID string) ([]dao.VendorOrder, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, up dao.VendorOrderUpdate) (dao.VendorOrder, error)
	SetStockAdjusted(ctx context.Context, ids []string, adjusted bool) error
	Delete(ctx context.Context, id string) error
}

type VendorOrderRepository struct {
	dao VendorOrderDAO
}

func NewVendorOrderRepository(dao VendorOrderDAO) *VendorOrderRepository {
	return &VendorOrderRepository{
		dao: dao,
	}
}

// CreateBatch persists all orders as one unit: either every order in
// the batch is created or none is.
func (r *VendorOrderRepository) CreateBatch(ctx context.Context, orders []domain.VendorOrder) ([]domain.VendorOrder, error) {
	daoOrders := make([]dao.VendorOrder, 0, len(orders))
	for _, o := range orders {
		daoOrders = append(daoOrders, vendorOrderDomainToDAO(o))
	}

	created, err := r.dao.InsertBatch(ctx, daoOrders)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	result := make([]domain.VendorOrder, 0, len(created))
	for _, o := range created {
		result = append(result, vendorOrderDAOToDomain(o))
	}

	return result, nil
}

func (r *VendorOrderRepository) FindByID(ctx context.Context, id string) (domain.VendorOrder, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.VendorOrder{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return vendorOrderDAOToDomain(found), nil
}

func (r *VendorOrderRepository) FindAll(ctx context.Context) ([]domain.VendorOrder, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	orders := make([]domain.VendorOrder, 0, len(found))
	for _, o := range found {
		orders = append(orders, vendorOrderDAOToDomain(o))
	}

	return orders, nil
}

func (r *VendorOrderRepository) FindBySchoolID(ctx context.Context, schoolID string) ([]domain.VendorOrder, error) {
	found, err := r.dao.FindBySchoolID(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySchoolID -> %w", err)
	}

	orders := make([]domain.VendorOrder, 0, len(found))
	for _, o := range found {
		orders = append(orders, vendorOrderDAOToDomain(o))
	}

	return orders, nil
}

func (r *VendorOrderRepository) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *VendorOrderRepository) Update(ctx context.Context, order domain.VendorOrder, replaceLines, replaceTrail bool) (domain.VendorOrder, error) {
	updated, err := r.dao.Update(ctx, dao.VendorOrderUpdate{
		Order:        vendorOrderDomainToDAO(order),
		ReplaceLines: replaceLines,
		ReplaceTrail: replaceTrail,
	})
	if err != nil {
		return domain.VendorOrder{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return vendorOrderDAOToDomain(updated), nil
}

func (r *VendorOrderRepository) SetStockAdjusted(ctx context.Context, ids []string, adjusted bool) error {
	if err := r.dao.SetStockAdjusted(ctx, ids, adjusted); err != nil {
		return fmt.Errorf("r.dao.SetStockAdjusted -> %w", err)
	}

	return nil
}

func (r *VendorOrderRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func vendorOrderDomainToDAO(o domain.VendorOrder) dao.VendorOrder {
	order := dao.VendorOrder{
		ID:               o.ID,
		Brand:            o.Brand,
		SubBrand:         o.SubBrand,
		FromParty:        string(o.From),
		ToParty:          string(o.To),
		SchoolID:         o.SchoolID,
		Description:      o.Description,
		PhotosVideosLink: o.PhotosVideosLink,
		StockAdjusted:    o.StockAdjusted,
	}
	for _, line := range o.Lines {
		order.Lines = append(order.Lines, dao.VendorOrderLine{
			ToyID:    line.ToyID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	for _, event := range o.Status {
		order.Trail = append(order.Trail, dao.VendorOrderStatus{
			Timestamp:     event.Timestamp,
			PersonName:    event.PersonName,
			ContactNumber: event.ContactNumber,
			Status:        string(event.Status),
		})
	}

	return order
}

func vendorOrderDAOToDomain(o dao.VendorOrder) domain.VendorOrder {
	order := domain.VendorOrder{
		ID:               o.ID,
		Brand:            o.Brand,
		SubBrand:         o.SubBrand,
		From:             domain.PartyType(o.FromParty),
		To:               domain.PartyType(o.ToParty),
		SchoolID:         o.SchoolID,
		Description:      o.Description,
		PhotosVideosLink: o.PhotosVideosLink,
		StockAdjusted:    o.StockAdjusted,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	for _, line := range o.Lines {
		domainLine := domain.OrderLine{
			ToyID:    line.ToyID,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
		if line.Toy.ID != "" {
			toy := toyDAOToDomain(line.Toy)
			domainLine.Toy = &toy
		}
		order.Lines = append(order.Lines, domainLine)
	}
	for _, event := range o.Trail {
		order.Status = append(order.Status, domain.StatusEvent{
			Timestamp:     event.Timestamp,
			PersonName:    event.PersonName,
			ContactNumber: event.ContactNumber,
			Status:        domain.OrderStatus(event.Status),
		})
	}

	return order
}
