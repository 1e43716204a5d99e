package response

import (
	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/timefmt"
)

type VendorOrder struct {
	domain.VendorOrder
	CurrentStatus domain.OrderStatus `json:"currentStatus"`
	CreatedAtIST  string             `json:"createdAtIST"`
	UpdatedAtIST  string             `json:"updatedAtIST"`
}

func NewVendorOrder(order domain.VendorOrder) VendorOrder {
	return VendorOrder{
		VendorOrder:   order,
		CurrentStatus: order.CurrentStatus(),
		CreatedAtIST:  timefmt.IST(order.CreatedAt),
		UpdatedAtIST:  timefmt.IST(order.UpdatedAt),
	}
}

func NewVendorOrders(orders []domain.VendorOrder) []VendorOrder {
	views := make([]VendorOrder, 0, len(orders))
	for _, order := range orders {
		views = append(views, NewVendorOrder(order))
	}

	return views
}

type SchoolOrder struct {
	domain.SchoolOrder
	CreatedAtIST string `json:"createdAtIST"`
	UpdatedAtIST string `json:"updatedAtIST"`
}

func NewSchoolOrder(order domain.SchoolOrder) SchoolOrder {
	return SchoolOrder{
		SchoolOrder:  order,
		CreatedAtIST: timefmt.IST(order.CreatedAt),
		UpdatedAtIST: timefmt.IST(order.UpdatedAt),
	}
}

func NewSchoolOrders(orders []domain.SchoolOrder) []SchoolOrder {
	views := make([]SchoolOrder, 0, len(orders))
	for _, order := range orders {
		views = append(views, NewSchoolOrder(order))
	}

	return views
}

type OtherProduct struct {
	domain.OtherProduct
	CreatedAtIST string `json:"createdAtIST"`
	UpdatedAtIST string `json:"updatedAtIST"`
}

func NewOtherProduct(product domain.OtherProduct) OtherProduct {
	return OtherProduct{
		OtherProduct: product,
		CreatedAtIST: timefmt.IST(product.CreatedAt),
		UpdatedAtIST: timefmt.IST(product.UpdatedAt),
	}
}

func NewOtherProducts(products []domain.OtherProduct) []OtherProduct {
	views := make([]OtherProduct, 0, len(products))
	for _, product := range products {
		views = append(views, NewOtherProduct(product))
	}

	return views
}

// OrderPlacement reports a successful placement, or a placement whose
// stock adjustment failed after the orders were created.
type OrderPlacement struct {
	Message  string   `json:"message"`
	OrderIDs []string `json:"orderIds"`
}
