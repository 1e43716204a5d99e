package domain

import "time"

type PartyType string

const (
	PartyVendor PartyType = "vendor"
	PartyNGO    PartyType = "ngo"
	PartySchool PartyType = "school"
)

func (p PartyType) IsValid() bool {
	switch p {
	case PartyVendor, PartyNGO, PartySchool:
		return true
	}
	return false
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusDispatched OrderStatus = "DISPATCHED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusDispatched, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// StatusEvent is one entry in an order's status trail.
type StatusEvent struct {
	Timestamp     string      `json:"timestamps"`
	PersonName    string      `json:"personName"`
	ContactNumber string      `json:"contactNumber"`
	Status        OrderStatus `json:"status"`
}

// OrderLine is one toy shipment line of a vendor order.
type OrderLine struct {
	ToyID    string `json:"toy"`
	Toy      *Toy   `json:"toyDetails,omitempty"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// VendorOrder is a shipment of toys between two parties. The status
// trail is append-only: updates replace the whole list, and the last
// entry is authoritative for the current status.
type VendorOrder struct {
	ID               string        `json:"id"`
	Brand            string        `json:"brand,omitempty"`
	SubBrand         string        `json:"subBrand,omitempty"`
	From             PartyType     `json:"from"`
	To               PartyType     `json:"to"`
	SchoolID         *string       `json:"school,omitempty"`
	Description      string        `json:"description,omitempty"`
	PhotosVideosLink string        `json:"photosVideosLink,omitempty"`
	Lines            []OrderLine   `json:"listOfToysSentLink"`
	Status           []StatusEvent `json:"status"`
	StockAdjusted    bool          `json:"stockAdjusted"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CurrentStatus returns the most recent trail entry's status, or the
// empty status for an order without a trail.
func (o *VendorOrder) CurrentStatus() OrderStatus {
	if len(o.Status) == 0 {
		return ""
	}
	return o.Status[len(o.Status)-1].Status
}

// CartItem is one line of an incoming order cart.
type CartItem struct {
	ToyID    string `json:"toyId"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
	Brand    string `json:"brand"`
	SubBrand string `json:"subBrand"`
}

// GroupCart partitions a cart into order drafts.
//
// Bulk shipments (from != vendor) collapse into a single draft: brand
// is not a distinguishing axis when the NGO or a school is shipping.
// Vendor shipments are partitioned by (brand, subBrand) in first-seen
// order, since vendors ship per product line. Lines keep their relative
// order within each draft. Every draft opens with a PENDING trail entry
// stamped with pendingAt. An empty cart yields no drafts.
func GroupCart(cart []CartItem, from, to PartyType, schoolID *string, pendingAt string) []VendorOrder {
	if len(cart) == 0 {
		return nil
	}

	initialTrail := func() []StatusEvent {
		return []StatusEvent{{Timestamp: pendingAt, Status: StatusPending}}
	}

	if from != PartyVendor {
		order := VendorOrder{
			From:     from,
			To:       to,
			SchoolID: schoolID,
			Status:   initialTrail(),
		}
		for _, item := range cart {
			order.Lines = append(order.Lines, OrderLine{
				ToyID:    item.ToyID,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}
		return []VendorOrder{order}
	}

	var orders []VendorOrder
	for _, item := range cart {
		line := OrderLine{
			ToyID:    item.ToyID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}

		matched := false
		for i := range orders {
			if orders[i].Brand == item.Brand && orders[i].SubBrand == item.SubBrand {
				orders[i].Lines = append(orders[i].Lines, line)
				matched = true
				break
			}
		}
		if !matched {
			orders = append(orders, VendorOrder{
				Brand:    item.Brand,
				SubBrand: item.SubBrand,
				From:     from,
				To:       to,
				SchoolID: schoolID,
				Lines:    []OrderLine{line},
				Status:   initialTrail(),
			})
		}
	}

	return orders
}
