package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toybridge/toybridge-api/internal/api/handler/v1/request"
	"github.com/toybridge/toybridge-api/internal/api/handler/v1/response"
	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
	"github.com/toybridge/toybridge-api/internal/service"
)

type VendorOrderService interface {
	PlaceOrder(ctx context.Context, cart []domain.CartItem, from, to domain.PartyType, schoolID *string) (service.PlacementResult, error)
	GetOrder(ctx context.Context, id string) (domain.VendorOrder, error)
	GetOrders(ctx context.Context) ([]domain.VendorOrder, error)
	GetOrdersBySchool(ctx context.Context, schoolID string) ([]domain.VendorOrder, error)
	UpdateOrder(ctx context.Context, order domain.VendorOrder, replaceLines, replaceTrail bool) (domain.VendorOrder, error)
	DeleteOrder(ctx context.Context, id string) error
}

type VendorOrderHandler struct {
	svc VendorOrderService
}

func NewVendorOrderHandler(svc VendorOrderService) *VendorOrderHandler {
	return &VendorOrderHandler{
		svc: svc,
	}
}

// HandlePlaceOrder godoc
// @Summary      Place an order from a cart
// @Tags         vendor-orders
// @Produce      json
// @Param        request  body       request.PlaceVendorOrderRequest true "request body"
// @Success      201      {object}   response.OrderPlacement
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /vendor-order/place [post]
func (h *VendorOrderHandler) HandlePlaceOrder(ctx *gin.Context) {
	var req request.PlaceVendorOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.PlaceOrder(ctx.Request.Context(),
		req.CartItems(), domain.PartyType(req.From), domain.PartyType(req.To), req.SchoolID)
	if err != nil {
		// The orders exist at this point; tell the caller which ones.
		var adjustErr *service.StockAdjustmentError
		if errors.As(err, &adjustErr) {
			var insufficient *service.InsufficientStockError
			if errors.As(adjustErr.Err, &insufficient) {
				ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error":             "Orders placed but stock adjustment failed",
					"orderIds":          adjustErr.OrderIDs,
					"toyId":             insufficient.ToyID,
					"availableQuantity": insufficient.Available,
					"requestedQuantity": insufficient.Requested,
				})
				return
			}
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":    "Orders placed but stock adjustment failed",
				"orderIds": adjustErr.OrderIDs,
			})
			return
		}

		h.renderOrderErr(ctx, "HandlePlaceOrder", "", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.OrderPlacement{
		Message:  "Order placed successfully",
		OrderIDs: result.OrderIDs,
	})
}

// HandleGetOrders godoc
// @Summary      List all vendor orders
// @Tags         vendor-orders
// @Produce      json
// @Success      200      {object}   map[string][]response.VendorOrder
// @Failure      500      {object}   response.Err
// @Router       /vendor-order [get]
func (h *VendorOrderHandler) HandleGetOrders(ctx *gin.Context) {
	orders, err := h.svc.GetOrders(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetOrders -> h.svc.GetOrders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"orders": response.NewVendorOrders(orders),
	})
}

// HandleGetOrder godoc
// @Summary      Get one vendor order
// @Tags         vendor-orders
// @Produce      json
// @Param        orderID  path       string true "order ID"
// @Success      200      {object}   response.VendorOrder
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /vendor-order/{orderID} [get]
func (h *VendorOrderHandler) HandleGetOrder(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	order, err := h.svc.GetOrder(ctx.Request.Context(), orderID)
	if err != nil {
		h.renderOrderErr(ctx, "HandleGetOrder", orderID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"order": response.NewVendorOrder(order),
	})
}

// HandleGetOrdersBySchool godoc
// @Summary      List vendor orders dispatched to a school
// @Tags         vendor-orders
// @Produce      json
// @Param        schoolID path       string true "school ID"
// @Success      200      {object}   map[string][]response.VendorOrder
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /vendor-order/school/{schoolID} [get]
func (h *VendorOrderHandler) HandleGetOrdersBySchool(ctx *gin.Context) {
	schoolID := ctx.Param("schoolID")

	orders, err := h.svc.GetOrdersBySchool(ctx.Request.Context(), schoolID)
	if err != nil {
		var invalidErr *identifier.InvalidError
		if errors.As(err, &invalidErr) {
			response.RenderErr(ctx, response.ErrBadRequest(invalidErr))
			return
		}
		if errors.Is(err, service.ErrSchoolNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("school", "ID", schoolID))
			return
		}
		err = fmt.Errorf("v1.HandleGetOrdersBySchool -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"orders": response.NewVendorOrders(orders),
	})
}

// HandleUpdateOrder godoc
// @Summary      Update a vendor order
// @Tags         vendor-orders
// @Produce      json
// @Param        orderID  path       string true "order ID"
// @Param        request  body       request.UpdateVendorOrderRequest true "request body"
// @Success      200      {object}   response.VendorOrder
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /vendor-order/{orderID} [put]
func (h *VendorOrderHandler) HandleUpdateOrder(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	var req request.UpdateVendorOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	order, err := h.svc.GetOrder(ctx.Request.Context(), orderID)
	if err != nil {
		h.renderOrderErr(ctx, "HandleUpdateOrder", orderID, err)
		return
	}

	replaceLines, replaceTrail := req.Apply(&order)

	updated, err := h.svc.UpdateOrder(ctx.Request.Context(), order, replaceLines, replaceTrail)
	if err != nil {
		if errors.Is(err, service.ErrSameParty) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrSameParty))
			return
		}
		h.renderOrderErr(ctx, "HandleUpdateOrder", orderID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order":   response.NewVendorOrder(updated),
	})
}

// HandleDeleteOrder godoc
// @Summary      Delete a vendor order
// @Tags         vendor-orders
// @Produce      json
// @Param        orderID  path       string true "order ID"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /vendor-order/{orderID} [delete]
func (h *VendorOrderHandler) HandleDeleteOrder(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	if err := h.svc.DeleteOrder(ctx.Request.Context(), orderID); err != nil {
		h.renderOrderErr(ctx, "HandleDeleteOrder", orderID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

func (h *VendorOrderHandler) renderOrderErr(ctx *gin.Context, op, orderID string, err error) {
	var invalidErr *identifier.InvalidError
	if errors.As(err, &invalidErr) {
		response.RenderErr(ctx, response.ErrBadRequest(invalidErr))
		return
	}

	for _, bad := range []error{
		service.ErrSameParty,
		service.ErrInvalidParty,
		service.ErrEmptyCart,
		service.ErrInvalidQuantity,
		service.ErrInvalidPrice,
		service.ErrSchoolIDRequired,
		service.ErrSchoolIDNotAllowed,
	} {
		if errors.Is(err, bad) {
			response.RenderErr(ctx, response.ErrBadRequest(bad))
			return
		}
	}

	if errors.Is(err, service.ErrToyNotFound) {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if errors.Is(err, service.ErrSchoolNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("school", "ID", ""))
		return
	}
	if errors.Is(err, service.ErrOrderNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("order", "ID", orderID))
		return
	}

	err = fmt.Errorf("v1.%v -> %w", op, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
