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

type SchoolOrderService interface {
	PlaceOrder(ctx context.Context, order domain.SchoolOrder) (domain.SchoolOrder, error)
	GetOrder(ctx context.Context, id string) (domain.SchoolOrder, error)
	GetOrdersBySchool(ctx context.Context, schoolID string) ([]domain.SchoolOrder, error)
	UpdateOrder(ctx context.Context, order domain.SchoolOrder, replaceLines bool) (domain.SchoolOrder, error)
	DeleteOrder(ctx context.Context, id string) error
}

type SchoolOrderHandler struct {
	svc SchoolOrderService
}

func NewSchoolOrderHandler(svc SchoolOrderService) *SchoolOrderHandler {
	return &SchoolOrderHandler{
		svc: svc,
	}
}

// HandlePlaceOrder godoc
// @Summary      Record a dispatch of toys to a school
// @Tags         school-orders
// @Produce      json
// @Param        request  body       request.PlaceSchoolOrderRequest true "request body"
// @Success      201      {object}   response.SchoolOrder
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /school-order [post]
func (h *SchoolOrderHandler) HandlePlaceOrder(ctx *gin.Context) {
	var req request.PlaceSchoolOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.PlaceOrder(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		h.renderOrderErr(ctx, "HandlePlaceOrder", "", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   response.NewSchoolOrder(created),
	})
}

// HandleGetOrder godoc
// @Summary      Get one school order
// @Tags         school-orders
// @Produce      json
// @Param        orderID  path       string true "order ID"
// @Success      200      {object}   response.SchoolOrder
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /school-order/{orderID} [get]
func (h *SchoolOrderHandler) HandleGetOrder(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	order, err := h.svc.GetOrder(ctx.Request.Context(), orderID)
	if err != nil {
		h.renderOrderErr(ctx, "HandleGetOrder", orderID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"order": response.NewSchoolOrder(order),
	})
}

// HandleGetOrdersBySchool godoc
// @Summary      List school orders for a school
// @Tags         school-orders
// @Produce      json
// @Param        schoolID path       string true "school ID"
// @Success      200      {object}   map[string][]response.SchoolOrder
// @Failure      400      {object}   response.Err
// @Router       /school-order/school/{schoolID} [get]
func (h *SchoolOrderHandler) HandleGetOrdersBySchool(ctx *gin.Context) {
	schoolID := ctx.Param("schoolID")

	orders, err := h.svc.GetOrdersBySchool(ctx.Request.Context(), schoolID)
	if err != nil {
		h.renderOrderErr(ctx, "HandleGetOrdersBySchool", schoolID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"orders": response.NewSchoolOrders(orders),
	})
}

// HandleUpdateOrder godoc
// @Summary      Update a school order
// @Tags         school-orders
// @Produce      json
// @Param        orderID  path       string true "order ID"
// @Param        request  body       request.UpdateSchoolOrderRequest true "request body"
// @Success      200      {object}   response.SchoolOrder
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /school-order/{orderID} [put]
func (h *SchoolOrderHandler) HandleUpdateOrder(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	var req request.UpdateSchoolOrderRequest
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

	replaceLines := req.Apply(&order)

	updated, err := h.svc.UpdateOrder(ctx.Request.Context(), order, replaceLines)
	if err != nil {
		h.renderOrderErr(ctx, "HandleUpdateOrder", orderID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order":   response.NewSchoolOrder(updated),
	})
}

// HandleDeleteOrder godoc
// @Summary      Delete a school order
// @Tags         school-orders
// @Produce      json
// @Param        orderID  path       string true "order ID"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /school-order/{orderID} [delete]
func (h *SchoolOrderHandler) HandleDeleteOrder(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	if err := h.svc.DeleteOrder(ctx.Request.Context(), orderID); err != nil {
		h.renderOrderErr(ctx, "HandleDeleteOrder", orderID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

func (h *SchoolOrderHandler) renderOrderErr(ctx *gin.Context, op, id string, err error) {
	var invalidErr *identifier.InvalidError
	if errors.As(err, &invalidErr) {
		response.RenderErr(ctx, response.ErrBadRequest(invalidErr))
		return
	}

	switch {
	case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrInvalidQuantity):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrToyNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrSchoolNotFound):
		response.RenderErr(ctx, response.ErrNotFound("school", "ID", id))
	case errors.Is(err, service.ErrSchoolOrderNotFound):
		response.RenderErr(ctx, response.ErrNotFound("order", "ID", id))
	default:
		err = fmt.Errorf("v1.%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
