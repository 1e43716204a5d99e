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

type OtherProductService interface {
	AddToOrder(ctx context.Context, orderID, item string, quantity int) (domain.OtherProduct, error)
	GetByOrder(ctx context.Context, orderID string) ([]domain.OtherProduct, error)
	Delete(ctx context.Context, id string) error
}

type OtherProductHandler struct {
	svc OtherProductService
}

func NewOtherProductHandler(svc OtherProductService) *OtherProductHandler {
	return &OtherProductHandler{
		svc: svc,
	}
}

// HandleAddProduct godoc
// @Summary      Attach a non-catalog item to a vendor order
// @Tags         other-products
// @Produce      json
// @Param        orderID  path       string true "order ID"
// @Param        request  body       request.AddOtherProductRequest true "request body"
// @Success      201      {object}   response.OtherProduct
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /other-products/order/{orderID} [post]
func (h *OtherProductHandler) HandleAddProduct(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	var req request.AddOtherProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	product, err := h.svc.AddToOrder(ctx.Request.Context(), orderID, req.Item, req.Quantity)
	if err != nil {
		h.renderProductErr(ctx, "HandleAddProduct", orderID, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": response.NewOtherProduct(product),
	})
}

// HandleGetProducts godoc
// @Summary      List the non-catalog items on a vendor order
// @Tags         other-products
// @Produce      json
// @Param        orderID  path       string true "order ID"
// @Success      200      {object}   map[string][]response.OtherProduct
// @Failure      400      {object}   response.Err
// @Router       /other-products/order/{orderID} [get]
func (h *OtherProductHandler) HandleGetProducts(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	products, err := h.svc.GetByOrder(ctx.Request.Context(), orderID)
	if err != nil {
		h.renderProductErr(ctx, "HandleGetProducts", orderID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products": response.NewOtherProducts(products),
	})
}

// HandleDeleteProduct godoc
// @Summary      Remove a non-catalog item
// @Tags         other-products
// @Produce      json
// @Param        productID path      string true "product ID"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /other-products/{productID} [delete]
func (h *OtherProductHandler) HandleDeleteProduct(ctx *gin.Context) {
	productID := ctx.Param("productID")

	if err := h.svc.Delete(ctx.Request.Context(), productID); err != nil {
		if errors.Is(err, service.ErrOtherProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
			return
		}
		h.renderProductErr(ctx, "HandleDeleteProduct", productID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

func (h *OtherProductHandler) renderProductErr(ctx *gin.Context, op, id string, err error) {
	var invalidErr *identifier.InvalidError
	if errors.As(err, &invalidErr) {
		response.RenderErr(ctx, response.ErrBadRequest(invalidErr))
		return
	}
	if errors.Is(err, service.ErrInvalidQuantity) {
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidQuantity))
		return
	}
	if errors.Is(err, service.ErrOrderNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("order", "ID", id))
		return
	}

	err = fmt.Errorf("v1.%v -> %w", op, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
