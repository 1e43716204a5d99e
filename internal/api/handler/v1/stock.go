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

type StockService interface {
	GetAvailable(ctx context.Context, toyID string) (int, error)
	GetEntries(ctx context.Context) ([]domain.StockEntry, error)
	Assign(ctx context.Context, toyID string, quantity int) (domain.StockEntry, bool, error)
	AddMany(ctx context.Context, orderID string, lines []domain.StockLine) error
	RemoveMany(ctx context.Context, lines []domain.StockLine) error
	CheckAvailability(ctx context.Context, lines []domain.StockLine) ([]domain.Shortfall, error)
	DeleteEntry(ctx context.Context, toyID string) error
}

type StockHandler struct {
	svc StockService
}

func NewStockHandler(svc StockService) *StockHandler {
	return &StockHandler{
		svc: svc,
	}
}

// HandleGetStock godoc
// @Summary      List all stock entries
// @Tags         stock
// @Produce      json
// @Success      200      {object}   map[string][]response.StockEntry
// @Failure      500      {object}   response.Err
// @Router       /stock [get]
func (h *StockHandler) HandleGetStock(ctx *gin.Context) {
	entries, err := h.svc.GetEntries(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStock -> h.svc.GetEntries -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"stock": response.NewStockEntries(entries),
	})
}

// HandleGetAvailable godoc
// @Summary      Get the on-hand quantity for a toy
// @Tags         stock
// @Produce      json
// @Param        toyID    path       string true "toy ID"
// @Success      200      {object}   map[string]int
// @Failure      400      {object}   response.Err
// @Router       /stock/{toyID} [get]
func (h *StockHandler) HandleGetAvailable(ctx *gin.Context) {
	toyID := ctx.Param("toyID")

	quantity, err := h.svc.GetAvailable(ctx.Request.Context(), toyID)
	if err != nil {
		h.renderStockErr(ctx, "HandleGetAvailable", toyID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"toyId":             toyID,
		"availableQuantity": quantity,
	})
}

// HandleAssignStock godoc
// @Summary      Set a toy's on-hand quantity outright
// @Tags         stock
// @Produce      json
// @Param        request  body       request.AssignStockRequest true "request body"
// @Success      200      {object}   response.StockEntry
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /stock [post]
func (h *StockHandler) HandleAssignStock(ctx *gin.Context) {
	var req request.AssignStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, created, err := h.svc.Assign(ctx.Request.Context(), req.ToyID, req.Quantity)
	if err != nil {
		h.renderStockErr(ctx, "HandleAssignStock", req.ToyID, err)
		return
	}

	message := "Stock updated successfully"
	status := http.StatusOK
	if created {
		message = "Stock assigned successfully"
		status = http.StatusCreated
	}

	ctx.JSON(status, gin.H{
		"message": message,
		"stock":   response.NewStockEntry(entry),
	})
}

// HandleAddStock godoc
// @Summary      Restock from a received vendor order
// @Tags         stock
// @Produce      json
// @Param        request  body       request.AddStockRequest true "request body"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /stock/add [post]
func (h *StockHandler) HandleAddStock(ctx *gin.Context) {
	var req request.AddStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.AddMany(ctx.Request.Context(), req.OrderID, req.Lines()); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("order", "ID", req.OrderID))
			return
		}
		h.renderStockErr(ctx, "HandleAddStock", req.OrderID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Stock added successfully",
	})
}

// HandleRemoveStock godoc
// @Summary      Remove quantities from stock atomically
// @Tags         stock
// @Produce      json
// @Param        request  body       request.RemoveStockRequest true "request body"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /stock/remove [post]
func (h *StockHandler) HandleRemoveStock(ctx *gin.Context) {
	var req request.RemoveStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.RemoveMany(ctx.Request.Context(), req.Lines()); err != nil {
		var insufficient *service.InsufficientStockError
		if errors.As(err, &insufficient) {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":             insufficient.Error(),
				"toyId":             insufficient.ToyID,
				"availableQuantity": insufficient.Available,
				"requestedQuantity": insufficient.Requested,
			})
			return
		}
		h.renderStockErr(ctx, "HandleRemoveStock", "", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Stock removed successfully",
	})
}

// HandleCheckAvailability godoc
// @Summary      Check whether stock covers a cart
// @Tags         stock
// @Produce      json
// @Param        request  body       request.CheckAvailabilityRequest true "request body"
// @Success      200      {object}   map[string]any
// @Failure      400      {object}   response.Err
// @Router       /stock/check-available [post]
func (h *StockHandler) HandleCheckAvailability(ctx *gin.Context) {
	var req request.CheckAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	shortfalls, err := h.svc.CheckAvailability(ctx.Request.Context(), req.Lines())
	if err != nil {
		h.renderStockErr(ctx, "HandleCheckAvailability", "", err)
		return
	}

	if len(shortfalls) > 0 {
		ctx.JSON(http.StatusOK, gin.H{
			"available":  false,
			"shortfalls": shortfalls,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"available": true,
	})
}

// HandleDeleteStock godoc
// @Summary      Delete a toy's stock entry
// @Tags         stock
// @Produce      json
// @Param        toyID    path       string true "toy ID"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /stock/{toyID} [delete]
func (h *StockHandler) HandleDeleteStock(ctx *gin.Context) {
	toyID := ctx.Param("toyID")

	if err := h.svc.DeleteEntry(ctx.Request.Context(), toyID); err != nil {
		if errors.Is(err, service.ErrStockEntryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock entry", "toy ID", toyID))
			return
		}
		h.renderStockErr(ctx, "HandleDeleteStock", toyID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Stock entry deleted successfully",
	})
}

func (h *StockHandler) renderStockErr(ctx *gin.Context, op, id string, err error) {
	var invalidErr *identifier.InvalidError
	if errors.As(err, &invalidErr) {
		response.RenderErr(ctx, response.ErrBadRequest(invalidErr))
		return
	}
	if errors.Is(err, service.ErrInvalidQuantity) {
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidQuantity))
		return
	}
	if errors.Is(err, service.ErrToyNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("toy", "ID", id))
		return
	}

	err = fmt.Errorf("v1.%v -> %w", op, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
