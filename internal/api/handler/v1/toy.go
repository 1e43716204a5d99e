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

type ToyService interface {
	AddToy(ctx context.Context, toy domain.Toy) (domain.Toy, error)
	GetToy(ctx context.Context, id string) (domain.Toy, error)
	GetToys(ctx context.Context) ([]domain.Toy, error)
	UpdateToy(ctx context.Context, toy domain.Toy) (domain.Toy, error)
	DeleteToy(ctx context.Context, id string) (domain.Toy, error)
}

type ToyHandler struct {
	svc ToyService
}

func NewToyHandler(svc ToyService) *ToyHandler {
	return &ToyHandler{
		svc: svc,
	}
}

// HandleAddToy godoc
// @Summary      Add a toy to the catalog
// @Tags         toys
// @Produce      json
// @Param        request   body      request.CreateToyRequest true "request body"
// @Success      201      {object}   response.Toy
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /toys [post]
func (h *ToyHandler) HandleAddToy(ctx *gin.Context) {
	var req request.CreateToyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	toy, err := h.svc.AddToy(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleAddToy -> h.svc.AddToy -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Toy added successfully",
		"toy":     response.NewToy(toy),
	})
}

// HandleGetToys godoc
// @Summary      List the toy catalog
// @Tags         toys
// @Produce      json
// @Success      200      {object}   map[string][]response.Toy
// @Failure      500      {object}   response.Err
// @Router       /toys [get]
func (h *ToyHandler) HandleGetToys(ctx *gin.Context) {
	toys, err := h.svc.GetToys(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetToys -> h.svc.GetToys -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"toys": response.NewToys(toys),
	})
}

// HandleGetToy godoc
// @Summary      Get one toy
// @Tags         toys
// @Produce      json
// @Param        toyID    path       string true "toy ID"
// @Success      200      {object}   response.Toy
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /toys/{toyID} [get]
func (h *ToyHandler) HandleGetToy(ctx *gin.Context) {
	toyID := ctx.Param("toyID")

	toy, err := h.svc.GetToy(ctx.Request.Context(), toyID)
	if err != nil {
		var invalidErr *identifier.InvalidError
		if errors.As(err, &invalidErr) {
			response.RenderErr(ctx, response.ErrBadRequest(invalidErr))
			return
		}
		if errors.Is(err, service.ErrToyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("toy", "ID", toyID))
			return
		}
		err = fmt.Errorf("v1.HandleGetToy -> h.svc.GetToy -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"toy": response.NewToy(toy),
	})
}

// HandleUpdateToy godoc
// @Summary      Update a toy by its embedded id
// @Tags         toys
// @Produce      json
// @Param        request  body       request.UpdateToyRequest true "request body"
// @Success      200      {object}   response.Toy
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /toys [put]
func (h *ToyHandler) HandleUpdateToy(ctx *gin.Context) {
	var req request.UpdateToyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	toy, err := h.svc.GetToy(ctx.Request.Context(), req.Toy.ID)
	if err != nil {
		h.renderToyErr(ctx, "HandleUpdateToy", req.Toy.ID, err)
		return
	}

	req.Apply(&toy)

	updated, err := h.svc.UpdateToy(ctx.Request.Context(), toy)
	if err != nil {
		h.renderToyErr(ctx, "HandleUpdateToy", req.Toy.ID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Toy updated successfully",
		"toy":     response.NewToy(updated),
	})
}

// HandleDeleteToy godoc
// @Summary      Delete a toy and its stock entry
// @Tags         toys
// @Produce      json
// @Param        toyID    path       string true "toy ID"
// @Success      200      {object}   response.Toy
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /toys/{toyID} [delete]
func (h *ToyHandler) HandleDeleteToy(ctx *gin.Context) {
	toyID := ctx.Param("toyID")

	deleted, err := h.svc.DeleteToy(ctx.Request.Context(), toyID)
	if err != nil {
		h.renderToyErr(ctx, "HandleDeleteToy", toyID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Toy deleted successfully",
		"toy":     response.NewToy(deleted),
	})
}

func (h *ToyHandler) renderToyErr(ctx *gin.Context, op, toyID string, err error) {
	var invalidErr *identifier.InvalidError
	if errors.As(err, &invalidErr) {
		response.RenderErr(ctx, response.ErrBadRequest(invalidErr))
		return
	}
	if errors.Is(err, service.ErrToyNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("toy", "ID", toyID))
		return
	}

	err = fmt.Errorf("v1.%v -> %w", op, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
