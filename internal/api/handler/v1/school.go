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

type SchoolService interface {
	ImportFromSheet(ctx context.Context) (int, error)
	GetSchool(ctx context.Context, id string) (domain.School, error)
	GetSchools(ctx context.Context, filter domain.SchoolFilter) ([]domain.School, error)
	UpdateSchool(ctx context.Context, school domain.School) (domain.School, error)
	DeleteSchool(ctx context.Context, id string) (domain.School, error)
}

type SchoolHandler struct {
	svc SchoolService
}

func NewSchoolHandler(svc SchoolService) *SchoolHandler {
	return &SchoolHandler{
		svc: svc,
	}
}

// HandleImportSchools godoc
// @Summary      Import pending registrations from the sheet
// @Tags         schools
// @Produce      json
// @Success      201      {object}   map[string]int
// @Failure      500      {object}   response.Err
// @Router       /school [post]
func (h *SchoolHandler) HandleImportSchools(ctx *gin.Context) {
	imported, err := h.svc.ImportFromSheet(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleImportSchools -> h.svc.ImportFromSheet -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Schools imported successfully",
		"imported": imported,
	})
}

// HandleGetSchools godoc
// @Summary      List schools
// @Tags         schools
// @Produce      json
// @Param        code      query     string false "filter by code"
// @Param        name      query     string false "filter by name"
// @Param        sortByAsc query     string false "any value sorts by registration time, ascending"
// @Success      200      {object}   map[string][]response.School
// @Failure      500      {object}   response.Err
// @Router       /school [get]
func (h *SchoolHandler) HandleGetSchools(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		// Compatibility with clients still sending the long field name.
		name = ctx.Query("nameOfSchoolInstitution")
	}

	filter := domain.SchoolFilter{
		Code:      ctx.Query("code"),
		Name:      name,
		SortByAsc: ctx.Query("sortByAsc") != "",
	}

	schools, err := h.svc.GetSchools(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSchools -> h.svc.GetSchools -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"schools": response.NewSchools(schools),
	})
}

// HandleGetSchool godoc
// @Summary      Get one school
// @Tags         schools
// @Produce      json
// @Param        schoolID path       string true "school ID"
// @Success      200      {object}   response.School
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /school/{schoolID} [get]
func (h *SchoolHandler) HandleGetSchool(ctx *gin.Context) {
	schoolID := ctx.Param("schoolID")

	school, err := h.svc.GetSchool(ctx.Request.Context(), schoolID)
	if err != nil {
		h.renderSchoolErr(ctx, "HandleGetSchool", schoolID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"school": response.NewSchool(school),
	})
}

// HandleUpdateSchool godoc
// @Summary      Update a school record
// @Tags         schools
// @Produce      json
// @Param        schoolID path       string true "school ID"
// @Param        request  body       request.UpdateSchoolRequest true "request body"
// @Success      200      {object}   response.School
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /school/{schoolID} [put]
func (h *SchoolHandler) HandleUpdateSchool(ctx *gin.Context) {
	schoolID := ctx.Param("schoolID")

	var req request.UpdateSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	school, err := h.svc.GetSchool(ctx.Request.Context(), schoolID)
	if err != nil {
		h.renderSchoolErr(ctx, "HandleUpdateSchool", schoolID, err)
		return
	}

	req.Apply(&school)

	updated, err := h.svc.UpdateSchool(ctx.Request.Context(), school)
	if err != nil {
		if errors.Is(err, service.ErrSchoolCodeExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrSchoolCodeExists))
			return
		}
		h.renderSchoolErr(ctx, "HandleUpdateSchool", schoolID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "School updated successfully",
		"school":  response.NewSchool(updated),
	})
}

// HandleDeleteSchool godoc
// @Summary      Delete a school record
// @Tags         schools
// @Produce      json
// @Param        schoolID path       string true "school ID"
// @Success      200      {object}   response.School
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /school/{schoolID} [delete]
func (h *SchoolHandler) HandleDeleteSchool(ctx *gin.Context) {
	schoolID := ctx.Param("schoolID")

	deleted, err := h.svc.DeleteSchool(ctx.Request.Context(), schoolID)
	if err != nil {
		h.renderSchoolErr(ctx, "HandleDeleteSchool", schoolID, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "School deleted successfully",
		"school":  response.NewSchool(deleted),
	})
}

func (h *SchoolHandler) renderSchoolErr(ctx *gin.Context, op, schoolID string, err error) {
	var invalidErr *identifier.InvalidError
	if errors.As(err, &invalidErr) {
		response.RenderErr(ctx, response.ErrBadRequest(invalidErr))
		return
	}
	if errors.Is(err, service.ErrSchoolNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("school", "ID", schoolID))
		return
	}

	err = fmt.Errorf("v1.%v -> %w", op, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
