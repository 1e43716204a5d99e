package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toybridge/toybridge-api/internal/api/handler/v1/request"
	"github.com/toybridge/toybridge-api/internal/api/handler/v1/response"
	"github.com/toybridge/toybridge-api/internal/service"
)

type AuthService interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

// HandleSignIn godoc
// @Summary      Sign in the operator account
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignInRequest true "request body"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Router       /auth/sign-in [post]
func (h *AuthHandler) HandleSignIn(ctx *gin.Context) {
	var req request.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	token, err := h.svc.SignIn(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrInvalidCredentials.Error()))
			return
		}
		err = fmt.Errorf("v1.HandleSignIn -> h.svc.SignIn -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Sign in successful",
		"token":   token,
	})
}
