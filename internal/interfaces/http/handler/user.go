package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jakupie/backend/internal/application/identity"
)

// UserHandler exposes public user profiles.
type UserHandler struct {
	BaseHandler
	authService *identity.AuthService
}

func NewUserHandler(authService *identity.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/:id", h.Get)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.authService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}
