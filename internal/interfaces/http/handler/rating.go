package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jakupie/backend/internal/application/rating"
	"github.com/jakupie/backend/internal/interfaces/http/middleware"
)

// RatingHandler handles mutual buyer/seller ratings and the
// aggregated per-user statistics.
type RatingHandler struct {
	BaseHandler
	ratingService *rating.RatingService
}

func NewRatingHandler(ratingService *rating.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/users/:id/ratings", h.ListByUser)
	rg.GET("/users/:id/rating-stats", h.Stats)

	rg.POST("/ratings", requireAuth, h.Create)
	rg.PATCH("/ratings/:id", requireAuth, h.Update)
	rg.DELETE("/ratings/:id", requireAuth, h.Delete)
}

func (h *RatingHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req rating.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	created, err := h.ratingService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created)
}

func (h *RatingHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	ratingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid rating ID")
		return
	}

	var req rating.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	updated, err := h.ratingService.Update(c.Request.Context(), userID, ratingID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, updated)
}

func (h *RatingHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	ratingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid rating ID")
		return
	}

	if err := h.ratingService.Delete(c.Request.Context(), userID, middleware.GetSessionIsAdmin(c), ratingID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Rating deleted"})
}

func (h *RatingHandler) ListByUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	ratings, err := h.ratingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ratings)
}

func (h *RatingHandler) Stats(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	stats, err := h.ratingService.Stats(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}
