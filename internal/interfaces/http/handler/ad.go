package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jakupie/backend/internal/application/listing"
	"github.com/jakupie/backend/internal/interfaces/http/middleware"
)

// AdHandler handles want-to-buy ad endpoints.
type AdHandler struct {
	BaseHandler
	adService *listing.AdService
}

func NewAdHandler(adService *listing.AdService) *AdHandler {
	return &AdHandler{adService: adService}
}

// RegisterRoutes registers ad routes. Listing and reading ads is
// public, everything that mutates requires a session.
func (h *AdHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	rg.GET("/ads", h.List)
	rg.GET("/ads/:id", h.Get)

	rg.POST("/ads", requireAuth, h.Create)
	rg.PATCH("/ads/:id", requireAuth, h.Update)
	rg.PATCH("/ads/:id/status", requireAuth, h.SetStatus)
	rg.DELETE("/ads/:id", requireAuth, h.Delete)
	rg.GET("/my-ads", requireAuth, h.ListMine)

	rg.DELETE("/admin/ads/:id", requireAuth, requireAdmin, h.AdminDelete)
}

func (h *AdHandler) List(c *gin.Context) {
	var filter listing.AdListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	ads, err := h.adService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ads)
}

func (h *AdHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ad ID")
		return
	}

	ad, err := h.adService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ad)
}

func (h *AdHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req listing.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	ad, err := h.adService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ad)
}

func (h *AdHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ad ID")
		return
	}

	var req listing.UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	ad, err := h.adService.Update(c.Request.Context(), userID, middleware.GetSessionIsAdmin(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ad)
}

func (h *AdHandler) SetStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ad ID")
		return
	}

	var req listing.UpdateAdStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	ad, err := h.adService.SetStatus(c.Request.Context(), userID, middleware.GetSessionIsAdmin(c), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ad)
}

func (h *AdHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ad ID")
		return
	}

	if err := h.adService.Delete(c.Request.Context(), userID, middleware.GetSessionIsAdmin(c), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AdminDelete removes any ad regardless of ownership. The admin
// middleware has already checked the allowlist.
func (h *AdHandler) AdminDelete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ad ID")
		return
	}

	if err := h.adService.Delete(c.Request.Context(), userID, true, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Ad deleted"})
}

func (h *AdHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	ads, err := h.adService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ads)
}
