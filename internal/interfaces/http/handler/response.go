package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jakupie/backend/internal/application/listing"
	"github.com/jakupie/backend/internal/interfaces/http/middleware"
)

// ResponseHandler handles seller offers on ads.
type ResponseHandler struct {
	BaseHandler
	responseService *listing.ResponseService
}

func NewResponseHandler(responseService *listing.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseService: responseService}
}

func (h *ResponseHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("/ads/:id/responses", requireAuth, h.Create)
	rg.GET("/ads/:id/responses", requireAuth, h.ListByAd)
	rg.PATCH("/responses/:id/status", requireAuth, h.SetStatus)
	rg.GET("/my-responses", requireAuth, h.ListMine)
}

func (h *ResponseHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	adID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ad ID")
		return
	}

	var req listing.CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.responseService.Create(c.Request.Context(), userID, adID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListByAd returns the responses on an ad. Only the ad owner (or an
// admin) may see them, sellers are not shown competing offers.
func (h *ResponseHandler) ListByAd(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	adID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ad ID")
		return
	}

	responses, err := h.responseService.ListByAd(c.Request.Context(), userID, middleware.GetSessionIsAdmin(c), adID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, responses)
}

func (h *ResponseHandler) SetStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	responseID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid response ID")
		return
	}

	var req listing.UpdateResponseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.responseService.SetStatus(c.Request.Context(), userID, middleware.GetSessionIsAdmin(c), responseID, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

func (h *ResponseHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	responses, err := h.responseService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, responses)
}
