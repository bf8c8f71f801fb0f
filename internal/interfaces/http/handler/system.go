package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jakupie/backend/internal/infrastructure/persistence"
	"github.com/jakupie/backend/internal/interfaces/http/dto"
)

// SystemHandler exposes operational endpoints.
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	startTime time.Time
}

func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db, startTime: time.Now()}
}

// RegisterRoutes registers /health on the engine root, outside the API
// group, so probes skip the API middleware chain.
func (h *SystemHandler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/health", h.Health)
}

// Health reports service liveness and database connectivity. Returns
// 503 when the database is unreachable so load balancers can react.
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	httpStatus := http.StatusOK

	if err := h.db.Ping(); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, dto.NewSuccessResponse(gin.H{
		"status": status,
		"uptime": time.Since(h.startTime).Truncate(time.Second).String(),
	}))
}
