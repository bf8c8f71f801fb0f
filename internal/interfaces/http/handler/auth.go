package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakupie/backend/internal/application/identity"
	"github.com/jakupie/backend/internal/infrastructure/config"
)

// AuthHandler handles registration, login and the current user's profile.
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	session     config.SessionConfig
}

func NewAuthHandler(authService *identity.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		session:     session,
	}
}

// RegisterRoutes registers auth routes. requireAuth guards the
// profile endpoints while register/login stay public.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)

	rg.GET("/user", requireAuth, h.Me)
	rg.PATCH("/profile", requireAuth, h.UpdateProfile)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req identity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	h.Created(c, result.User)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	h.Success(c, result.User)
}

// Logout destroys the server-side session. Always succeeds, even
// without a valid cookie, so clients can call it unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.session.CookieName)
	if err == nil && token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			h.HandleError(c, err)
			return
		}
	}

	h.clearSessionCookie(c)
	h.Success(c, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identity.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(
		h.session.CookieName,
		token,
		int(h.session.TTL.Seconds()),
		h.session.Path,
		h.session.Domain,
		h.session.Secure,
		true, // httpOnly, the token must never be readable from scripts
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(h.session.CookieName, "", -1, h.session.Path, h.session.Domain, h.session.Secure, true)
}

func (h *AuthHandler) sameSite() http.SameSite {
	switch h.session.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
