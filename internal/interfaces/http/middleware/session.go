package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jakupie/backend/internal/domain/identity"
	"github.com/jakupie/backend/internal/infrastructure/auth"
	"github.com/jakupie/backend/internal/interfaces/http/dto"
)

// Context keys set by the session middleware
const (
	ContextUserIDKey    = "session_user_id"
	ContextUserEmailKey = "session_user_email"
	ContextIsAdminKey   = "session_is_admin"
	ContextTokenKey     = "session_token"
)

// SessionMiddleware authenticates requests by the session cookie
type SessionMiddleware struct {
	sessions   *auth.SessionService
	userRepo   identity.UserRepository
	isAdmin    func(email string) bool
	cookieName string
}

// NewSessionMiddleware creates session middleware. isAdmin decides whether an
// authenticated email carries admin rights.
func NewSessionMiddleware(
	sessions *auth.SessionService,
	userRepo identity.UserRepository,
	isAdmin func(email string) bool,
	cookieName string,
) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		userRepo:   userRepo,
		isAdmin:    isAdmin,
		cookieName: cookieName,
	}
}

// RequireAuth rejects requests without a valid session
func (m *SessionMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches session identity when present but lets anonymous
// requests through
func (m *SessionMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.authenticate(c)
		c.Next()
	}
}

// RequireAdmin rejects non-admin sessions. Must run after RequireAuth.
func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdminKey) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Admin access required"))
			return
		}
		c.Next()
	}
}

func (m *SessionMiddleware) authenticate(c *gin.Context) bool {
	// Already resolved earlier in the chain
	if c.GetString(ContextUserIDKey) != "" {
		return true
	}

	token, err := c.Cookie(m.cookieName)
	if err != nil || token == "" {
		return false
	}

	userID, err := m.sessions.Resolve(c.Request.Context(), token)
	if err != nil {
		return false
	}

	user, err := m.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		// Account removed while the session was still live
		return false
	}

	c.Set(ContextUserIDKey, user.ID.String())
	c.Set(ContextUserEmailKey, user.Email)
	c.Set(ContextIsAdminKey, m.isAdmin(user.Email))
	c.Set(ContextTokenKey, token)
	return true
}

// GetSessionUserID returns the authenticated user ID, or uuid.Nil when the
// request is anonymous
func GetSessionUserID(c *gin.Context) uuid.UUID {
	idStr := c.GetString(ContextUserIDKey)
	if idStr == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// GetSessionIsAdmin reports whether the authenticated user is an admin
func GetSessionIsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextIsAdminKey)
}

// GetSessionToken returns the raw session token for the request
func GetSessionToken(c *gin.Context) string {
	return c.GetString(ContextTokenKey)
}
