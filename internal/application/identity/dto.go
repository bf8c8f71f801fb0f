package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/jakupie/backend/internal/domain/identity"
)

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	FullName string `json:"fullName" binding:"max=200"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents a profile update. Nil fields are untouched.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName" binding:"omitempty,max=200"`
	Avatar   *string `json:"avatar" binding:"omitempty,max=500"`
}

// UserResponse represents a user in API responses. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Avatar    string    `json:"avatar"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResult carries the authenticated user and the session token to set as
// a cookie
type LoginResult struct {
	User  UserResponse
	Token string
}

// ToUserResponse converts a domain user to its API shape
func ToUserResponse(user *identity.User, isAdmin bool) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Avatar:    user.Avatar,
		IsAdmin:   isAdmin,
		CreatedAt: user.CreatedAt,
	}
}
