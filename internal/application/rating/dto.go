package rating

import (
	"time"

	"github.com/google/uuid"

	"github.com/jakupie/backend/internal/domain/rating"
)

// CreateRatingRequest represents a request to rate another user
type CreateRatingRequest struct {
	RatedUserID   uuid.UUID  `json:"toUserId" binding:"required"`
	AdID          *uuid.UUID `json:"adId"`
	Score         int        `json:"score" binding:"required,min=1,max=5"`
	Comment       string     `json:"comment" binding:"max=500"`
	TransactionID string     `json:"transactionId" binding:"max=100"`
	Type          string     `json:"ratingType" binding:"required,oneof=buyer seller"`
}

// UpdateRatingRequest represents a rating edit. Nil fields are untouched.
type UpdateRatingRequest struct {
	Score   *int    `json:"score" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=500"`
}

// RatingResponse represents a rating in API responses
type RatingResponse struct {
	ID            uuid.UUID `json:"id"`
	RaterID       uuid.UUID `json:"fromUserId"`
	RatedUserID   uuid.UUID `json:"toUserId"`
	AdID          uuid.UUID `json:"adId,omitempty"`
	Score         int       `json:"score"`
	Comment       string    `json:"comment"`
	TransactionID string    `json:"transactionId,omitempty"`
	Type          string    `json:"ratingType"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToRatingResponse converts a domain rating to its API shape
func ToRatingResponse(r *rating.Rating) RatingResponse {
	return RatingResponse{
		ID:            r.ID,
		RaterID:       r.RaterID,
		RatedUserID:   r.RatedUserID,
		AdID:          r.AdID,
		Score:         r.Score,
		Comment:       r.Comment,
		TransactionID: r.TransactionID,
		Type:          string(r.Type),
		CreatedAt:     r.CreatedAt,
	}
}

// ToRatingResponses converts a slice of ratings
func ToRatingResponses(ratings []*rating.Rating) []RatingResponse {
	responses := make([]RatingResponse, len(ratings))
	for i, r := range ratings {
		responses[i] = ToRatingResponse(r)
	}
	return responses
}
