package rating

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jakupie/backend/internal/domain/shared"
)

// RatingType says which side of a transaction the rated user played
type RatingType string

const (
	RatingTypeBuyer  RatingType = "buyer"
	RatingTypeSeller RatingType = "seller"
)

// ValidRatingType reports whether s is a known rating type
func ValidRatingType(s string) bool {
	switch RatingType(s) {
	case RatingTypeBuyer, RatingTypeSeller:
		return true
	}
	return false
}

const maxCommentLength = 500

// Rating is one user's score of another after a transaction. RaterID never
// equals RatedUserID.
type Rating struct {
	shared.BaseEntity
	RaterID       uuid.UUID
	RatedUserID   uuid.UUID
	AdID          uuid.UUID
	Score         int
	Comment       string
	TransactionID string
	Type          RatingType
}

// NewRating creates a rating of ratedUserID made by raterID. adID may be
// uuid.Nil and transactionID empty for ratings detached from a specific
// transaction.
func NewRating(raterID, ratedUserID, adID uuid.UUID, score int, comment, transactionID string, ratingType RatingType) (*Rating, error) {
	if raterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RATER", "Rater cannot be empty")
	}
	if ratedUserID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RATED_USER", "Rated user cannot be empty")
	}
	if raterID == ratedUserID {
		return nil, shared.NewDomainError("INVALID_STATE", "Users cannot rate themselves")
	}
	if score < 1 || score > 5 {
		return nil, shared.NewDomainError("INVALID_SCORE", "Score must be between 1 and 5")
	}
	if !ValidRatingType(string(ratingType)) {
		return nil, shared.NewDomainError("INVALID_RATING_TYPE", "Rating type must be buyer or seller")
	}

	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return nil, shared.NewDomainError("INVALID_COMMENT", "Comment cannot exceed 500 characters")
	}

	return &Rating{
		BaseEntity:    shared.NewBaseEntity(),
		RaterID:       raterID,
		RatedUserID:   ratedUserID,
		AdID:          adID,
		Score:         score,
		Comment:       comment,
		TransactionID: strings.TrimSpace(transactionID),
		Type:          ratingType,
	}, nil
}

// IsBy reports whether the rating was made by userID
func (r *Rating) IsBy(userID uuid.UUID) bool {
	return r.RaterID == userID
}

// SetScore updates the score
func (r *Rating) SetScore(score int) error {
	if score < 1 || score > 5 {
		return shared.NewDomainError("INVALID_SCORE", "Score must be between 1 and 5")
	}

	r.Score = score
	r.Touch()

	return nil
}

// SetComment updates the comment
func (r *Rating) SetComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return shared.NewDomainError("INVALID_COMMENT", "Comment cannot exceed 500 characters")
	}

	r.Comment = comment
	r.Touch()

	return nil
}
