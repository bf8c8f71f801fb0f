package rating

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakupie/backend/internal/domain/shared"
)

func TestNewRating_Success(t *testing.T) {
	raterID := uuid.New()
	ratedUserID := uuid.New()
	adID := uuid.New()

	r, err := NewRating(raterID, ratedUserID, adID, 5, "  Szybka wysyłka, polecam  ", "txn-42", RatingTypeSeller)

	require.NoError(t, err)
	assert.Equal(t, raterID, r.RaterID)
	assert.Equal(t, ratedUserID, r.RatedUserID)
	assert.Equal(t, 5, r.Score)
	assert.Equal(t, "Szybka wysyłka, polecam", r.Comment)
	assert.Equal(t, "txn-42", r.TransactionID)
	assert.Equal(t, RatingTypeSeller, r.Type)
	assert.True(t, r.IsBy(raterID))
}

func TestNewRating_Validation(t *testing.T) {
	raterID := uuid.New()
	ratedUserID := uuid.New()

	tests := []struct {
		name        string
		raterID     uuid.UUID
		ratedUserID uuid.UUID
		score       int
		comment     string
		ratingType  RatingType
		wantCode    string
	}{
		{"empty rater", uuid.Nil, ratedUserID, 5, "", RatingTypeBuyer, "INVALID_RATER"},
		{"empty rated user", raterID, uuid.Nil, 5, "", RatingTypeBuyer, "INVALID_RATED_USER"},
		{"self rating", raterID, raterID, 5, "", RatingTypeBuyer, "INVALID_STATE"},
		{"score too low", raterID, ratedUserID, 0, "", RatingTypeBuyer, "INVALID_SCORE"},
		{"score too high", raterID, ratedUserID, 6, "", RatingTypeBuyer, "INVALID_SCORE"},
		{"unknown type", raterID, ratedUserID, 4, "", RatingType("owner"), "INVALID_RATING_TYPE"},
		{"comment too long", raterID, ratedUserID, 4, strings.Repeat("a", 501), RatingTypeBuyer, "INVALID_COMMENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRating(tt.raterID, tt.ratedUserID, uuid.Nil, tt.score, tt.comment, "", tt.ratingType)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}

func TestRating_SetScore(t *testing.T) {
	r, err := NewRating(uuid.New(), uuid.New(), uuid.Nil, 3, "", "", RatingTypeBuyer)
	require.NoError(t, err)

	require.NoError(t, r.SetScore(1))
	assert.Equal(t, 1, r.Score)

	err = r.SetScore(6)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_SCORE", domainErr.Code)
}

func mustRating(t *testing.T, ratedUserID uuid.UUID, score int, txnID string, ratingType RatingType) *Rating {
	t.Helper()
	r, err := NewRating(uuid.New(), ratedUserID, uuid.Nil, score, "", txnID, ratingType)
	require.NoError(t, err)
	return r
}

func TestComputeStats(t *testing.T) {
	ratedUserID := uuid.New()

	ratings := []*Rating{
		mustRating(t, ratedUserID, 5, "txn-1", RatingTypeSeller),
		mustRating(t, ratedUserID, 3, "txn-1", RatingTypeSeller),
		mustRating(t, ratedUserID, 1, "", RatingTypeBuyer),
	}

	stats := ComputeStats(ratings)

	assert.Equal(t, 3, stats.TotalRatingsReceived)
	assert.Equal(t, 3.0, stats.AverageRating)
	assert.Equal(t, 1, stats.PositiveRatings)
	assert.Equal(t, 1, stats.NeutralRatings)
	assert.Equal(t, 1, stats.NegativeRatings)
	assert.Equal(t, 1, stats.AsBuyerRatings)
	assert.Equal(t, 1.0, stats.AsBuyerAvgRating)
	assert.Equal(t, 2, stats.AsSellerRatings)
	assert.Equal(t, 4.0, stats.AsSellerAvgRating)
	assert.Equal(t, 1, stats.CompletedTransactions)
	assert.False(t, stats.LastUpdated.IsZero())
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalRatingsReceived)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, 0.0, stats.AsBuyerAvgRating)
	assert.Equal(t, 0.0, stats.AsSellerAvgRating)
	assert.Equal(t, 0, stats.CompletedTransactions)
	assert.False(t, stats.LastUpdated.IsZero())
}

func TestComputeStats_Rounding(t *testing.T) {
	ratedUserID := uuid.New()

	ratings := []*Rating{
		mustRating(t, ratedUserID, 5, "", RatingTypeSeller),
		mustRating(t, ratedUserID, 4, "", RatingTypeSeller),
		mustRating(t, ratedUserID, 4, "", RatingTypeSeller),
	}

	stats := ComputeStats(ratings)

	assert.Equal(t, 4.33, stats.AverageRating)
}
