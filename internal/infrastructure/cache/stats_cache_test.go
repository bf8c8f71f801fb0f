package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakupie/backend/internal/domain/rating"
)

func TestMemoryStatsCache_RoundTrip(t *testing.T) {
	c := NewMemoryStatsCache()
	userID := uuid.New()

	miss, err := c.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, miss)

	stats := rating.UserStats{TotalRatingsReceived: 3, AverageRating: 4.33}
	require.NoError(t, c.Set(context.Background(), userID, stats))

	hit, err := c.Get(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, 3, hit.TotalRatingsReceived)

	require.NoError(t, c.Invalidate(context.Background(), userID))

	miss, err = c.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, miss)
}
