package rating

import (
	"context"

	"github.com/google/uuid"
)

// RatingRepository persists ratings
type RatingRepository interface {
	Create(ctx context.Context, rating *Rating) error
	Update(ctx context.Context, rating *Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Rating, error)
	FindByRatedUserID(ctx context.Context, ratedUserID uuid.UUID) ([]*Rating, error)
	FindByRaterID(ctx context.Context, raterID uuid.UUID) ([]*Rating, error)
}

// StatsCache caches computed user stats. Implementations must treat a miss
// as (nil, nil) rather than an error.
type StatsCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	Set(ctx context.Context, userID uuid.UUID, stats UserStats) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
