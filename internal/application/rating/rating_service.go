package rating

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakupie/backend/internal/domain/identity"
	"github.com/jakupie/backend/internal/domain/listing"
	"github.com/jakupie/backend/internal/domain/rating"
	"github.com/jakupie/backend/internal/domain/shared"
)

// RatingService handles user-to-user ratings and their aggregated stats.
// Stats are cached and the cache is invalidated on every write touching the
// rated user.
type RatingService struct {
	ratingRepo rating.RatingRepository
	userRepo   identity.UserRepository
	adRepo     listing.AdRepository
	statsCache rating.StatsCache
	logger     *zap.Logger
}

// NewRatingService creates a new RatingService
func NewRatingService(
	ratingRepo rating.RatingRepository,
	userRepo identity.UserRepository,
	adRepo listing.AdRepository,
	statsCache rating.StatsCache,
	logger *zap.Logger,
) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
		adRepo:     adRepo,
		statsCache: statsCache,
		logger:     logger,
	}
}

// Create records a rating made by raterID
func (s *RatingService) Create(ctx context.Context, raterID uuid.UUID, req CreateRatingRequest) (*RatingResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, req.RatedUserID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Rated user not found")
	}

	adID := uuid.Nil
	if req.AdID != nil {
		if _, err := s.adRepo.FindByID(ctx, *req.AdID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Ad not found")
		}
		adID = *req.AdID
	}

	r, err := rating.NewRating(raterID, req.RatedUserID, adID, req.Score, req.Comment, req.TransactionID, rating.RatingType(req.Type))
	if err != nil {
		return nil, err
	}

	if err := s.ratingRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, r.RatedUserID)

	s.logger.Info("Rating created",
		zap.String("rating_id", r.ID.String()),
		zap.String("rated_user_id", r.RatedUserID.String()),
		zap.Int("score", r.Score))

	resp := ToRatingResponse(r)
	return &resp, nil
}

// Update edits a rating. Only the original rater may edit it.
func (s *RatingService) Update(ctx context.Context, actorID, ratingID uuid.UUID, req UpdateRatingRequest) (*RatingResponse, error) {
	r, err := s.ratingRepo.FindByID(ctx, ratingID)
	if err != nil {
		return nil, err
	}
	if !r.IsBy(actorID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the author can edit a rating")
	}

	if req.Score != nil {
		if err := r.SetScore(*req.Score); err != nil {
			return nil, err
		}
	}
	if req.Comment != nil {
		if err := r.SetComment(*req.Comment); err != nil {
			return nil, err
		}
	}

	if err := s.ratingRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, r.RatedUserID)

	resp := ToRatingResponse(r)
	return &resp, nil
}

// Delete removes a rating. The original rater or an admin may delete it.
func (s *RatingService) Delete(ctx context.Context, actorID uuid.UUID, actorIsAdmin bool, ratingID uuid.UUID) error {
	r, err := s.ratingRepo.FindByID(ctx, ratingID)
	if err != nil {
		return err
	}
	if !r.IsBy(actorID) && !actorIsAdmin {
		return shared.NewDomainError("FORBIDDEN", "Only the author can delete a rating")
	}

	if err := s.ratingRepo.Delete(ctx, ratingID); err != nil {
		return err
	}

	s.invalidateStats(ctx, r.RatedUserID)

	return nil
}

// ListByUser returns the ratings a user has received
func (s *RatingService) ListByUser(ctx context.Context, ratedUserID uuid.UUID) ([]RatingResponse, error) {
	ratings, err := s.ratingRepo.FindByRatedUserID(ctx, ratedUserID)
	if err != nil {
		return nil, err
	}
	return ToRatingResponses(ratings), nil
}

// Stats returns the aggregated rating summary for a user, served from cache
// when possible
func (s *RatingService) Stats(ctx context.Context, userID uuid.UUID) (*rating.UserStats, error) {
	if s.statsCache != nil {
		cached, err := s.statsCache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn("Stats cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	ratings, err := s.ratingRepo.FindByRatedUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := rating.ComputeStats(ratings)

	if s.statsCache != nil {
		if err := s.statsCache.Set(ctx, userID, stats); err != nil {
			s.logger.Warn("Stats cache write failed", zap.Error(err))
		}
	}

	return &stats, nil
}

func (s *RatingService) invalidateStats(ctx context.Context, userID uuid.UUID) {
	if s.statsCache == nil {
		return
	}
	if err := s.statsCache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("Stats cache invalidation failed",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
}
