package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakupie/backend/internal/domain/rating"
	"github.com/jakupie/backend/internal/domain/shared"
	"github.com/jakupie/backend/internal/infrastructure/persistence/models"
)

// GormRatingRepository implements RatingRepository using GORM
type GormRatingRepository struct {
	db *gorm.DB
}

var _ rating.RatingRepository = (*GormRatingRepository)(nil)

// NewGormRatingRepository creates a new GormRatingRepository
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// Create creates a new rating
func (r *GormRatingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	model := models.RatingModelFromDomain(rt)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing rating. A missing row reports not-found instead
// of being recreated.
func (r *GormRatingRepository) Update(ctx context.Context, rt *rating.Rating) error {
	model := models.RatingModelFromDomain(rt)
	result := r.db.WithContext(ctx).
		Model(model).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a rating by ID
func (r *GormRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.RatingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a rating by ID
func (r *GormRatingRepository) FindByID(ctx context.Context, id uuid.UUID) (*rating.Rating, error) {
	var model models.RatingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByRatedUserID returns the ratings a user received, newest first
func (r *GormRatingRepository) FindByRatedUserID(ctx context.Context, ratedUserID uuid.UUID) ([]*rating.Rating, error) {
	var ratingModels []*models.RatingModel
	if err := r.db.WithContext(ctx).
		Where("rated_user_id = ?", ratedUserID).
		Order("created_at DESC").
		Find(&ratingModels).Error; err != nil {
		return nil, err
	}
	return toDomainRatings(ratingModels), nil
}

// FindByRaterID returns the ratings a user made, newest first
func (r *GormRatingRepository) FindByRaterID(ctx context.Context, raterID uuid.UUID) ([]*rating.Rating, error) {
	var ratingModels []*models.RatingModel
	if err := r.db.WithContext(ctx).
		Where("rater_id = ?", raterID).
		Order("created_at DESC").
		Find(&ratingModels).Error; err != nil {
		return nil, err
	}
	return toDomainRatings(ratingModels), nil
}

func toDomainRatings(ratingModels []*models.RatingModel) []*rating.Rating {
	ratings := make([]*rating.Rating, len(ratingModels))
	for i, model := range ratingModels {
		ratings[i] = model.ToDomain()
	}
	return ratings
}
