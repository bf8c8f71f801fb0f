package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakupie/backend/internal/domain/listing"
	"github.com/jakupie/backend/internal/domain/shared"
	"github.com/jakupie/backend/internal/infrastructure/persistence/models"
)

// GormAdResponseRepository implements AdResponseRepository using GORM
type GormAdResponseRepository struct {
	db *gorm.DB
}

var _ listing.AdResponseRepository = (*GormAdResponseRepository)(nil)

// NewGormAdResponseRepository creates a new GormAdResponseRepository
func NewGormAdResponseRepository(db *gorm.DB) *GormAdResponseRepository {
	return &GormAdResponseRepository{db: db}
}

// Create creates a new response
func (r *GormAdResponseRepository) Create(ctx context.Context, response *listing.AdResponse) error {
	model := models.AdResponseModelFromDomain(response)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing response. A missing row reports not-found
// instead of being recreated.
func (r *GormAdResponseRepository) Update(ctx context.Context, response *listing.AdResponse) error {
	model := models.AdResponseModelFromDomain(response)
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

// FindByID finds a response by ID
func (r *GormAdResponseRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.AdResponse, error) {
	var model models.AdResponseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAdID returns the responses on an ad, newest first
func (r *GormAdResponseRepository) FindByAdID(ctx context.Context, adID uuid.UUID) ([]*listing.AdResponse, error) {
	var responseModels []*models.AdResponseModel
	if err := r.db.WithContext(ctx).
		Where("ad_id = ?", adID).
		Order("created_at DESC").
		Find(&responseModels).Error; err != nil {
		return nil, err
	}
	return toDomainResponses(responseModels), nil
}

// FindByUserID returns the responses made by a seller, newest first
func (r *GormAdResponseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*listing.AdResponse, error) {
	var responseModels []*models.AdResponseModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&responseModels).Error; err != nil {
		return nil, err
	}
	return toDomainResponses(responseModels), nil
}

// CountByAdID counts the responses on an ad
func (r *GormAdResponseRepository) CountByAdID(ctx context.Context, adID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AdResponseModel{}).
		Where("ad_id = ?", adID).
		Count(&count).Error
	return count, err
}

func toDomainResponses(responseModels []*models.AdResponseModel) []*listing.AdResponse {
	responses := make([]*listing.AdResponse, len(responseModels))
	for i, model := range responseModels {
		responses[i] = model.ToDomain()
	}
	return responses
}
