package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakupie/backend/internal/domain/listing"
	"github.com/jakupie/backend/internal/domain/shared"
	"github.com/jakupie/backend/internal/infrastructure/persistence/models"
)

// GormAdRepository implements AdRepository using GORM
type GormAdRepository struct {
	db *gorm.DB
}

var _ listing.AdRepository = (*GormAdRepository)(nil)

// NewGormAdRepository creates a new GormAdRepository
func NewGormAdRepository(db *gorm.DB) *GormAdRepository {
	return &GormAdRepository{db: db}
}

// Create creates a new ad
func (r *GormAdRepository) Create(ctx context.Context, ad *listing.Ad) error {
	model := models.AdModelFromDomain(ad)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing ad. A missing row reports not-found instead of
// being recreated.
func (r *GormAdRepository) Update(ctx context.Context, ad *listing.Ad) error {
	model := models.AdModelFromDomain(ad)
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

// FindByID finds an ad by ID
func (r *GormAdRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.Ad, error) {
	var model models.AdModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns ads matching the filter in the requested order
func (r *GormAdRepository) FindAll(ctx context.Context, filter listing.AdFilter) ([]*listing.Ad, error) {
	query := r.db.WithContext(ctx).Model(&models.AdModel{})
	query = applyAdFilter(query, filter)
	query = applyAdSort(query, filter.Sort)

	var adModels []*models.AdModel
	if err := query.Find(&adModels).Error; err != nil {
		return nil, err
	}

	ads := make([]*listing.Ad, len(adModels))
	for i, model := range adModels {
		ads[i] = model.ToDomain()
	}
	return ads, nil
}

// FindByUserID returns all ads owned by userID, newest first
func (r *GormAdRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*listing.Ad, error) {
	var adModels []*models.AdModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&adModels).Error; err != nil {
		return nil, err
	}

	ads := make([]*listing.Ad, len(adModels))
	for i, model := range adModels {
		ads[i] = model.ToDomain()
	}
	return ads, nil
}

// applyAdFilter narrows the ad query. Search and location match as
// case-insensitive substrings, budget bounds use the extracted budget value.
func applyAdFilter(query *gorm.DB, filter listing.AdFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))", pattern, pattern)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}
	if filter.MinBudget != nil {
		query = query.Where("budget_value >= ?", *filter.MinBudget)
	}
	if filter.MaxBudget != nil {
		query = query.Where("budget_value <= ?", *filter.MaxBudget)
	}
	if filter.DatePosted != "" {
		query = applyDateRange(query, filter.DatePosted, time.Now())
	}
	return query
}

// applyDateRange translates a posted-date bucket into created_at bounds
func applyDateRange(query *gorm.DB, bucket listing.DateRange, now time.Time) *gorm.DB {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch bucket {
	case listing.DateRangeToday:
		return query.Where("created_at >= ?", startOfToday)
	case listing.DateRangeYesterday:
		return query.Where("created_at >= ? AND created_at < ?", startOfToday.AddDate(0, 0, -1), startOfToday)
	case listing.DateRangeLast7Days:
		return query.Where("created_at >= ?", now.AddDate(0, 0, -7))
	case listing.DateRangeLast30Days:
		return query.Where("created_at >= ?", now.AddDate(0, 0, -30))
	}
	return query
}

func applyAdSort(query *gorm.DB, sort listing.AdSort) *gorm.DB {
	switch sort {
	case listing.AdSortOldest:
		return query.Order("created_at ASC")
	case listing.AdSortPriceLow:
		return query.Order("budget_value ASC, created_at DESC")
	case listing.AdSortPriceHigh:
		return query.Order("budget_value DESC, created_at DESC")
	default:
		return query.Order("created_at DESC")
	}
}
