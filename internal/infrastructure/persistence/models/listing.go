package models

import (
	"github.com/google/uuid"

	"github.com/jakupie/backend/internal/domain/listing"
)

// CategoryModel is the persistence model for ad categories
type CategoryModel struct {
	BaseModel
	Name      string `gorm:"size:100;not null"`
	Slug      string `gorm:"size:100;not null;uniqueIndex"`
	Icon      string `gorm:"size:100"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for CategoryModel
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts CategoryModel to a domain Category
func (m *CategoryModel) ToDomain() *listing.Category {
	return &listing.Category{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Slug:       m.Slug,
		Icon:       m.Icon,
		SortOrder:  m.SortOrder,
	}
}

// CategoryModelFromDomain converts a domain Category to CategoryModel
func CategoryModelFromDomain(category *listing.Category) *CategoryModel {
	model := &CategoryModel{
		Name:      category.Name,
		Slug:      category.Slug,
		Icon:      category.Icon,
		SortOrder: category.SortOrder,
	}
	model.FromDomainBaseEntity(category.BaseEntity)
	return model
}

// AdModel is the persistence model for want-to-buy ads. BudgetValue holds the
// first integer extracted from BudgetRange so price sorting happens in SQL.
type AdModel struct {
	BaseModel
	Title           string    `gorm:"size:200;not null"`
	Description     string    `gorm:"type:text;not null"`
	BudgetRange     string    `gorm:"size:100"`
	BudgetValue     int       `gorm:"not null;default:0;index"`
	Location        string    `gorm:"size:200;index"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryFilters string    `gorm:"type:text"`
	Status          string    `gorm:"size:20;not null;index"`
}

// TableName returns the table name for AdModel
func (AdModel) TableName() string {
	return "ads"
}

// ToDomain converts AdModel to a domain Ad
func (m *AdModel) ToDomain() *listing.Ad {
	return &listing.Ad{
		BaseEntity:      m.BaseModel.ToDomain(),
		Title:           m.Title,
		Description:     m.Description,
		BudgetRange:     m.BudgetRange,
		Location:        m.Location,
		UserID:          m.UserID,
		CategoryID:      m.CategoryID,
		CategoryFilters: m.CategoryFilters,
		Status:          listing.AdStatus(m.Status),
	}
}

// AdModelFromDomain converts a domain Ad to AdModel
func AdModelFromDomain(ad *listing.Ad) *AdModel {
	model := &AdModel{
		Title:           ad.Title,
		Description:     ad.Description,
		BudgetRange:     ad.BudgetRange,
		BudgetValue:     ad.BudgetValue(),
		Location:        ad.Location,
		UserID:          ad.UserID,
		CategoryID:      ad.CategoryID,
		CategoryFilters: ad.CategoryFilters,
		Status:          string(ad.Status),
	}
	model.FromDomainBaseEntity(ad.BaseEntity)
	return model
}

// AdResponseModel is the persistence model for seller responses
type AdResponseModel struct {
	BaseModel
	AdID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Message string    `gorm:"type:text;not null"`
	Price   *int
	Status  string    `gorm:"size:20;not null;index"`
}

// TableName returns the table name for AdResponseModel
func (AdResponseModel) TableName() string {
	return "ad_responses"
}

// ToDomain converts AdResponseModel to a domain AdResponse
func (m *AdResponseModel) ToDomain() *listing.AdResponse {
	return &listing.AdResponse{
		BaseEntity: m.BaseModel.ToDomain(),
		AdID:       m.AdID,
		UserID:     m.UserID,
		Message:    m.Message,
		Price:      m.Price,
		Status:     listing.ResponseStatus(m.Status),
	}
}

// AdResponseModelFromDomain converts a domain AdResponse to AdResponseModel
func AdResponseModelFromDomain(response *listing.AdResponse) *AdResponseModel {
	model := &AdResponseModel{
		AdID:    response.AdID,
		UserID:  response.UserID,
		Message: response.Message,
		Price:   response.Price,
		Status:  string(response.Status),
	}
	model.FromDomainBaseEntity(response.BaseEntity)
	return model
}
