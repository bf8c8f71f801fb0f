package listing

import (
	"time"

	"github.com/google/uuid"

	"github.com/jakupie/backend/internal/domain/listing"
)

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Slug      string `json:"slug" binding:"required,min=1,max=100,slug"`
	Icon      string `json:"icon" binding:"max=100"`
	SortOrder int    `json:"sortOrder"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Icon      string    `json:"icon"`
	SortOrder int       `json:"sortOrder"`
}

// ToCategoryResponse converts a domain category to its API shape
func ToCategoryResponse(c *listing.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Icon:      c.Icon,
		SortOrder: c.SortOrder,
	}
}

// ToCategoryResponses converts a slice of categories
func ToCategoryResponses(categories []*listing.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c)
	}
	return responses
}

// CreateAdRequest represents a request to post an ad
type CreateAdRequest struct {
	Title           string    `json:"title" binding:"required,min=1,max=200"`
	Description     string    `json:"description" binding:"required,min=1"`
	BudgetRange     string    `json:"budgetRange" binding:"max=100"`
	Location        string    `json:"location" binding:"max=200"`
	CategoryID      uuid.UUID `json:"categoryId" binding:"required"`
	CategoryFilters string    `json:"categoryFilters"`
}

// UpdateAdRequest represents an ad update. Nil fields are untouched.
type UpdateAdRequest struct {
	Title           *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description     *string    `json:"description" binding:"omitempty,min=1"`
	BudgetRange     *string    `json:"budgetRange" binding:"omitempty,max=100"`
	Location        *string    `json:"location" binding:"omitempty,max=200"`
	CategoryID      *uuid.UUID `json:"categoryId"`
	CategoryFilters *string    `json:"categoryFilters"`
}

// UpdateAdStatusRequest represents an ad status change
type UpdateAdStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active closed deleted"`
}

// AdListFilter represents the query parameters of the ad listing endpoint
type AdListFilter struct {
	CategoryID *uuid.UUID `form:"category"`
	Search     string     `form:"search"`
	Location   string     `form:"location"`
	MinBudget  *int       `form:"minBudget"`
	MaxBudget  *int       `form:"maxBudget"`
	DatePosted string     `form:"datePosted" binding:"omitempty,oneof=today yesterday last7days last30days"`
	Status     string     `form:"status" binding:"omitempty,oneof=active closed deleted"`
	Sort       string     `form:"sort" binding:"omitempty,oneof=newest oldest price_low price_high"`
}

// AdResponse represents an ad in API responses
type AdResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	BudgetRange     string    `json:"budgetRange"`
	Location        string    `json:"location"`
	UserID          uuid.UUID `json:"userId"`
	CategoryID      uuid.UUID `json:"categoryId"`
	CategoryFilters string    `json:"categoryFilters,omitempty"`
	Status          string    `json:"status"`
	ResponseCount   int       `json:"responseCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToAdResponse converts a domain ad to its API shape
func ToAdResponse(ad *listing.Ad, responseCount int) AdResponse {
	return AdResponse{
		ID:              ad.ID,
		Title:           ad.Title,
		Description:     ad.Description,
		BudgetRange:     ad.BudgetRange,
		Location:        ad.Location,
		UserID:          ad.UserID,
		CategoryID:      ad.CategoryID,
		CategoryFilters: ad.CategoryFilters,
		Status:          string(ad.Status),
		ResponseCount:   responseCount,
		CreatedAt:       ad.CreatedAt,
		UpdatedAt:       ad.UpdatedAt,
	}
}

// CreateResponseRequest represents a seller's offer on an ad. A price that is
// not a JSON number is rejected at binding time rather than coerced.
type CreateResponseRequest struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
	Price   *int   `json:"price" binding:"omitempty,min=0"`
}

// UpdateResponseStatusRequest represents an accept or reject decision
type UpdateResponseStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// ResponseDTO represents a seller response in API responses
type ResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	AdID      uuid.UUID `json:"adId"`
	UserID    uuid.UUID `json:"userId"`
	Message   string    `json:"message"`
	Price     *int      `json:"price,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToResponseDTO converts a domain response to its API shape
func ToResponseDTO(r *listing.AdResponse) ResponseDTO {
	return ResponseDTO{
		ID:        r.ID,
		AdID:      r.AdID,
		UserID:    r.UserID,
		Message:   r.Message,
		Price:     r.Price,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// ToResponseDTOs converts a slice of responses
func ToResponseDTOs(responses []*listing.AdResponse) []ResponseDTO {
	dtos := make([]ResponseDTO, len(responses))
	for i, r := range responses {
		dtos[i] = ToResponseDTO(r)
	}
	return dtos
}
