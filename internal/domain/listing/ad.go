package listing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jakupie/backend/internal/domain/shared"
)

// AdStatus represents the lifecycle status of an ad
type AdStatus string

const (
	AdStatusActive  AdStatus = "active"
	AdStatusClosed  AdStatus = "closed"
	AdStatusDeleted AdStatus = "deleted"
)

// ValidAdStatus reports whether s is a known ad status
func ValidAdStatus(s string) bool {
	switch AdStatus(s) {
	case AdStatusActive, AdStatusClosed, AdStatusDeleted:
		return true
	}
	return false
}

// Ad is a want-to-buy posting. The owner is the buyer; sellers reply with
// AdResponses. BudgetRange is free text by contract ("500-1000 zł"), never
// a numeric column.
type Ad struct {
	shared.BaseEntity
	Title           string
	Description     string
	BudgetRange     string
	Location        string
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	CategoryFilters string
	Status          AdStatus
}

// NewAd creates a new active ad owned by userID
func NewAd(userID, categoryID uuid.UUID, title, description, budgetRange, location, categoryFilters string) (*Ad, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Ad owner cannot be empty")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY_ID", "Category cannot be empty")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}

	return &Ad{
		BaseEntity:      shared.NewBaseEntity(),
		Title:           title,
		Description:     description,
		BudgetRange:     strings.TrimSpace(budgetRange),
		Location:        strings.TrimSpace(location),
		UserID:          userID,
		CategoryID:      categoryID,
		CategoryFilters: categoryFilters,
		Status:          AdStatusActive,
	}, nil
}

// IsOwnedBy reports whether the ad belongs to userID
func (a *Ad) IsOwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}

// SetTitle updates the ad title
func (a *Ad) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}

	a.Title = title
	a.Touch()

	return nil
}

// SetDescription updates the ad description
func (a *Ad) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}

	a.Description = description
	a.Touch()

	return nil
}

// SetBudgetRange updates the free-text budget range
func (a *Ad) SetBudgetRange(budgetRange string) {
	a.BudgetRange = strings.TrimSpace(budgetRange)
	a.Touch()
}

// SetLocation updates the ad location
func (a *Ad) SetLocation(location string) {
	a.Location = strings.TrimSpace(location)
	a.Touch()
}

// SetCategoryFilters replaces the category-specific filter blob
func (a *Ad) SetCategoryFilters(filters string) {
	a.CategoryFilters = filters
	a.Touch()
}

// SetStatus transitions the ad to the given status. Re-applying the current
// status is a no-op. A deleted ad cannot be brought back.
func (a *Ad) SetStatus(status AdStatus) error {
	if !ValidAdStatus(string(status)) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown ad status")
	}
	if a.Status == status {
		return nil
	}
	if a.Status == AdStatusDeleted {
		return shared.NewDomainError("INVALID_STATE", "Deleted ads cannot change status")
	}

	a.Status = status
	a.Touch()

	return nil
}

// BudgetValue returns the numeric value used for price sorting: the first
// integer substring of BudgetRange, or 0 when none can be parsed.
func (a *Ad) BudgetValue() int {
	return ExtractBudgetValue(a.BudgetRange)
}
