package listing

import (
	"context"

	"github.com/google/uuid"
)

// AdSort enumerates the supported result orderings
type AdSort string

const (
	AdSortNewest    AdSort = "newest"
	AdSortOldest    AdSort = "oldest"
	AdSortPriceLow  AdSort = "price_low"
	AdSortPriceHigh AdSort = "price_high"
)

// ValidAdSort reports whether s is a known sort key
func ValidAdSort(s string) bool {
	switch AdSort(s) {
	case AdSortNewest, AdSortOldest, AdSortPriceLow, AdSortPriceHigh:
		return true
	}
	return false
}

// DateRange enumerates the posted-date filter buckets
type DateRange string

const (
	DateRangeToday      DateRange = "today"
	DateRangeYesterday  DateRange = "yesterday"
	DateRangeLast7Days  DateRange = "last7days"
	DateRangeLast30Days DateRange = "last30days"
)

// ValidDateRange reports whether s is a known date bucket
func ValidDateRange(s string) bool {
	switch DateRange(s) {
	case DateRangeToday, DateRangeYesterday, DateRangeLast7Days, DateRangeLast30Days:
		return true
	}
	return false
}

// AdFilter narrows and orders an ad listing. Zero values mean "no constraint";
// Status defaults to active when empty. Search and Location match as
// case-insensitive substrings.
type AdFilter struct {
	CategoryID *uuid.UUID
	UserID     *uuid.UUID
	Search     string
	Location   string
	MinBudget  *int
	MaxBudget  *int
	DatePosted DateRange
	Status     AdStatus
	Sort       AdSort
}

// AdRepository persists ads
type AdRepository interface {
	Create(ctx context.Context, ad *Ad) error
	Update(ctx context.Context, ad *Ad) error
	FindByID(ctx context.Context, id uuid.UUID) (*Ad, error)
	FindAll(ctx context.Context, filter AdFilter) ([]*Ad, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Ad, error)
}
