package listing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakupie/backend/internal/domain/listing"
	"github.com/jakupie/backend/internal/domain/shared"
)

// AdService handles want-to-buy ad operations
type AdService struct {
	adRepo       listing.AdRepository
	responseRepo listing.AdResponseRepository
	categoryRepo listing.CategoryRepository
	logger       *zap.Logger
}

// NewAdService creates a new AdService
func NewAdService(
	adRepo listing.AdRepository,
	responseRepo listing.AdResponseRepository,
	categoryRepo listing.CategoryRepository,
	logger *zap.Logger,
) *AdService {
	return &AdService{
		adRepo:       adRepo,
		responseRepo: responseRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create posts a new ad owned by userID
func (s *AdService) Create(ctx context.Context, userID uuid.UUID, req CreateAdRequest) (*AdResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
	}

	ad, err := listing.NewAd(userID, req.CategoryID, req.Title, req.Description, req.BudgetRange, req.Location, req.CategoryFilters)
	if err != nil {
		return nil, err
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	s.logger.Info("Ad created",
		zap.String("ad_id", ad.ID.String()),
		zap.String("user_id", userID.String()))

	resp := ToAdResponse(ad, 0)
	return &resp, nil
}

// List returns ads matching the filter. Status defaults to active so closed
// and deleted ads only show up when asked for explicitly.
func (s *AdService) List(ctx context.Context, filter AdListFilter) ([]AdResponse, error) {
	domainFilter := listing.AdFilter{
		CategoryID: filter.CategoryID,
		Search:     filter.Search,
		Location:   filter.Location,
		MinBudget:  filter.MinBudget,
		MaxBudget:  filter.MaxBudget,
		DatePosted: listing.DateRange(filter.DatePosted),
		Status:     listing.AdStatus(filter.Status),
		Sort:       listing.AdSort(filter.Sort),
	}
	if domainFilter.Status == "" {
		domainFilter.Status = listing.AdStatusActive
	}
	if domainFilter.Sort == "" {
		domainFilter.Sort = listing.AdSortNewest
	}

	ads, err := s.adRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	return s.toAdResponses(ctx, ads)
}

// ListByUser returns every ad owned by userID regardless of status, except
// deleted ones
func (s *AdService) ListByUser(ctx context.Context, userID uuid.UUID) ([]AdResponse, error) {
	ads, err := s.adRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	visible := make([]*listing.Ad, 0, len(ads))
	for _, ad := range ads {
		if ad.Status != listing.AdStatusDeleted {
			visible = append(visible, ad)
		}
	}

	return s.toAdResponses(ctx, visible)
}

// GetByID returns a single ad. Deleted ads read as not found.
func (s *AdService) GetByID(ctx context.Context, id uuid.UUID) (*AdResponse, error) {
	ad, err := s.adRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad.Status == listing.AdStatusDeleted {
		return nil, shared.ErrNotFound
	}

	count, err := s.responseRepo.CountByAdID(ctx, ad.ID)
	if err != nil {
		return nil, err
	}

	resp := ToAdResponse(ad, int(count))
	return &resp, nil
}

// Update edits an ad. Only the owner or an admin may edit.
func (s *AdService) Update(ctx context.Context, actorID uuid.UUID, actorIsAdmin bool, adID uuid.UUID, req UpdateAdRequest) (*AdResponse, error) {
	ad, err := s.adRepo.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if !ad.IsOwnedBy(actorID) && !actorIsAdmin {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the ad owner can edit it")
	}

	if req.Title != nil {
		if err := ad.SetTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := ad.SetDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.BudgetRange != nil {
		ad.SetBudgetRange(*req.BudgetRange)
	}
	if req.Location != nil {
		ad.SetLocation(*req.Location)
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
		}
		ad.CategoryID = *req.CategoryID
		ad.Touch()
	}
	if req.CategoryFilters != nil {
		ad.SetCategoryFilters(*req.CategoryFilters)
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}

	count, err := s.responseRepo.CountByAdID(ctx, ad.ID)
	if err != nil {
		return nil, err
	}

	resp := ToAdResponse(ad, int(count))
	return &resp, nil
}

// SetStatus transitions an ad between active, closed and deleted. Only the
// owner or an admin may do this.
func (s *AdService) SetStatus(ctx context.Context, actorID uuid.UUID, actorIsAdmin bool, adID uuid.UUID, status string) (*AdResponse, error) {
	ad, err := s.adRepo.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if !ad.IsOwnedBy(actorID) && !actorIsAdmin {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the ad owner can change its status")
	}

	if err := ad.SetStatus(listing.AdStatus(status)); err != nil {
		return nil, err
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}

	s.logger.Info("Ad status changed",
		zap.String("ad_id", ad.ID.String()),
		zap.String("status", status))

	resp := ToAdResponse(ad, 0)
	return &resp, nil
}

// Delete soft-deletes an ad
func (s *AdService) Delete(ctx context.Context, actorID uuid.UUID, actorIsAdmin bool, adID uuid.UUID) error {
	_, err := s.SetStatus(ctx, actorID, actorIsAdmin, adID, string(listing.AdStatusDeleted))
	return err
}

func (s *AdService) toAdResponses(ctx context.Context, ads []*listing.Ad) ([]AdResponse, error) {
	responses := make([]AdResponse, len(ads))
	for i, ad := range ads {
		count, err := s.responseRepo.CountByAdID(ctx, ad.ID)
		if err != nil {
			return nil, err
		}
		responses[i] = ToAdResponse(ad, int(count))
	}
	return responses, nil
}
