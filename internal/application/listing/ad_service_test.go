package listing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakupie/backend/internal/domain/listing"
	"github.com/jakupie/backend/internal/domain/shared"
)

func mustAd(t *testing.T, userID uuid.UUID) *listing.Ad {
	t.Helper()
	ad, err := listing.NewAd(userID, uuid.New(), "Kupię rower", "Szukam roweru górskiego", "500-1000 zł", "Warszawa", "")
	require.NoError(t, err)
	return ad
}

func mustCategory(t *testing.T) *listing.Category {
	t.Helper()
	category, err := listing.NewCategory("Sport", "sport", "", 0)
	require.NoError(t, err)
	return category
}

func TestAdService_Create(t *testing.T) {
	adRepo := new(MockAdRepository)
	responseRepo := new(MockAdResponseRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewAdService(adRepo, responseRepo, categoryRepo, zap.NewNop())

	category := mustCategory(t)
	userID := uuid.New()

	categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	adRepo.On("Create", mock.Anything, mock.AnythingOfType("*listing.Ad")).Return(nil)

	resp, err := svc.Create(context.Background(), userID, CreateAdRequest{
		Title:       "Kupię rower",
		Description: "Szukam roweru górskiego",
		BudgetRange: "500-1000 zł",
		Location:    "Warszawa",
		CategoryID:  category.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Kupię rower", resp.Title)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, userID, resp.UserID)
	adRepo.AssertExpectations(t)
}

func TestAdService_Create_UnknownCategory(t *testing.T) {
	adRepo := new(MockAdRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewAdService(adRepo, new(MockAdResponseRepository), categoryRepo, zap.NewNop())

	categoryID := uuid.New()
	categoryRepo.On("FindByID", mock.Anything, categoryID).Return(nil, shared.ErrNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), CreateAdRequest{
		Title:       "Kupię rower",
		Description: "Opis",
		CategoryID:  categoryID,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	adRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdService_List_DefaultsToActive(t *testing.T) {
	adRepo := new(MockAdRepository)
	responseRepo := new(MockAdResponseRepository)
	svc := NewAdService(adRepo, responseRepo, new(MockCategoryRepository), zap.NewNop())

	ad := mustAd(t, uuid.New())

	adRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f listing.AdFilter) bool {
		return f.Status == listing.AdStatusActive && f.Sort == listing.AdSortNewest
	})).Return([]*listing.Ad{ad}, nil)
	responseRepo.On("CountByAdID", mock.Anything, ad.ID).Return(int64(2), nil)

	results, err := svc.List(context.Background(), AdListFilter{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].ResponseCount)
}

func TestAdService_GetByID_DeletedReadsAsNotFound(t *testing.T) {
	adRepo := new(MockAdRepository)
	svc := NewAdService(adRepo, new(MockAdResponseRepository), new(MockCategoryRepository), zap.NewNop())

	ad := mustAd(t, uuid.New())
	require.NoError(t, ad.SetStatus(listing.AdStatusDeleted))

	adRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)

	_, err := svc.GetByID(context.Background(), ad.ID)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestAdService_Update_NotOwner(t *testing.T) {
	adRepo := new(MockAdRepository)
	svc := NewAdService(adRepo, new(MockAdResponseRepository), new(MockCategoryRepository), zap.NewNop())

	ad := mustAd(t, uuid.New())
	adRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)

	title := "Nowy tytuł"
	_, err := svc.Update(context.Background(), uuid.New(), false, ad.ID, UpdateAdRequest{Title: &title})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	adRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdService_Update_AdminOverride(t *testing.T) {
	adRepo := new(MockAdRepository)
	responseRepo := new(MockAdResponseRepository)
	svc := NewAdService(adRepo, responseRepo, new(MockCategoryRepository), zap.NewNop())

	ad := mustAd(t, uuid.New())
	adRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)
	adRepo.On("Update", mock.Anything, ad).Return(nil)
	responseRepo.On("CountByAdID", mock.Anything, ad.ID).Return(int64(0), nil)

	title := "Nowy tytuł"
	resp, err := svc.Update(context.Background(), uuid.New(), true, ad.ID, UpdateAdRequest{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Nowy tytuł", resp.Title)
}

func TestAdService_SetStatus_Owner(t *testing.T) {
	adRepo := new(MockAdRepository)
	svc := NewAdService(adRepo, new(MockAdResponseRepository), new(MockCategoryRepository), zap.NewNop())

	ownerID := uuid.New()
	ad := mustAd(t, ownerID)
	adRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)
	adRepo.On("Update", mock.Anything, ad).Return(nil)

	resp, err := svc.SetStatus(context.Background(), ownerID, false, ad.ID, "closed")

	require.NoError(t, err)
	assert.Equal(t, "closed", resp.Status)
}

func TestAdService_ListByUser_SkipsDeleted(t *testing.T) {
	adRepo := new(MockAdRepository)
	responseRepo := new(MockAdResponseRepository)
	svc := NewAdService(adRepo, responseRepo, new(MockCategoryRepository), zap.NewNop())

	ownerID := uuid.New()
	active := mustAd(t, ownerID)
	deleted := mustAd(t, ownerID)
	require.NoError(t, deleted.SetStatus(listing.AdStatusDeleted))

	adRepo.On("FindByUserID", mock.Anything, ownerID).Return([]*listing.Ad{active, deleted}, nil)
	responseRepo.On("CountByAdID", mock.Anything, active.ID).Return(int64(0), nil)

	results, err := svc.ListByUser(context.Background(), ownerID)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, active.ID, results[0].ID)
}
