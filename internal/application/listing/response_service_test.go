package listing

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakupie/backend/internal/domain/listing"
	"github.com/jakupie/backend/internal/domain/shared"
)

func TestResponseService_Create(t *testing.T) {
	adRepo := new(MockAdRepository)
	responseRepo := new(MockAdResponseRepository)
	svc := NewResponseService(responseRepo, adRepo, zap.NewNop())

	ad := mustAd(t, uuid.New())
	sellerID := uuid.New()

	adRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)
	responseRepo.On("Create", mock.Anything, mock.AnythingOfType("*listing.AdResponse")).Return(nil)

	price := 800
	dto, err := svc.Create(context.Background(), sellerID, ad.ID, CreateResponseRequest{
		Message: "Mam taki rower",
		Price:   &price,
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", dto.Status)
	assert.Equal(t, sellerID, dto.UserID)
	require.NotNil(t, dto.Price)
	assert.Equal(t, 800, *dto.Price)
	responseRepo.AssertExpectations(t)
}

func TestCreateResponseRequest_NonNumericPrice(t *testing.T) {
	var req CreateResponseRequest

	err := json.Unmarshal([]byte(`{"message":"oferta","price":"800 zł"}`), &req)

	require.Error(t, err)
	assert.Nil(t, req.Price)
}

func TestResponseService_Create_OwnAd(t *testing.T) {
	adRepo := new(MockAdRepository)
	responseRepo := new(MockAdResponseRepository)
	svc := NewResponseService(responseRepo, adRepo, zap.NewNop())

	ownerID := uuid.New()
	ad := mustAd(t, ownerID)

	adRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)

	_, err := svc.Create(context.Background(), ownerID, ad.ID, CreateResponseRequest{Message: "hej"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	responseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResponseService_Create_ClosedAd(t *testing.T) {
	adRepo := new(MockAdRepository)
	svc := NewResponseService(new(MockAdResponseRepository), adRepo, zap.NewNop())

	ad := mustAd(t, uuid.New())
	require.NoError(t, ad.SetStatus(listing.AdStatusClosed))

	adRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)

	_, err := svc.Create(context.Background(), uuid.New(), ad.ID, CreateResponseRequest{Message: "hej"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestResponseService_ListByAd_OwnerOnly(t *testing.T) {
	adRepo := new(MockAdRepository)
	responseRepo := new(MockAdResponseRepository)
	svc := NewResponseService(responseRepo, adRepo, zap.NewNop())

	ownerID := uuid.New()
	ad := mustAd(t, ownerID)

	adRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)

	_, err := svc.ListByAd(context.Background(), uuid.New(), false, ad.ID)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)

	response, err2 := listing.NewAdResponse(ad.ID, uuid.New(), "oferta", nil)
	require.NoError(t, err2)
	responseRepo.On("FindByAdID", mock.Anything, ad.ID).Return([]*listing.AdResponse{response}, nil)

	dtos, err := svc.ListByAd(context.Background(), ownerID, false, ad.ID)
	require.NoError(t, err)
	assert.Len(t, dtos, 1)
}

func TestResponseService_SetStatus(t *testing.T) {
	adRepo := new(MockAdRepository)
	responseRepo := new(MockAdResponseRepository)
	svc := NewResponseService(responseRepo, adRepo, zap.NewNop())

	ownerID := uuid.New()
	ad := mustAd(t, ownerID)
	response, err := listing.NewAdResponse(ad.ID, uuid.New(), "oferta", nil)
	require.NoError(t, err)

	responseRepo.On("FindByID", mock.Anything, response.ID).Return(response, nil)
	adRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)
	responseRepo.On("Update", mock.Anything, response).Return(nil)

	dto, err := svc.SetStatus(context.Background(), ownerID, false, response.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", dto.Status)

	// repeating the same decision stays a no-op
	dto, err = svc.SetStatus(context.Background(), ownerID, false, response.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", dto.Status)

	// flipping a settled decision fails
	_, err = svc.SetStatus(context.Background(), ownerID, false, response.ID, "rejected")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestResponseService_SetStatus_NotOwner(t *testing.T) {
	adRepo := new(MockAdRepository)
	responseRepo := new(MockAdResponseRepository)
	svc := NewResponseService(responseRepo, adRepo, zap.NewNop())

	ad := mustAd(t, uuid.New())
	response, err := listing.NewAdResponse(ad.ID, uuid.New(), "oferta", nil)
	require.NoError(t, err)

	responseRepo.On("FindByID", mock.Anything, response.ID).Return(response, nil)
	adRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)

	_, err = svc.SetStatus(context.Background(), uuid.New(), false, response.ID, "accepted")

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	responseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
