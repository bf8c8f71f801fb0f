package listing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakupie/backend/internal/domain/listing"
	"github.com/jakupie/backend/internal/domain/shared"
)

// ResponseService handles seller responses to ads
type ResponseService struct {
	responseRepo listing.AdResponseRepository
	adRepo       listing.AdRepository
	logger       *zap.Logger
}

// NewResponseService creates a new ResponseService
func NewResponseService(
	responseRepo listing.AdResponseRepository,
	adRepo listing.AdRepository,
	logger *zap.Logger,
) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		adRepo:       adRepo,
		logger:       logger,
	}
}

// Create posts a seller's offer on an ad. Owners cannot respond to their own
// ads, and only active ads take responses.
func (s *ResponseService) Create(ctx context.Context, userID, adID uuid.UUID, req CreateResponseRequest) (*ResponseDTO, error) {
	ad, err := s.adRepo.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if ad.Status != listing.AdStatusActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Ad is no longer accepting responses")
	}
	if ad.IsOwnedBy(userID) {
		return nil, shared.NewDomainError("INVALID_STATE", "You cannot respond to your own ad")
	}

	response, err := listing.NewAdResponse(adID, userID, req.Message, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}

	s.logger.Info("Response created",
		zap.String("response_id", response.ID.String()),
		zap.String("ad_id", adID.String()))

	dto := ToResponseDTO(response)
	return &dto, nil
}

// ListByAd returns the responses on an ad. Only the ad owner or an admin may
// see them.
func (s *ResponseService) ListByAd(ctx context.Context, actorID uuid.UUID, actorIsAdmin bool, adID uuid.UUID) ([]ResponseDTO, error) {
	ad, err := s.adRepo.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if !ad.IsOwnedBy(actorID) && !actorIsAdmin {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the ad owner can view its responses")
	}

	responses, err := s.responseRepo.FindByAdID(ctx, adID)
	if err != nil {
		return nil, err
	}

	return ToResponseDTOs(responses), nil
}

// ListByUser returns the responses a seller has made across all ads
func (s *ResponseService) ListByUser(ctx context.Context, userID uuid.UUID) ([]ResponseDTO, error) {
	responses, err := s.responseRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ToResponseDTOs(responses), nil
}

// SetStatus accepts or rejects a response. Only the owner of the ad the
// response belongs to may decide. Repeating a decision is a no-op.
func (s *ResponseService) SetStatus(ctx context.Context, actorID uuid.UUID, actorIsAdmin bool, responseID uuid.UUID, status string) (*ResponseDTO, error) {
	response, err := s.responseRepo.FindByID(ctx, responseID)
	if err != nil {
		return nil, err
	}

	ad, err := s.adRepo.FindByID(ctx, response.AdID)
	if err != nil {
		return nil, err
	}
	if !ad.IsOwnedBy(actorID) && !actorIsAdmin {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the ad owner can accept or reject responses")
	}

	if err := response.SetStatus(listing.ResponseStatus(status)); err != nil {
		return nil, err
	}

	if err := s.responseRepo.Update(ctx, response); err != nil {
		return nil, err
	}

	s.logger.Info("Response status changed",
		zap.String("response_id", response.ID.String()),
		zap.String("status", string(response.Status)))

	dto := ToResponseDTO(response)
	return &dto, nil
}
