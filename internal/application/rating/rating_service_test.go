package rating

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakupie/backend/internal/domain/identity"
	"github.com/jakupie/backend/internal/domain/listing"
	"github.com/jakupie/backend/internal/domain/rating"
	"github.com/jakupie/backend/internal/domain/shared"
)

// MockRatingRepository is a mock implementation of rating.RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) Update(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRatingRepository) FindByID(ctx context.Context, id uuid.UUID) (*rating.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByRatedUserID(ctx context.Context, ratedUserID uuid.UUID) ([]*rating.Rating, error) {
	args := m.Called(ctx, ratedUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rating.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByRaterID(ctx context.Context, raterID uuid.UUID) ([]*rating.Rating, error) {
	args := m.Called(ctx, raterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rating.Rating), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockAdRepository is a mock implementation of listing.AdRepository
type MockAdRepository struct {
	mock.Mock
}

func (m *MockAdRepository) Create(ctx context.Context, ad *listing.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) Update(ctx context.Context, ad *listing.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.Ad, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Ad), args.Error(1)
}

func (m *MockAdRepository) FindAll(ctx context.Context, filter listing.AdFilter) ([]*listing.Ad, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.Ad), args.Error(1)
}

func (m *MockAdRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*listing.Ad, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.Ad), args.Error(1)
}

// MockStatsCache is a mock implementation of rating.StatsCache
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, userID uuid.UUID) (*rating.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.UserStats), args.Error(1)
}

func (m *MockStatsCache) Set(ctx context.Context, userID uuid.UUID, stats rating.UserStats) error {
	args := m.Called(ctx, userID, stats)
	return args.Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func mustRating(t *testing.T, raterID, ratedUserID uuid.UUID, score int) *rating.Rating {
	t.Helper()
	r, err := rating.NewRating(raterID, ratedUserID, uuid.Nil, score, "", "", rating.RatingTypeSeller)
	require.NoError(t, err)
	return r
}

func mustAd(t *testing.T, userID uuid.UUID) *listing.Ad {
	t.Helper()
	ad, err := listing.NewAd(userID, uuid.New(), "Kupię rower", "Opis", "500 zł", "Warszawa", "")
	require.NoError(t, err)
	return ad
}

func mustUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("sprzedawca", "sprzedawca@example.com", "tajnehaslo", "Jan Kowalski")
	require.NoError(t, err)
	return user
}

func TestRatingService_Create_InvalidatesCache(t *testing.T) {
	repo := new(MockRatingRepository)
	users := new(MockUserRepository)
	cache := new(MockStatsCache)
	svc := NewRatingService(repo, users, new(MockAdRepository), cache, zap.NewNop())

	raterID := uuid.New()
	ratedUserID := uuid.New()

	users.On("FindByID", mock.Anything, ratedUserID).Return(mustUser(t), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*rating.Rating")).Return(nil)
	cache.On("Invalidate", mock.Anything, ratedUserID).Return(nil)

	resp, err := svc.Create(context.Background(), raterID, CreateRatingRequest{
		RatedUserID: ratedUserID,
		Score:       5,
		Comment:     "Super transakcja",
		Type:        "seller",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Score)
	cache.AssertExpectations(t)
}

func TestRatingService_Create_SelfRating(t *testing.T) {
	repo := new(MockRatingRepository)
	users := new(MockUserRepository)
	svc := NewRatingService(repo, users, new(MockAdRepository), new(MockStatsCache), zap.NewNop())

	userID := uuid.New()
	users.On("FindByID", mock.Anything, userID).Return(mustUser(t), nil)

	_, err := svc.Create(context.Background(), userID, CreateRatingRequest{
		RatedUserID: userID,
		Score:       5,
		Type:        "buyer",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRatingService_Create_UnknownRatedUser(t *testing.T) {
	repo := new(MockRatingRepository)
	users := new(MockUserRepository)
	svc := NewRatingService(repo, users, new(MockAdRepository), new(MockStatsCache), zap.NewNop())

	ratedUserID := uuid.New()
	users.On("FindByID", mock.Anything, ratedUserID).Return(nil, shared.ErrNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), CreateRatingRequest{
		RatedUserID: ratedUserID,
		Score:       4,
		Type:        "seller",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRatingService_Create_UnknownAd(t *testing.T) {
	repo := new(MockRatingRepository)
	users := new(MockUserRepository)
	ads := new(MockAdRepository)
	svc := NewRatingService(repo, users, ads, new(MockStatsCache), zap.NewNop())

	ratedUserID := uuid.New()
	adID := uuid.New()

	users.On("FindByID", mock.Anything, ratedUserID).Return(mustUser(t), nil)
	ads.On("FindByID", mock.Anything, adID).Return(nil, shared.ErrNotFound)

	_, err := svc.Create(context.Background(), uuid.New(), CreateRatingRequest{
		RatedUserID: ratedUserID,
		AdID:        &adID,
		Score:       4,
		Type:        "seller",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRatingService_Create_WithAd(t *testing.T) {
	repo := new(MockRatingRepository)
	users := new(MockUserRepository)
	ads := new(MockAdRepository)
	cache := new(MockStatsCache)
	svc := NewRatingService(repo, users, ads, cache, zap.NewNop())

	ratedUserID := uuid.New()
	ad := mustAd(t, ratedUserID)
	adID := ad.ID

	users.On("FindByID", mock.Anything, ratedUserID).Return(mustUser(t), nil)
	ads.On("FindByID", mock.Anything, adID).Return(ad, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*rating.Rating")).Return(nil)
	cache.On("Invalidate", mock.Anything, ratedUserID).Return(nil)

	resp, err := svc.Create(context.Background(), uuid.New(), CreateRatingRequest{
		RatedUserID: ratedUserID,
		AdID:        &adID,
		Score:       5,
		Type:        "seller",
	})

	require.NoError(t, err)
	assert.Equal(t, adID, resp.AdID)
	ads.AssertExpectations(t)
}

func TestRatingService_Update_RaterOnly(t *testing.T) {
	repo := new(MockRatingRepository)
	svc := NewRatingService(repo, new(MockUserRepository), new(MockAdRepository), new(MockStatsCache), zap.NewNop())

	r := mustRating(t, uuid.New(), uuid.New(), 4)
	repo.On("FindByID", mock.Anything, r.ID).Return(r, nil)

	score := 2
	_, err := svc.Update(context.Background(), uuid.New(), r.ID, UpdateRatingRequest{Score: &score})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRatingService_Update(t *testing.T) {
	repo := new(MockRatingRepository)
	cache := new(MockStatsCache)
	svc := NewRatingService(repo, new(MockUserRepository), new(MockAdRepository), cache, zap.NewNop())

	raterID := uuid.New()
	r := mustRating(t, raterID, uuid.New(), 4)

	repo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	repo.On("Update", mock.Anything, r).Return(nil)
	cache.On("Invalidate", mock.Anything, r.RatedUserID).Return(nil)

	score := 2
	resp, err := svc.Update(context.Background(), raterID, r.ID, UpdateRatingRequest{Score: &score})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Score)
	cache.AssertExpectations(t)
}

func TestRatingService_Delete_AdminOverride(t *testing.T) {
	repo := new(MockRatingRepository)
	cache := new(MockStatsCache)
	svc := NewRatingService(repo, new(MockUserRepository), new(MockAdRepository), cache, zap.NewNop())

	r := mustRating(t, uuid.New(), uuid.New(), 1)

	repo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	repo.On("Delete", mock.Anything, r.ID).Return(nil)
	cache.On("Invalidate", mock.Anything, r.RatedUserID).Return(nil)

	err := svc.Delete(context.Background(), uuid.New(), true, r.ID)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRatingService_Stats_CacheMissComputesAndStores(t *testing.T) {
	repo := new(MockRatingRepository)
	cache := new(MockStatsCache)
	svc := NewRatingService(repo, new(MockUserRepository), new(MockAdRepository), cache, zap.NewNop())

	userID := uuid.New()
	ratings := []*rating.Rating{
		mustRating(t, uuid.New(), userID, 5),
		mustRating(t, uuid.New(), userID, 3),
		mustRating(t, uuid.New(), userID, 1),
	}

	cache.On("Get", mock.Anything, userID).Return(nil, nil)
	repo.On("FindByRatedUserID", mock.Anything, userID).Return(ratings, nil)
	cache.On("Set", mock.Anything, userID, mock.AnythingOfType("rating.UserStats")).Return(nil)

	stats, err := svc.Stats(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRatingsReceived)
	assert.Equal(t, 3.0, stats.AverageRating)
	cache.AssertExpectations(t)
}

func TestRatingService_Stats_CacheHitSkipsRepo(t *testing.T) {
	repo := new(MockRatingRepository)
	cache := new(MockStatsCache)
	svc := NewRatingService(repo, new(MockUserRepository), new(MockAdRepository), cache, zap.NewNop())

	userID := uuid.New()
	cached := &rating.UserStats{TotalRatingsReceived: 7, AverageRating: 4.5}

	cache.On("Get", mock.Anything, userID).Return(cached, nil)

	stats, err := svc.Stats(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalRatingsReceived)
	repo.AssertNotCalled(t, "FindByRatedUserID", mock.Anything, mock.Anything)
}
