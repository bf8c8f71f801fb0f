package listing

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jakupie/backend/internal/domain/listing"
)

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

// MockAdResponseRepository is a mock implementation of listing.AdResponseRepository
type MockAdResponseRepository struct {
	mock.Mock
}

func (m *MockAdResponseRepository) Create(ctx context.Context, response *listing.AdResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockAdResponseRepository) Update(ctx context.Context, response *listing.AdResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockAdResponseRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.AdResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.AdResponse), args.Error(1)
}

func (m *MockAdResponseRepository) FindByAdID(ctx context.Context, adID uuid.UUID) ([]*listing.AdResponse, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.AdResponse), args.Error(1)
}

func (m *MockAdResponseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*listing.AdResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.AdResponse), args.Error(1)
}

func (m *MockAdResponseRepository) CountByAdID(ctx context.Context, adID uuid.UUID) (int64, error) {
	args := m.Called(ctx, adID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository is a mock implementation of listing.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *listing.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*listing.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]*listing.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}
