package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakupie/backend/internal/domain/identity"
	"github.com/jakupie/backend/internal/domain/shared"
	"github.com/jakupie/backend/internal/infrastructure/auth"
)

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

func newTestAuthService(repo *MockUserRepository, adminEmails []string) *AuthService {
	sessions := auth.NewSessionService(auth.NewMemorySessionStore(), time.Hour)
	return NewAuthService(repo, sessions, adminEmails, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo, nil)

	repo.On("ExistsByUsername", mock.Anything, "jan_kowalski").Return(false, nil)
	repo.On("ExistsByEmail", mock.Anything, "jan@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Username: "Jan_Kowalski",
		Email:    "jan@example.com",
		Password: "secret123",
		FullName: "Jan Kowalski",
	})

	require.NoError(t, err)
	assert.Equal(t, "jan_kowalski", result.User.Username)
	assert.NotEmpty(t, result.Token)
	assert.False(t, result.User.IsAdmin)
	repo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo, nil)

	repo.On("ExistsByUsername", mock.Anything, "jan").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "jan",
		Email:    "jan@example.com",
		Password: "secret123",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo, []string{"Admin@Example.com"})

	user, err := identity.NewUser("jan", "admin@example.com", "secret123", "")
	require.NoError(t, err)

	repo.On("FindByUsername", mock.Anything, "jan").Return(user, nil)

	result, err := svc.Login(context.Background(), LoginRequest{Username: "Jan", Password: "secret123"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.True(t, result.User.IsAdmin)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo, nil)

	user, err := identity.NewUser("jan", "jan@example.com", "secret123", "")
	require.NoError(t, err)

	repo.On("FindByUsername", mock.Anything, "jan").Return(user, nil)

	_, err = svc.Login(context.Background(), LoginRequest{Username: "jan", Password: "wrong"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo, nil)

	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo, nil)

	user, err := identity.NewUser("jan", "jan@example.com", "secret123", "Jan")
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Update", mock.Anything, user).Return(nil)

	fullName := "Jan Nowak"
	resp, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{FullName: &fullName})

	require.NoError(t, err)
	assert.Equal(t, "Jan Nowak", resp.FullName)
}

func TestAuthService_IsAdmin(t *testing.T) {
	svc := newTestAuthService(new(MockUserRepository), []string{"admin@jakupie.pl", " Ops@Jakupie.PL "})

	assert.True(t, svc.IsAdmin("admin@jakupie.pl"))
	assert.True(t, svc.IsAdmin("ADMIN@jakupie.pl"))
	assert.True(t, svc.IsAdmin("ops@jakupie.pl"))
	assert.False(t, svc.IsAdmin("user@jakupie.pl"))
}
