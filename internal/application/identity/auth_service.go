package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakupie/backend/internal/domain/identity"
	"github.com/jakupie/backend/internal/domain/shared"
	"github.com/jakupie/backend/internal/infrastructure/auth"
)

// AuthService handles registration, login and profile operations
type AuthService struct {
	userRepo    identity.UserRepository
	sessions    *auth.SessionService
	adminEmails map[string]struct{}
	logger      *zap.Logger
}

// NewAuthService creates an auth service. adminEmails is the list of accounts
// granted admin rights, matched case-insensitively.
func NewAuthService(
	userRepo identity.UserRepository,
	sessions *auth.SessionService,
	adminEmails []string,
	logger *zap.Logger,
) *AuthService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			admins[email] = struct{}{}
		}
	}

	return &AuthService{
		userRepo:    userRepo,
		sessions:    sessions,
		adminEmails: admins,
		logger:      logger,
	}
}

// IsAdmin reports whether email belongs to the admin allowlist
func (s *AuthService) IsAdmin(email string) bool {
	_, ok := s.adminEmails[strings.ToLower(email)]
	return ok
}

// Register creates a new account and opens a session for it
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	user, err := identity.NewUser(req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.logger.Error("Failed to open session after registration", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create session")
	}

	s.logger.Info("User registered", zap.String("username", user.Username))

	return &LoginResult{User: ToUserResponse(user, s.IsAdmin(user.Email)), Token: token}, nil
}

// Login verifies credentials and opens a session. Unknown users and wrong
// passwords return the same error code.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		s.logger.Warn("Login attempt for unknown user", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", user.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.logger.Error("Failed to open session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create session")
	}

	s.logger.Info("User logged in", zap.String("username", user.Username))

	return &LoginResult{User: ToUserResponse(user, s.IsAdmin(user.Email)), Token: token}, nil
}

// Logout destroys the session behind token
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// CurrentUser returns the profile of the authenticated user
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := ToUserResponse(user, s.IsAdmin(user.Email))
	return &resp, nil
}

// GetByID returns the public profile of any user
func (s *AuthService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	return s.CurrentUser(ctx, userID)
}

// UpdateProfile updates the authenticated user's editable fields
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if err := user.SetFullName(*req.FullName); err != nil {
			return nil, err
		}
	}
	if req.Avatar != nil {
		if err := user.SetAvatar(*req.Avatar); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user, s.IsAdmin(user.Email))
	return &resp, nil
}
