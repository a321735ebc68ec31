package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/greenhub/backend/internal/domain/identity"
	"github.com/greenhub/backend/internal/domain/shared"
	"github.com/greenhub/backend/internal/infrastructure/auth"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so a caller cannot probe which addresses have accounts.
var ErrInvalidCredentials = shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")

// AuthService handles local account signup and login
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Signup registers a customer account
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	u, err := identity.NewUser(email, req.Password, req.FullName, identity.RoleCustomer)
	if err != nil {
		return nil, err
	}
	u.PhoneNumber = req.Phone

	if err := s.userRepo.Save(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("account created", zap.String("user_id", u.ID.String()))

	resp := ToUserResponse(u)
	return &resp, nil
}

// Login authenticates an account and issues a signed token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, shared.NewDomainError("FORBIDDEN", "This account has been deactivated")
	}

	token, expiresAt, err := s.jwtService.Generate(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}

	s.logger.Info("login", zap.String("user_id", u.ID.String()), zap.String("role", string(u.Role)))

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(u),
	}, nil
}

// Get returns one account by id
func (s *AuthService) Get(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(u)
	return &resp, nil
}
