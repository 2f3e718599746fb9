package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/interior-market/internal/auth"
	"github.com/spec-kit/interior-market/internal/config"
	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/repository"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

// AuthService coordinates registration, login and profile flows.
type AuthService struct {
	users          repository.UserRepository
	tokenMgr       *auth.TokenManager
	bcryptCost     int
	googleClientID string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:          users,
		tokenMgr:       auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost:     cfg.Auth.BcryptCost,
		googleClientID: cfg.Auth.GoogleClientID,
	}
}

// RegisterInput describes a registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.UserRole
}

// GoogleLoginInput carries the client-verified Google profile.
type GoogleLoginInput struct {
	Email    string
	Name     string
	PhotoURL string
	UID      string
}

// ProfileUpdateInput lists the fields a profile update may touch. Absent
// fields stay untouched; anything outside this set is never accepted.
type ProfileUpdateInput struct {
	Name         *string
	Phone        *string
	Availability *bool
	Preferences  *domain.Preferences
}

// Register creates a new account. The password is hashed here, before the
// persistence call.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("name, email and password are required", nil)
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", time.Time{}, apperrors.NewBusinessRule("email already registered", map[string]any{"email": input.Email})
	} else if err != pgx.ErrNoRows {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Availability: true,
		Preferences: domain.Preferences{
			Styles:     []string{},
			RoomTypes:  []string{},
			PriceRange: "mid",
		},
		VerificationStatus: domain.VerificationPending,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if user.PasswordHash == "" {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// GoogleLogin upserts an account from a client-verified Google profile:
// existing accounts get the Google id attached, new ones are created
// pre-verified.
func (s *AuthService) GoogleLogin(ctx context.Context, input GoogleLoginInput) (*domain.User, string, time.Time, error) {
	if s.googleClientID == "" {
		return nil, "", time.Time{}, apperrors.NewBusinessRule("google login is not configured", nil)
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.UID == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("email and uid are required", nil)
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == pgx.ErrNoRows:
		user = &domain.User{
			Name:          input.Name,
			Email:         input.Email,
			GoogleID:      &input.UID,
			ProfileImage:  input.PhotoURL,
			Role:          domain.RoleUser,
			EmailVerified: true,
			Availability:  true,
			Preferences: domain.Preferences{
				Styles:     []string{},
				RoomTypes:  []string{},
				PriceRange: "mid",
			},
			VerificationStatus: domain.VerificationPending,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, "", time.Time{}, err
		}
	case err != nil:
		return nil, "", time.Time{}, err
	default:
		user.GoogleID = &input.UID
		if input.PhotoURL != "" {
			user.ProfileImage = input.PhotoURL
		}
		user.EmailVerified = true
		if err := s.users.Update(ctx, user); err != nil {
			return nil, "", time.Time{}, err
		}
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// GetProfile loads the account for the given id.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies only the whitelisted fields; preference values are
// normalized against the allowed enums and unknown values are dropped.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Availability != nil {
		user.Availability = *input.Availability
	}
	if input.Preferences != nil {
		if input.Preferences.Styles != nil {
			user.Preferences.Styles = normalizeTags(input.Preferences.Styles, domain.AllowedStyles)
		}
		if input.Preferences.RoomTypes != nil {
			user.Preferences.RoomTypes = normalizeTags(input.Preferences.RoomTypes, domain.AllowedRoomTypes)
		}
		if input.Preferences.PriceRange != "" {
			if !domain.Contains(domain.AllowedPriceRanges, input.Preferences.PriceRange) {
				return nil, apperrors.NewValidationError("invalid price range", map[string]any{"priceRange": input.Preferences.PriceRange})
			}
			user.Preferences.PriceRange = input.Preferences.PriceRange
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func normalizeTags(values, allowed []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.ToLower(strings.TrimSpace(value))
		if domain.Contains(allowed, value) {
			result = append(result, value)
		}
	}
	return result
}
