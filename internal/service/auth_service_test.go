package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/interior-market/internal/config"
	"github.com/spec-kit/interior-market/internal/domain"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

func newTestAuthService(users *MockUserRepository) *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            bcrypt.MinCost,
			GoogleClientID:        "google-client",
		},
	}
	return NewAuthService(cfg, users)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users)

	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(&domain.User{
		ID:    "user-1",
		Email: "asha@example.com",
	}, nil)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "s3cret",
	})

	assert.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "BUSINESS_RULE", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterHashesPasswordAndDefaults(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users)

	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(nil, pgx.ErrNoRows)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		user := args.Get(1).(*domain.User)
		user.ID = "user-1"
	}).Return(nil)

	user, token, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.Availability)
	assert.Equal(t, "mid", user.Preferences.PriceRange)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(&domain.User{
		ID:           "user-1",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, _, _, err := svc.Login(context.Background(), "asha@example.com", "wrong")

	assert.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(&domain.User{
		ID:           "user-1",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}, nil)

	user, token, _, err := svc.Login(context.Background(), "asha@example.com", "correct")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.NotEmpty(t, token)
}

func TestGoogleLoginCreatesVerifiedAccount(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users)

	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(nil, pgx.ErrNoRows)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		user := args.Get(1).(*domain.User)
		user.ID = "user-1"
	}).Return(nil)

	user, token, _, err := svc.GoogleLogin(context.Background(), GoogleLoginInput{
		Email: "asha@example.com",
		Name:  "Asha",
		UID:   "google-uid-1",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, user.EmailVerified)
	assert.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-uid-1", *user.GoogleID)
}

func TestGoogleLoginAttachesIDToExistingAccount(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users)

	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(&domain.User{
		ID:    "user-1",
		Email: "asha@example.com",
		Role:  domain.RoleUser,
	}, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, _, _, err := svc.GoogleLogin(context.Background(), GoogleLoginInput{
		Email: "asha@example.com",
		UID:   "google-uid-1",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user.GoogleID)
	assert.True(t, user.EmailVerified)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateProfileDropsUnknownPreferenceValues(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users)

	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{
		ID:   "user-1",
		Name: "Asha",
		Preferences: domain.Preferences{
			Styles:     []string{},
			RoomTypes:  []string{},
			PriceRange: "mid",
		},
	}, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.UpdateProfile(context.Background(), "user-1", ProfileUpdateInput{
		Preferences: &domain.Preferences{
			Styles:    []string{"Modern", "steampunk"},
			RoomTypes: []string{"kitchen"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"modern"}, user.Preferences.Styles)
	assert.Equal(t, []string{"kitchen"}, user.Preferences.RoomTypes)
	assert.Equal(t, "mid", user.Preferences.PriceRange)
}

func TestUpdateProfileRejectsInvalidPriceRange(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users)

	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1"}, nil)

	_, err := svc.UpdateProfile(context.Background(), "user-1", ProfileUpdateInput{
		Preferences: &domain.Preferences{PriceRange: "astronomical"},
	})

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
