package dto

import (
	"time"

	"github.com/spec-kit/interior-market/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest carries the client-verified Google profile.
type GoogleLoginRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	UID      string `json:"uid"`
}

// UpdateProfileRequest payload; absent fields are left untouched.
type UpdateProfileRequest struct {
	Name         *string             `json:"name"`
	Phone        *string             `json:"phone"`
	Availability *bool               `json:"availability"`
	Preferences  *domain.Preferences `json:"preferences"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	ProfileImage       string             `json:"profileImage,omitempty"`
	Phone              string             `json:"phone,omitempty"`
	Role               domain.UserRole    `json:"role"`
	EmailVerified      bool               `json:"emailVerified"`
	Availability       bool               `json:"availability"`
	Preferences        domain.Preferences `json:"preferences"`
	Rating             float64            `json:"rating"`
	CompletedProjects  int                `json:"completedProjects"`
	VerificationStatus string             `json:"verificationStatus"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
