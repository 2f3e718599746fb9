package domain

import "time"

// UserRole enumerates marketplace roles.
type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleDesigner UserRole = "designer"
	RoleAdmin    UserRole = "admin"
)

// VerificationStatus tracks designer vetting.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Preferences captures a user's style and budget preferences.
type Preferences struct {
	Styles     []string `json:"styles"`
	RoomTypes  []string `json:"roomTypes"`
	PriceRange string   `json:"priceRange"`
}

// User is the single account model for clients, designers and admins.
type User struct {
	ID                 string
	Name               string
	Email              string
	PasswordHash       string
	GoogleID           *string
	ProfileImage       string
	Phone              string
	Role               UserRole
	EmailVerified      bool
	Availability       bool
	Preferences        Preferences
	Rating             float64
	CompletedProjects  int
	VerificationStatus VerificationStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AllowedStyles are the style tags accepted in preferences and designs.
var AllowedStyles = []string{"modern", "contemporary", "traditional", "minimalist", "industrial", "indo-modern"}

// AllowedRoomTypes are the room tags accepted in preferences.
var AllowedRoomTypes = []string{"living", "bedroom", "kitchen", "bathroom", "full"}

// AllowedPriceRanges are the budget tiers accepted in preferences and designs.
var AllowedPriceRanges = []string{"budget", "mid", "premium", "luxury"}

// Contains reports whether list holds value.
func Contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
