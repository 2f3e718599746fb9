package dto

import (
	"time"

	"github.com/spec-kit/interior-market/internal/domain"
)

// CreateDesignRequest payload.
type CreateDesignRequest struct {
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Style          string                  `json:"style"`
	RoomType       string                  `json:"roomType"`
	Images         []domain.DesignImage    `json:"images"`
	Features       []string                `json:"features"`
	Materials      []domain.DesignMaterial `json:"materials"`
	Dimensions     domain.Dimensions       `json:"dimensions"`
	EstimatedCost  domain.CostEstimate     `json:"estimatedCost"`
	Budget         string                  `json:"budget"`
	TimelineWeeks  int                     `json:"timelineWeeks"`
	WarrantyYears  int                     `json:"warrantyYears"`
	Specifications []string                `json:"specifications"`
	Tags           []string                `json:"tags"`
	Status         domain.DesignStatus     `json:"status"`
}

// UpdateDesignRequest patches the whitelisted fields; absent fields stay
// untouched.
type UpdateDesignRequest struct {
	Title         *string                 `json:"title"`
	Description   *string                 `json:"description"`
	Style         *string                 `json:"style"`
	RoomType      *string                 `json:"roomType"`
	Images        []domain.DesignImage    `json:"images"`
	Tags          []string                `json:"tags"`
	Dimensions    *domain.Dimensions      `json:"dimensions"`
	Materials     []domain.DesignMaterial `json:"materials"`
	EstimatedCost *domain.CostEstimate    `json:"estimatedCost"`
	Status        *domain.DesignStatus    `json:"status"`
}

// CreateDesignCommentRequest payload.
type CreateDesignCommentRequest struct {
	Content string `json:"content"`
}

// DesignResponse is the full template view.
type DesignResponse struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	DesignerID     string                  `json:"designerId"`
	Style          string                  `json:"style"`
	RoomType       string                  `json:"roomType"`
	Images         []domain.DesignImage    `json:"images"`
	Features       []string                `json:"features"`
	Materials      []domain.DesignMaterial `json:"materials"`
	Dimensions     domain.Dimensions       `json:"dimensions"`
	EstimatedCost  domain.CostEstimate     `json:"estimatedCost"`
	Budget         string                  `json:"budget"`
	TimelineWeeks  int                     `json:"timelineWeeks"`
	WarrantyYears  int                     `json:"warrantyYears"`
	Specifications []string                `json:"specifications"`
	Tags           []string                `json:"tags"`
	Status         domain.DesignStatus     `json:"status"`
	Views          int64                   `json:"views"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// DesignCommentResponse is one catalog comment.
type DesignCommentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// DesignDetailResponse bundles a template with its comments and like count.
type DesignDetailResponse struct {
	DesignResponse
	Comments  []DesignCommentResponse `json:"comments"`
	LikeCount int64                   `json:"likeCount"`
}

// LikeResponse reports the like toggle outcome.
type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}
