package domain

import "time"

// DesignStatus enumerates design template lifecycle states.
type DesignStatus string

const (
	DesignStatusDraft     DesignStatus = "draft"
	DesignStatusPublished DesignStatus = "published"
	DesignStatusArchived  DesignStatus = "archived"
)

// DesignImage references a rendered image of the template.
type DesignImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// DesignMaterial itemizes a material used by the template.
type DesignMaterial struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	EstimatedCost float64 `json:"estimatedCost,omitempty"`
	Quantity      float64 `json:"quantity,omitempty"`
	Unit          string  `json:"unit,omitempty"`
}

// Dimensions describes the room geometry the template targets.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height,omitempty"`
	Area   float64 `json:"area"`
	Unit   string  `json:"unit"`
}

// CostEstimate is the projected cost of executing the template.
type CostEstimate struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Design is a purchasable interior design template.
type Design struct {
	ID             string
	Title          string
	Description    string
	DesignerID     string
	Style          string
	RoomType       string
	Images         []DesignImage
	Features       []string
	Materials      []DesignMaterial
	Dimensions     Dimensions
	EstimatedCost  CostEstimate
	Budget         string
	TimelineWeeks  int
	WarrantyYears  int
	Specifications []string
	Tags           []string
	Status         DesignStatus
	Views          int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DesignComment is an append-only comment on a design.
type DesignComment struct {
	ID        string
	DesignID  string
	UserID    string
	Content   string
	CreatedAt time.Time
}

// DesignRoomTypes are the room categories a design may target.
var DesignRoomTypes = []string{"living", "bedroom", "kitchen", "bathroom", "office", "pooja", "dining"}
