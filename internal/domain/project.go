package domain

import "time"

// ProjectStatus enumerates execution states of a project.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusReview     ProjectStatus = "review"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// MilestoneStatus tracks a timeline milestone.
type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneCompleted MilestoneStatus = "completed"
	MilestoneDelayed   MilestoneStatus = "delayed"
)

// Milestone is a dated checkpoint inside a project timeline.
type Milestone struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Status      MilestoneStatus `json:"status"`
}

// Timeline bounds project execution.
type Timeline struct {
	StartDate  *time.Time  `json:"startDate,omitempty"`
	EndDate    *time.Time  `json:"endDate,omitempty"`
	Milestones []Milestone `json:"milestones"`
}

// Budget tracks project spend against the agreed total.
type Budget struct {
	Total    float64 `json:"total"`
	Spent    float64 `json:"spent"`
	Currency string  `json:"currency"`
}

// RoomDetails describes the physical room under renovation.
type RoomDetails struct {
	Type          string     `json:"type"`
	Dimensions    Dimensions `json:"dimensions"`
	CurrentPhotos []string   `json:"currentPhotos,omitempty"`
}

// ProjectMaterial is a procurement line item.
type ProjectMaterial struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Cost     float64 `json:"cost,omitempty"`
	Status   string  `json:"status"`
}

// Attachment references an uploaded project document.
type Attachment struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Type       string    `json:"type,omitempty"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Feedback is a client rating left on a project.
type Feedback struct {
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Project is an engagement instantiated from a purchased design or a
// confirmed consultation.
type Project struct {
	ID             string
	Title          string
	Description    string
	ClientID       string
	DesignerID     string
	ConsultationID *string
	DesignIDs      []string
	Status         ProjectStatus
	Timeline       Timeline
	Budget         Budget
	RoomDetails    RoomDetails
	Materials      []ProjectMaterial
	Feedback       []Feedback
	Attachments    []Attachment
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProjectNote is an attributed note on a project.
type ProjectNote struct {
	ID        string
	ProjectID string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}
