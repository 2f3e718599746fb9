package dto

import (
	"time"

	"github.com/spec-kit/interior-market/internal/domain"
)

// CreateProjectRequest payload.
type CreateProjectRequest struct {
	Title          string                   `json:"title"`
	Description    string                   `json:"description"`
	DesignerID     string                   `json:"designerId"`
	ConsultationID *string                  `json:"consultationId,omitempty"`
	DesignIDs      []string                 `json:"designIds"`
	Status         domain.ProjectStatus     `json:"status,omitempty"`
	Timeline       *domain.Timeline         `json:"timeline,omitempty"`
	Budget         *domain.Budget           `json:"budget,omitempty"`
	RoomDetails    domain.RoomDetails       `json:"roomDetails"`
	Materials      []domain.ProjectMaterial `json:"materials,omitempty"`
}

// UpdateProjectRequest patches the whitelisted fields.
type UpdateProjectRequest struct {
	Status    *domain.ProjectStatus    `json:"status"`
	Timeline  *domain.Timeline         `json:"timeline"`
	Budget    *domain.Budget           `json:"budget"`
	Materials []domain.ProjectMaterial `json:"materials"`
}

// CreateProjectNoteRequest payload.
type CreateProjectNoteRequest struct {
	Content string `json:"content"`
}

// ProjectResponse is the full project view.
type ProjectResponse struct {
	ID             string                   `json:"id"`
	Title          string                   `json:"title"`
	Description    string                   `json:"description"`
	ClientID       string                   `json:"clientId"`
	DesignerID     string                   `json:"designerId"`
	ConsultationID *string                  `json:"consultationId"`
	DesignIDs      []string                 `json:"designIds"`
	Status         domain.ProjectStatus     `json:"status"`
	Timeline       domain.Timeline          `json:"timeline"`
	Budget         domain.Budget            `json:"budget"`
	RoomDetails    domain.RoomDetails       `json:"roomDetails"`
	Materials      []domain.ProjectMaterial `json:"materials"`
	Feedback       []domain.Feedback        `json:"feedback"`
	Attachments    []domain.Attachment      `json:"attachments"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// ProjectNoteResponse is an attributed note.
type ProjectNoteResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectDetailResponse bundles a project with its notes.
type ProjectDetailResponse struct {
	ProjectResponse
	Notes []ProjectNoteResponse `json:"notes"`
}
