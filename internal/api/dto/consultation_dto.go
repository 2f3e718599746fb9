package dto

import (
	"time"

	"github.com/spec-kit/interior-market/internal/domain"
)

// CreateConsultationRequest payload.
type CreateConsultationRequest struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ProjectType  string    `json:"projectType"`
	PropertyType string    `json:"propertyType"`
	Budget       string    `json:"budget"`
	Date         time.Time `json:"date"`
	TimeSlot     string    `json:"timeSlot"`
	Message      string    `json:"message"`
}

// UpdateConsultationRequest patches the linkage fields.
type UpdateConsultationRequest struct {
	ProjectID *string                    `json:"projectId"`
	Status    *domain.ConsultationStatus `json:"status"`
}

// UpdateConsultationStatusRequest payload.
type UpdateConsultationStatusRequest struct {
	Status domain.ConsultationStatus `json:"status"`
}

// CreateConsultationNoteRequest payload.
type CreateConsultationNoteRequest struct {
	Text string `json:"text"`
}

// ConsultationResponse is the full consultation view.
type ConsultationResponse struct {
	ID           string                    `json:"id"`
	RequesterID  string                    `json:"requesterId"`
	DesignerID   *string                   `json:"designerId"`
	ProjectID    *string                   `json:"projectId"`
	Name         string                    `json:"name"`
	Email        string                    `json:"email"`
	Phone        string                    `json:"phone,omitempty"`
	ProjectType  string                    `json:"projectType,omitempty"`
	PropertyType string                    `json:"propertyType,omitempty"`
	Budget       string                    `json:"budget,omitempty"`
	Date         time.Time                 `json:"date"`
	TimeSlot     string                    `json:"timeSlot"`
	Message      string                    `json:"message,omitempty"`
	Status       domain.ConsultationStatus `json:"status"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

// ConsultationNoteResponse is an attributed note.
type ConsultationNoteResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ConsultationDetailResponse bundles a consultation with its notes.
type ConsultationDetailResponse struct {
	ConsultationResponse
	Notes []ConsultationNoteResponse `json:"notes"`
}
