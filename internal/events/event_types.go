package events

import (
	"time"

	"github.com/spec-kit/interior-market/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventConsultationCreated       EventType = "consultation_created"
	EventConsultationStatusChanged EventType = "consultation_status_changed"
	EventConsultationNoteAdded     EventType = "consultation_note_added"
	EventDesignLiked               EventType = "design_liked"
	EventDesignCommented           EventType = "design_commented"
	EventProjectCreated            EventType = "project_created"
	EventPaymentVerified           EventType = "payment_verified"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ConsultationCreatedPayload payload.
type ConsultationCreatedPayload struct {
	RequesterID string     `json:"requester_id"`
	DesignerID  *string    `json:"designer_id,omitempty"`
	Date        time.Time  `json:"date"`
	TimeSlot    string     `json:"time_slot"`
}

// ConsultationStatusChangedPayload payload.
type ConsultationStatusChangedPayload struct {
	OldStatus domain.ConsultationStatus `json:"old_status"`
	NewStatus domain.ConsultationStatus `json:"new_status"`
}

// ConsultationNoteAddedPayload payload.
type ConsultationNoteAddedPayload struct {
	NoteID      string `json:"note_id"`
	AuthorID    string `json:"author_id"`
	TextPreview string `json:"text_preview"`
}

// DesignLikedPayload payload.
type DesignLikedPayload struct {
	UserID    string `json:"user_id"`
	Liked     bool   `json:"liked"`
	LikeCount int64  `json:"like_count"`
}

// DesignCommentedPayload payload.
type DesignCommentedPayload struct {
	CommentID string `json:"comment_id"`
	UserID    string `json:"user_id"`
}

// ProjectCreatedPayload payload.
type ProjectCreatedPayload struct {
	ClientID   string `json:"client_id"`
	DesignerID string `json:"designer_id"`
}

// PaymentVerifiedPayload payload.
type PaymentVerifiedPayload struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}
