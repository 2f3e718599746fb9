package domain

import "time"

// ConsultationStatus enumerates consultation lifecycle states.
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// ConsultationTimeSlots are the bookable slots for a consultation day.
var ConsultationTimeSlots = []string{
	"08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// Consultation is a scheduled session between a requester and a designer.
type Consultation struct {
	ID           string
	RequesterID  string
	DesignerID   *string
	ProjectID    *string
	Name         string
	Email        string
	Phone        string
	ProjectType  string
	PropertyType string
	Budget       string
	Date         time.Time
	TimeSlot     string
	Message      string
	Status       ConsultationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ConsultationNote is an attributed, timestamped note on a consultation.
type ConsultationNote struct {
	ID             string
	ConsultationID string
	AuthorID       string
	Text           string
	CreatedAt      time.Time
}
