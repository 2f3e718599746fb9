package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/events"
	"github.com/spec-kit/interior-market/internal/repository"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

// creationGrace tolerates request latency when validating the booking date.
const creationGrace = time.Minute

const upcomingLimit = 5

// ConsultationService coordinates the consultation lifecycle.
type ConsultationService struct {
	consultations repository.ConsultationRepository
	users         repository.UserRepository
	dispatcher    events.Dispatcher
	now           func() time.Time
	pick          func(n int) int
}

// NewConsultationService constructs the service.
func NewConsultationService(consultations repository.ConsultationRepository, users repository.UserRepository, dispatcher events.Dispatcher) *ConsultationService {
	return &ConsultationService{
		consultations: consultations,
		users:         users,
		dispatcher:    dispatcher,
		now:           time.Now,
		pick:          rand.Intn,
	}
}

// ConsultationCreateInput describes a booking request.
type ConsultationCreateInput struct {
	Name         string
	Email        string
	Phone        string
	ProjectType  string
	PropertyType string
	Budget       string
	Date         time.Time
	TimeSlot     string
	Message      string
}

// ConsultationUpdateInput lists the fields a designer may patch. Anything
// else submitted by the client is dropped before it reaches here.
type ConsultationUpdateInput struct {
	ProjectID *string
	Status    *domain.ConsultationStatus
}

var consultationTransitions = map[domain.ConsultationStatus][]domain.ConsultationStatus{
	domain.ConsultationStatusPending:   {domain.ConsultationStatusConfirmed, domain.ConsultationStatusCancelled},
	domain.ConsultationStatusConfirmed: {domain.ConsultationStatusCompleted, domain.ConsultationStatusCancelled},
	domain.ConsultationStatusCompleted: {},
	domain.ConsultationStatusCancelled: {},
}

func isValidTransition(current, next domain.ConsultationStatus) bool {
	for _, candidate := range consultationTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Create persists a pending consultation without assigning a designer.
func (s *ConsultationService) Create(ctx context.Context, requesterID string, input ConsultationCreateInput) (*domain.Consultation, error) {
	consultation, err := s.buildConsultation(requesterID, input)
	if err != nil {
		return nil, err
	}
	if err := s.consultations.Create(ctx, consultation); err != nil {
		return nil, err
	}
	s.publishCreated(ctx, consultation)
	return consultation, nil
}

// CreateAutoAssign persists a pending consultation assigned to a uniformly
// random available designer. Nothing is persisted when no designer is
// available.
func (s *ConsultationService) CreateAutoAssign(ctx context.Context, requesterID string, input ConsultationCreateInput) (*domain.Consultation, error) {
	consultation, err := s.buildConsultation(requesterID, input)
	if err != nil {
		return nil, err
	}

	designers, err := s.users.ListDesigners(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(designers) == 0 {
		return nil, apperrors.NewBusinessRule("no designers are currently available", nil)
	}
	assignee := designers[s.pick(len(designers))]
	consultation.DesignerID = &assignee.ID

	if err := s.consultations.Create(ctx, consultation); err != nil {
		return nil, err
	}
	s.publishCreated(ctx, consultation)
	return consultation, nil
}

// Get returns a consultation with its notes; only the requester or the
// assigned designer may read it.
func (s *ConsultationService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Consultation, []domain.ConsultationNote, error) {
	consultation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !s.canAccess(actor, consultation) {
		return nil, nil, apperrors.NewForbidden("not authorized to view this consultation")
	}
	notes, err := s.consultations.ListNotes(ctx, consultation.ID)
	if err != nil {
		return nil, nil, err
	}
	return consultation, notes, nil
}

// ListForRequester lists a user's own consultations, soonest first.
func (s *ConsultationService) ListForRequester(ctx context.Context, userID string, status *domain.ConsultationStatus) ([]domain.Consultation, error) {
	return s.consultations.ListWithFilter(ctx, repository.ConsultationFilter{
		RequesterID:  &userID,
		Status:       status,
		OrderDateAsc: true,
	})
}

// ListForDesigner lists consultations assigned to a designer.
func (s *ConsultationService) ListForDesigner(ctx context.Context, designerID string, status *domain.ConsultationStatus) ([]domain.Consultation, error) {
	return s.consultations.ListWithFilter(ctx, repository.ConsultationFilter{
		DesignerID:   &designerID,
		Status:       status,
		OrderDateAsc: true,
	})
}

// ListUpcoming lists the requester's next sessions: not cancelled or
// completed, dated now or later, soonest first, bounded.
func (s *ConsultationService) ListUpcoming(ctx context.Context, userID string) ([]domain.Consultation, error) {
	now := s.now()
	return s.consultations.ListWithFilter(ctx, repository.ConsultationFilter{
		RequesterID: &userID,
		ExcludeStatuses: []domain.ConsultationStatus{
			domain.ConsultationStatusCancelled,
			domain.ConsultationStatusCompleted,
		},
		DateFrom:     &now,
		Limit:        upcomingLimit,
		OrderDateAsc: true,
	})
}

// UpdateStatus moves the consultation through its lifecycle. Only the
// assigned designer or an admin may transition status.
func (s *ConsultationService) UpdateStatus(ctx context.Context, actor *domain.User, id string, next domain.ConsultationStatus) (*domain.Consultation, error) {
	consultation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canTransition(actor, consultation) {
		return nil, apperrors.NewForbidden("not authorized to update this consultation")
	}
	if !isValidTransition(consultation.Status, next) {
		return nil, apperrors.NewBusinessRule("invalid status transition", map[string]any{
			"from": consultation.Status,
			"to":   next,
		})
	}

	oldStatus := consultation.Status
	consultation.Status = next
	if err := s.consultations.Update(ctx, consultation); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventConsultationStatusChanged,
		SubjectID: consultation.ID,
		ActorID:   actor.ID,
		Payload: events.ConsultationStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: next,
		},
	})
	return consultation, nil
}

// Update patches the designer-editable fields (project link, status).
func (s *ConsultationService) Update(ctx context.Context, actor *domain.User, id string, input ConsultationUpdateInput) (*domain.Consultation, error) {
	consultation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canTransition(actor, consultation) {
		return nil, apperrors.NewForbidden("not authorized to update this consultation")
	}

	if input.Status != nil && *input.Status != consultation.Status {
		if !isValidTransition(consultation.Status, *input.Status) {
			return nil, apperrors.NewBusinessRule("invalid status transition", map[string]any{
				"from": consultation.Status,
				"to":   *input.Status,
			})
		}
		consultation.Status = *input.Status
	}
	if input.ProjectID != nil {
		if _, err := uuid.Parse(*input.ProjectID); err != nil {
			return nil, apperrors.NewValidationError("invalid project id", map[string]any{"projectId": *input.ProjectID})
		}
		consultation.ProjectID = input.ProjectID
	}

	if err := s.consultations.Update(ctx, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

// AddNote appends an attributed note; only the requester or the assigned
// designer may write one.
func (s *ConsultationService) AddNote(ctx context.Context, actor *domain.User, id, text string) (*domain.ConsultationNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("note text is required", nil)
	}

	consultation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canAccess(actor, consultation) {
		return nil, apperrors.NewForbidden("not authorized to add notes to this consultation")
	}

	note := &domain.ConsultationNote{
		ConsultationID: consultation.ID,
		AuthorID:       actor.ID,
		Text:           text,
	}
	if err := s.consultations.AddNote(ctx, note); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventConsultationNoteAdded,
		SubjectID: consultation.ID,
		ActorID:   actor.ID,
		Payload: events.ConsultationNoteAddedPayload{
			NoteID:      note.ID,
			AuthorID:    note.AuthorID,
			TextPreview: textPreview(note.Text, 120),
		},
	})
	return note, nil
}

func (s *ConsultationService) buildConsultation(requesterID string, input ConsultationCreateInput) (*domain.Consultation, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" {
		return nil, apperrors.NewValidationError("name and email are required", nil)
	}
	if !domain.Contains(domain.ConsultationTimeSlots, input.TimeSlot) {
		return nil, apperrors.NewValidationError("invalid time slot", map[string]any{"time": input.TimeSlot})
	}
	if !input.Date.After(s.now().Add(creationGrace)) {
		return nil, apperrors.NewValidationError("consultation date must be in the future", map[string]any{"date": input.Date})
	}

	projectType := input.ProjectType
	if projectType == "" {
		projectType = "full"
	}
	propertyType := input.PropertyType
	if propertyType == "" {
		propertyType = "Apartment"
	}

	return &domain.Consultation{
		RequesterID:  requesterID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        strings.TrimSpace(input.Phone),
		ProjectType:  projectType,
		PropertyType: propertyType,
		Budget:       input.Budget,
		Date:         input.Date,
		TimeSlot:     input.TimeSlot,
		Message:      strings.TrimSpace(input.Message),
		Status:       domain.ConsultationStatusPending,
	}, nil
}

func (s *ConsultationService) fetch(ctx context.Context, id string) (*domain.Consultation, error) {
	consultation, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("consultation", map[string]any{"consultation_id": id})
		}
		return nil, err
	}
	return consultation, nil
}

func (s *ConsultationService) canAccess(actor *domain.User, consultation *domain.Consultation) bool {
	if actor == nil {
		return false
	}
	if actor.Role == domain.RoleAdmin {
		return true
	}
	if consultation.RequesterID == actor.ID {
		return true
	}
	return consultation.DesignerID != nil && *consultation.DesignerID == actor.ID
}

func (s *ConsultationService) canTransition(actor *domain.User, consultation *domain.Consultation) bool {
	if actor == nil {
		return false
	}
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return consultation.DesignerID != nil && *consultation.DesignerID == actor.ID
}

func (s *ConsultationService) publishCreated(ctx context.Context, consultation *domain.Consultation) {
	s.publish(ctx, events.Event{
		Type:      events.EventConsultationCreated,
		SubjectID: consultation.ID,
		ActorID:   consultation.RequesterID,
		Payload: events.ConsultationCreatedPayload{
			RequesterID: consultation.RequesterID,
			DesignerID:  consultation.DesignerID,
			Date:        consultation.Date,
			TimeSlot:    consultation.TimeSlot,
		},
	})
}

func (s *ConsultationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func textPreview(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	if max <= 3 {
		return text[:max]
	}
	return text[:max-3] + "..."
}
