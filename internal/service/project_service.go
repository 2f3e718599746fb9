package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/events"
	"github.com/spec-kit/interior-market/internal/repository"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

// ProjectService coordinates project engagements.
type ProjectService struct {
	projects   repository.ProjectRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewProjectService constructs the service.
func NewProjectService(projects repository.ProjectRepository, dispatcher events.Dispatcher) *ProjectService {
	return &ProjectService{projects: projects, dispatcher: dispatcher, now: time.Now}
}

// ProjectCreateInput describes a new engagement.
type ProjectCreateInput struct {
	Title          string
	Description    string
	ClientID       string
	DesignerID     string
	ConsultationID *string
	DesignIDs      []string
	Status         domain.ProjectStatus
	Timeline       *domain.Timeline
	Budget         *domain.Budget
	RoomDetails    domain.RoomDetails
	Materials      []domain.ProjectMaterial
}

// ProjectUpdateInput lists the fields a member may patch.
type ProjectUpdateInput struct {
	Status    *domain.ProjectStatus
	Timeline  *domain.Timeline
	Budget    *domain.Budget
	Materials []domain.ProjectMaterial
}

var projectStatuses = []domain.ProjectStatus{
	domain.ProjectStatusPlanning,
	domain.ProjectStatusInProgress,
	domain.ProjectStatusReview,
	domain.ProjectStatusCompleted,
	domain.ProjectStatusCancelled,
}

func isProjectStatus(status domain.ProjectStatus) bool {
	for _, candidate := range projectStatuses {
		if candidate == status {
			return true
		}
	}
	return false
}

// Create instantiates a project from a purchased design or confirmed
// consultation.
func (s *ProjectService) Create(ctx context.Context, input ProjectCreateInput) (*domain.Project, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || input.Description == "" || input.ClientID == "" || input.DesignerID == "" {
		return nil, apperrors.NewValidationError("title, description, client and designer are required", nil)
	}
	if len(input.DesignIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one design is required", nil)
	}
	if input.RoomDetails.Type == "" {
		return nil, apperrors.NewValidationError("room details are required", nil)
	}

	status := input.Status
	if status == "" {
		status = domain.ProjectStatusPlanning
	}
	if !isProjectStatus(status) {
		return nil, apperrors.NewValidationError("invalid project status", map[string]any{"status": status})
	}

	timeline := domain.Timeline{Milestones: []domain.Milestone{}}
	if input.Timeline != nil {
		timeline = *input.Timeline
		if timeline.Milestones == nil {
			timeline.Milestones = []domain.Milestone{}
		}
	}
	if timeline.StartDate == nil {
		start := s.now()
		timeline.StartDate = &start
	}
	if timeline.EndDate == nil {
		end := timeline.StartDate.Add(30 * 24 * time.Hour)
		timeline.EndDate = &end
	}

	budget := domain.Budget{Currency: "INR"}
	if input.Budget != nil {
		budget = *input.Budget
		if budget.Currency == "" {
			budget.Currency = "INR"
		}
	}

	if input.RoomDetails.Dimensions.Unit == "" {
		input.RoomDetails.Dimensions.Unit = "ft"
	}
	materials := input.Materials
	if materials == nil {
		materials = []domain.ProjectMaterial{}
	}

	project := &domain.Project{
		Title:          input.Title,
		Description:    input.Description,
		ClientID:       input.ClientID,
		DesignerID:     input.DesignerID,
		ConsultationID: input.ConsultationID,
		DesignIDs:      input.DesignIDs,
		Status:         status,
		Timeline:       timeline,
		Budget:         budget,
		RoomDetails:    input.RoomDetails,
		Materials:      materials,
		Feedback:       []domain.Feedback{},
		Attachments:    []domain.Attachment{},
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventProjectCreated,
		SubjectID: project.ID,
		ActorID:   project.ClientID,
		Payload: events.ProjectCreatedPayload{
			ClientID:   project.ClientID,
			DesignerID: project.DesignerID,
		},
	})
	return project, nil
}

// Get returns a project; only its client or assigned designer may read it.
func (s *ProjectService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Project, []domain.ProjectNote, error) {
	project, err := s.fetch(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !s.isMember(actor, project) {
		return nil, nil, apperrors.NewForbidden("access denied")
	}
	notes, err := s.projects.ListNotes(ctx, project.ID)
	if err != nil {
		return nil, nil, err
	}
	return project, notes, nil
}

// ListForClient lists the caller's projects as a client.
func (s *ProjectService) ListForClient(ctx context.Context, clientID string) ([]domain.Project, error) {
	return s.projects.ListByClient(ctx, clientID)
}

// ListForUser lists projects where the user is client or designer. Callers
// may only list their own unless privileged.
func (s *ProjectService) ListForUser(ctx context.Context, actor *domain.User, userID string) ([]domain.Project, error) {
	if actor.ID != userID && actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("access denied")
	}
	return s.projects.ListByMember(ctx, userID)
}

// Update patches the whitelisted fields; only a project member may do it.
func (s *ProjectService) Update(ctx context.Context, actor *domain.User, id string, input ProjectUpdateInput) (*domain.Project, error) {
	project, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.isMember(actor, project) {
		return nil, apperrors.NewForbidden("access denied")
	}

	if input.Status != nil {
		if !isProjectStatus(*input.Status) {
			return nil, apperrors.NewValidationError("invalid project status", map[string]any{"status": *input.Status})
		}
		project.Status = *input.Status
	}
	if input.Timeline != nil {
		project.Timeline = *input.Timeline
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
	}
	if input.Materials != nil {
		project.Materials = input.Materials
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// AddNote appends an attributed note; only a project member may write one.
func (s *ProjectService) AddNote(ctx context.Context, actor *domain.User, id, content string) (*domain.ProjectNote, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("note content is required", nil)
	}

	project, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.isMember(actor, project) {
		return nil, apperrors.NewForbidden("access denied")
	}

	note := &domain.ProjectNote{
		ProjectID: project.ID,
		AuthorID:  actor.ID,
		Content:   content,
	}
	if err := s.projects.AddNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *ProjectService) fetch(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("project", map[string]any{"project_id": id})
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) isMember(actor *domain.User, project *domain.Project) bool {
	if actor == nil {
		return false
	}
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return project.ClientID == actor.ID || project.DesignerID == actor.ID
}

func (s *ProjectService) publish(ctx context.Context, event events.Event) {
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
