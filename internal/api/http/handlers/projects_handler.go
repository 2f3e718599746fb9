package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/interior-market/internal/api/dto"
	"github.com/spec-kit/interior-market/internal/auth"
	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/service"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

// ProjectsHandler manages project tracking endpoints.
type ProjectsHandler struct {
	service *service.ProjectService
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(projectService *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{service: projectService}
}

// CreateProject POST /projects.
func (h *ProjectsHandler) CreateProject(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	project, err := h.service.Create(c.Context(), service.ProjectCreateInput{
		Title:          req.Title,
		Description:    req.Description,
		ClientID:       principal.User.ID,
		DesignerID:     req.DesignerID,
		ConsultationID: req.ConsultationID,
		DesignIDs:      req.DesignIDs,
		Status:         req.Status,
		Timeline:       req.Timeline,
		Budget:         req.Budget,
		RoomDetails:    req.RoomDetails,
		Materials:      req.Materials,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": projectResponse(project)})
}

// ListProjects GET /projects.
func (h *ProjectsHandler) ListProjects(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	projects, err := h.service.ListForClient(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": projectList(projects)})
}

// ListUserProjects GET /projects/user/:userId.
func (h *ProjectsHandler) ListUserProjects(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	projects, err := h.service.ListForUser(c.Context(), principal.User, c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": projectList(projects)})
}

// GetProject GET /projects/:id.
func (h *ProjectsHandler) GetProject(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	project, notes, err := h.service.Get(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": projectDetail(project, notes)})
}

// UpdateProject PATCH /projects/:id.
func (h *ProjectsHandler) UpdateProject(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	project, err := h.service.Update(c.Context(), principal.User, c.Params("id"), service.ProjectUpdateInput{
		Status:    req.Status,
		Timeline:  req.Timeline,
		Budget:    req.Budget,
		Materials: req.Materials,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": projectResponse(project)})
}

// AddProjectNote POST /projects/:id/notes.
func (h *ProjectsHandler) AddProjectNote(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateProjectNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	note, err := h.service.AddNote(c.Context(), principal.User, c.Params("id"), req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": projectNoteResponse(note)})
}

func projectResponse(project *domain.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:             project.ID,
		Title:          project.Title,
		Description:    project.Description,
		ClientID:       project.ClientID,
		DesignerID:     project.DesignerID,
		ConsultationID: project.ConsultationID,
		DesignIDs:      project.DesignIDs,
		Status:         project.Status,
		Timeline:       project.Timeline,
		Budget:         project.Budget,
		RoomDetails:    project.RoomDetails,
		Materials:      project.Materials,
		Feedback:       project.Feedback,
		Attachments:    project.Attachments,
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
	}
}

func projectList(projects []domain.Project) []dto.ProjectResponse {
	items := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, projectResponse(&projects[i]))
	}
	return items
}

func projectDetail(project *domain.Project, notes []domain.ProjectNote) dto.ProjectDetailResponse {
	noteItems := make([]dto.ProjectNoteResponse, 0, len(notes))
	for i := range notes {
		noteItems = append(noteItems, projectNoteResponse(&notes[i]))
	}
	return dto.ProjectDetailResponse{
		ProjectResponse: projectResponse(project),
		Notes:           noteItems,
	}
}

func projectNoteResponse(note *domain.ProjectNote) dto.ProjectNoteResponse {
	return dto.ProjectNoteResponse{
		ID:        note.ID,
		AuthorID:  note.AuthorID,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
	}
}
