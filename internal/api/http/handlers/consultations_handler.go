package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/interior-market/internal/api/dto"
	"github.com/spec-kit/interior-market/internal/auth"
	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/service"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

// ConsultationsHandler manages consultation booking endpoints.
type ConsultationsHandler struct {
	service *service.ConsultationService
}

// NewConsultationsHandler constructs handler.
func NewConsultationsHandler(consultationService *service.ConsultationService) *ConsultationsHandler {
	return &ConsultationsHandler{service: consultationService}
}

// CreateConsultation POST /consultations. The booking is persisted pending
// with no designer assigned.
func (h *ConsultationsHandler) CreateConsultation(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	input, err := parseConsultationRequest(c)
	if err != nil {
		return err
	}
	consultation, err := h.service.Create(c.Context(), principal.User.ID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": consultationResponse(consultation)})
}

// CreateConsultationAutoAssign POST /consultations/new. A random available
// designer is assigned at creation.
func (h *ConsultationsHandler) CreateConsultationAutoAssign(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	input, err := parseConsultationRequest(c)
	if err != nil {
		return err
	}
	consultation, err := h.service.CreateAutoAssign(c.Context(), principal.User.ID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": consultationResponse(consultation)})
}

// MyConsultations GET /consultations/my-consultations.
func (h *ConsultationsHandler) MyConsultations(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	consultations, err := h.service.ListForRequester(c.Context(), principal.User.ID, parseConsultationStatus(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": consultationList(consultations)})
}

// DesignerConsultations GET /consultations/designer-consultations.
func (h *ConsultationsHandler) DesignerConsultations(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	consultations, err := h.service.ListForDesigner(c.Context(), principal.User.ID, parseConsultationStatus(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": consultationList(consultations)})
}

// UpcomingConsultations GET /consultations/upcoming.
func (h *ConsultationsHandler) UpcomingConsultations(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	consultations, err := h.service.ListUpcoming(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": consultationList(consultations)})
}

// GetConsultation GET /consultations/:id.
func (h *ConsultationsHandler) GetConsultation(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	consultation, notes, err := h.service.Get(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": consultationDetail(consultation, notes)})
}

// UpdateConsultation PATCH /consultations/:id.
func (h *ConsultationsHandler) UpdateConsultation(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	consultation, err := h.service.Update(c.Context(), principal.User, c.Params("id"), service.ConsultationUpdateInput{
		ProjectID: req.ProjectID,
		Status:    req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": consultationResponse(consultation)})
}

// UpdateConsultationStatus PATCH /consultations/:id/status.
func (h *ConsultationsHandler) UpdateConsultationStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateConsultationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	consultation, err := h.service.UpdateStatus(c.Context(), principal.User, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": consultationResponse(consultation)})
}

// AddConsultationNote POST /consultations/:id/notes.
func (h *ConsultationsHandler) AddConsultationNote(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateConsultationNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	note, err := h.service.AddNote(c.Context(), principal.User, c.Params("id"), req.Text)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": consultationNoteResponse(note)})
}

func parseConsultationRequest(c *fiber.Ctx) (service.ConsultationCreateInput, error) {
	var req dto.CreateConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ConsultationCreateInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	return service.ConsultationCreateInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		ProjectType:  req.ProjectType,
		PropertyType: req.PropertyType,
		Budget:       req.Budget,
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
		Message:      req.Message,
	}, nil
}

func parseConsultationStatus(c *fiber.Ctx) *domain.ConsultationStatus {
	raw := strings.TrimSpace(c.Query("status"))
	if raw == "" {
		return nil
	}
	status := domain.ConsultationStatus(raw)
	return &status
}

func consultationResponse(consultation *domain.Consultation) dto.ConsultationResponse {
	return dto.ConsultationResponse{
		ID:           consultation.ID,
		RequesterID:  consultation.RequesterID,
		DesignerID:   consultation.DesignerID,
		ProjectID:    consultation.ProjectID,
		Name:         consultation.Name,
		Email:        consultation.Email,
		Phone:        consultation.Phone,
		ProjectType:  consultation.ProjectType,
		PropertyType: consultation.PropertyType,
		Budget:       consultation.Budget,
		Date:         consultation.Date,
		TimeSlot:     consultation.TimeSlot,
		Message:      consultation.Message,
		Status:       consultation.Status,
		CreatedAt:    consultation.CreatedAt,
		UpdatedAt:    consultation.UpdatedAt,
	}
}

func consultationList(consultations []domain.Consultation) []dto.ConsultationResponse {
	items := make([]dto.ConsultationResponse, 0, len(consultations))
	for i := range consultations {
		items = append(items, consultationResponse(&consultations[i]))
	}
	return items
}

func consultationDetail(consultation *domain.Consultation, notes []domain.ConsultationNote) dto.ConsultationDetailResponse {
	noteItems := make([]dto.ConsultationNoteResponse, 0, len(notes))
	for i := range notes {
		noteItems = append(noteItems, consultationNoteResponse(&notes[i]))
	}
	return dto.ConsultationDetailResponse{
		ConsultationResponse: consultationResponse(consultation),
		Notes:                noteItems,
	}
}

func consultationNoteResponse(note *domain.ConsultationNote) dto.ConsultationNoteResponse {
	return dto.ConsultationNoteResponse{
		ID:        note.ID,
		AuthorID:  note.AuthorID,
		Text:      note.Text,
		CreatedAt: note.CreatedAt,
	}
}
