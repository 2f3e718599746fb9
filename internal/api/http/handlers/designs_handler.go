package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/interior-market/internal/api/dto"
	"github.com/spec-kit/interior-market/internal/auth"
	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/service"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

// DesignsHandler manages design catalog endpoints.
type DesignsHandler struct {
	service *service.DesignService
}

// NewDesignsHandler constructs handler.
func NewDesignsHandler(designService *service.DesignService) *DesignsHandler {
	return &DesignsHandler{service: designService}
}

// CreateDesign POST /designs.
func (h *DesignsHandler) CreateDesign(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateDesignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	design, err := h.service.Create(c.Context(), principal.User, service.DesignCreateInput{
		Title:          req.Title,
		Description:    req.Description,
		Style:          req.Style,
		RoomType:       req.RoomType,
		Images:         req.Images,
		Features:       req.Features,
		Materials:      req.Materials,
		Dimensions:     req.Dimensions,
		EstimatedCost:  req.EstimatedCost,
		Budget:         req.Budget,
		TimelineWeeks:  req.TimelineWeeks,
		WarrantyYears:  req.WarrantyYears,
		Specifications: req.Specifications,
		Tags:           req.Tags,
		Status:         req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": designResponse(design)})
}

// ListDesigns GET /designs.
func (h *DesignsHandler) ListDesigns(c *fiber.Ctx) error {
	designs, err := h.service.List(c.Context(), parseDesignQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": designList(designs)})
}

// GetDesign GET /designs/:id.
func (h *DesignsHandler) GetDesign(c *fiber.Ctx) error {
	design, comments, likeCount, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": designDetail(design, comments, likeCount)})
}

// ListDesignerDesigns GET /designs/user/:userId.
func (h *DesignsHandler) ListDesignerDesigns(c *fiber.Ctx) error {
	designs, err := h.service.ListByDesigner(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": designList(designs)})
}

// UpdateDesign PATCH /designs/:id.
func (h *DesignsHandler) UpdateDesign(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateDesignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	design, err := h.service.Update(c.Context(), principal.User, c.Params("id"), service.DesignUpdateInput{
		Title:         req.Title,
		Description:   req.Description,
		Style:         req.Style,
		RoomType:      req.RoomType,
		Images:        req.Images,
		Tags:          req.Tags,
		Dimensions:    req.Dimensions,
		Materials:     req.Materials,
		EstimatedCost: req.EstimatedCost,
		Status:        req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": designResponse(design)})
}

// DeleteDesign DELETE /designs/:id. Designs are archived, never removed.
func (h *DesignsHandler) DeleteDesign(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	design, err := h.service.Archive(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": designResponse(design)})
}

// LikeDesign POST /designs/:id/like.
func (h *DesignsHandler) LikeDesign(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	result, err := h.service.ToggleLike(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LikeResponse{Liked: result.Liked, LikeCount: result.LikeCount}})
}

// AddDesignComment POST /designs/:id/comments.
func (h *DesignsHandler) AddDesignComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateDesignCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	comments, err := h.service.AddComment(c.Context(), principal.User, c.Params("id"), req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": designCommentList(comments)})
}

func parseDesignQuery(c *fiber.Ctx) service.DesignListInput {
	input := service.DesignListInput{}
	if style := c.Query("style"); style != "" {
		input.Style = &style
	}
	if roomType := c.Query("roomType"); roomType != "" {
		input.RoomType = &roomType
	}
	if budget := c.Query("budget"); budget != "" {
		input.Budget = &budget
	}
	if designer := c.Query("designer"); designer != "" {
		input.Designer = &designer
	}
	if tagsStr := c.Query("tags"); tagsStr != "" {
		for _, part := range strings.Split(tagsStr, ",") {
			if part = strings.TrimSpace(part); part != "" {
				input.Tags = append(input.Tags, part)
			}
		}
	}
	if status := c.Query("status"); status != "" {
		parsed := domain.DesignStatus(status)
		input.Status = &parsed
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			input.Limit = limit
		}
	}
	return input
}

func designResponse(design *domain.Design) dto.DesignResponse {
	return dto.DesignResponse{
		ID:             design.ID,
		Title:          design.Title,
		Description:    design.Description,
		DesignerID:     design.DesignerID,
		Style:          design.Style,
		RoomType:       design.RoomType,
		Images:         design.Images,
		Features:       design.Features,
		Materials:      design.Materials,
		Dimensions:     design.Dimensions,
		EstimatedCost:  design.EstimatedCost,
		Budget:         design.Budget,
		TimelineWeeks:  design.TimelineWeeks,
		WarrantyYears:  design.WarrantyYears,
		Specifications: design.Specifications,
		Tags:           design.Tags,
		Status:         design.Status,
		Views:          design.Views,
		CreatedAt:      design.CreatedAt,
		UpdatedAt:      design.UpdatedAt,
	}
}

func designList(designs []domain.Design) []dto.DesignResponse {
	items := make([]dto.DesignResponse, 0, len(designs))
	for i := range designs {
		items = append(items, designResponse(&designs[i]))
	}
	return items
}

func designDetail(design *domain.Design, comments []domain.DesignComment, likeCount int64) dto.DesignDetailResponse {
	return dto.DesignDetailResponse{
		DesignResponse: designResponse(design),
		Comments:       designCommentList(comments),
		LikeCount:      likeCount,
	}
}

func designCommentList(comments []domain.DesignComment) []dto.DesignCommentResponse {
	items := make([]dto.DesignCommentResponse, 0, len(comments))
	for _, comment := range comments {
		items = append(items, dto.DesignCommentResponse{
			ID:        comment.ID,
			UserID:    comment.UserID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		})
	}
	return items
}
