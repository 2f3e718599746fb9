package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/events"
	"github.com/spec-kit/interior-market/internal/repository"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

// DesignService coordinates the design template catalog.
type DesignService struct {
	designs    repository.DesignRepository
	dispatcher events.Dispatcher
}

// NewDesignService constructs the service.
func NewDesignService(designs repository.DesignRepository, dispatcher events.Dispatcher) *DesignService {
	return &DesignService{designs: designs, dispatcher: dispatcher}
}

// DesignCreateInput describes a new template.
type DesignCreateInput struct {
	Title          string
	Description    string
	Style          string
	RoomType       string
	Images         []domain.DesignImage
	Features       []string
	Materials      []domain.DesignMaterial
	Dimensions     domain.Dimensions
	EstimatedCost  domain.CostEstimate
	Budget         string
	TimelineWeeks  int
	WarrantyYears  int
	Specifications []string
	Tags           []string
	Status         domain.DesignStatus
}

// DesignUpdateInput lists the fields an owner may patch; absent fields stay
// untouched and anything else submitted is dropped before it reaches here.
type DesignUpdateInput struct {
	Title         *string
	Description   *string
	Style         *string
	RoomType      *string
	Images        []domain.DesignImage
	Tags          []string
	Dimensions    *domain.Dimensions
	Materials     []domain.DesignMaterial
	EstimatedCost *domain.CostEstimate
	Status        *domain.DesignStatus
}

// DesignListInput captures catalog filters.
type DesignListInput struct {
	Style    *string
	RoomType *string
	Budget   *string
	Designer *string
	Tags     []string
	Status   *domain.DesignStatus
	Limit    int
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Liked     bool
	LikeCount int64
}

// Create publishes a new template owned by the calling designer.
func (s *DesignService) Create(ctx context.Context, designer *domain.User, input DesignCreateInput) (*domain.Design, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" {
		return nil, apperrors.NewValidationError("title and description are required", nil)
	}
	if !domain.Contains(domain.AllowedStyles, input.Style) {
		return nil, apperrors.NewValidationError("invalid style", map[string]any{"style": input.Style})
	}
	if !domain.Contains(domain.DesignRoomTypes, input.RoomType) {
		return nil, apperrors.NewValidationError("invalid room type", map[string]any{"roomType": input.RoomType})
	}
	if !domain.Contains(domain.AllowedPriceRanges, input.Budget) {
		return nil, apperrors.NewValidationError("invalid budget tier", map[string]any{"budget": input.Budget})
	}

	status := input.Status
	if status == "" {
		status = domain.DesignStatusPublished
	}
	if input.EstimatedCost.Currency == "" {
		input.EstimatedCost.Currency = "INR"
	}
	if input.Dimensions.Unit == "" {
		input.Dimensions.Unit = "ft"
	}
	if input.TimelineWeeks <= 0 {
		input.TimelineWeeks = 4
	}
	if input.WarrantyYears < 0 {
		input.WarrantyYears = 1
	}

	design := &domain.Design{
		Title:          input.Title,
		Description:    input.Description,
		DesignerID:     designer.ID,
		Style:          input.Style,
		RoomType:       input.RoomType,
		Images:         input.Images,
		Features:       input.Features,
		Materials:      input.Materials,
		Dimensions:     input.Dimensions,
		EstimatedCost:  input.EstimatedCost,
		Budget:         input.Budget,
		TimelineWeeks:  input.TimelineWeeks,
		WarrantyYears:  input.WarrantyYears,
		Specifications: input.Specifications,
		Tags:           input.Tags,
		Status:         status,
	}
	if err := s.designs.Create(ctx, design); err != nil {
		return nil, err
	}
	return design, nil
}

// Get returns a template by id and counts the view.
func (s *DesignService) Get(ctx context.Context, id string) (*domain.Design, []domain.DesignComment, int64, error) {
	design, err := s.fetch(ctx, id)
	if err != nil {
		return nil, nil, 0, err
	}
	comments, err := s.designs.ListComments(ctx, design.ID)
	if err != nil {
		return nil, nil, 0, err
	}
	likeCount, err := s.designs.CountLikes(ctx, design.ID)
	if err != nil {
		return nil, nil, 0, err
	}
	_ = s.designs.IncrementViews(ctx, design.ID)
	return design, comments, likeCount, nil
}

// List browses the catalog; status defaults to published.
func (s *DesignService) List(ctx context.Context, input DesignListInput) ([]domain.Design, error) {
	status := input.Status
	if status == nil {
		published := domain.DesignStatusPublished
		status = &published
	}
	return s.designs.ListWithFilter(ctx, repository.DesignFilter{
		Style:      input.Style,
		RoomType:   input.RoomType,
		Budget:     input.Budget,
		DesignerID: input.Designer,
		Tags:       input.Tags,
		Status:     status,
		Limit:      input.Limit,
	})
}

// ListByDesigner lists a designer's non-archived templates.
func (s *DesignService) ListByDesigner(ctx context.Context, designerID string) ([]domain.Design, error) {
	return s.designs.ListWithFilter(ctx, repository.DesignFilter{
		DesignerID:      &designerID,
		ExcludeArchived: true,
	})
}

// Update patches the whitelisted fields; only the owning designer may do it.
func (s *DesignService) Update(ctx context.Context, actor *domain.User, id string, input DesignUpdateInput) (*domain.Design, error) {
	design, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if design.DesignerID != actor.ID {
		return nil, apperrors.NewForbidden("not authorized to update this design")
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		design.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		design.Description = strings.TrimSpace(*input.Description)
	}
	if input.Style != nil {
		if !domain.Contains(domain.AllowedStyles, *input.Style) {
			return nil, apperrors.NewValidationError("invalid style", map[string]any{"style": *input.Style})
		}
		design.Style = *input.Style
	}
	if input.RoomType != nil {
		if !domain.Contains(domain.DesignRoomTypes, *input.RoomType) {
			return nil, apperrors.NewValidationError("invalid room type", map[string]any{"roomType": *input.RoomType})
		}
		design.RoomType = *input.RoomType
	}
	if input.Images != nil {
		design.Images = input.Images
	}
	if input.Tags != nil {
		design.Tags = input.Tags
	}
	if input.Dimensions != nil {
		design.Dimensions = *input.Dimensions
	}
	if input.Materials != nil {
		design.Materials = input.Materials
	}
	if input.EstimatedCost != nil {
		design.EstimatedCost = *input.EstimatedCost
	}
	if input.Status != nil {
		design.Status = *input.Status
	}

	if err := s.designs.Update(ctx, design); err != nil {
		return nil, err
	}
	return design, nil
}

// Archive soft-deletes a template; only the owning designer may do it.
func (s *DesignService) Archive(ctx context.Context, actor *domain.User, id string) (*domain.Design, error) {
	design, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if design.DesignerID != actor.ID {
		return nil, apperrors.NewForbidden("not authorized to delete this design")
	}

	design.Status = domain.DesignStatusArchived
	if err := s.designs.Update(ctx, design); err != nil {
		return nil, err
	}
	return design, nil
}

// ToggleLike flips the caller's membership in the like set. Both directions
// are idempotent at the store.
func (s *DesignService) ToggleLike(ctx context.Context, actor *domain.User, id string) (*LikeResult, error) {
	design, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	liked, err := s.designs.HasLiked(ctx, design.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	if liked {
		if _, err := s.designs.RemoveLike(ctx, design.ID, actor.ID); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.designs.AddLike(ctx, design.ID, actor.ID); err != nil {
			return nil, err
		}
	}

	count, err := s.designs.CountLikes(ctx, design.ID)
	if err != nil {
		return nil, err
	}
	result := &LikeResult{Liked: !liked, LikeCount: count}
	s.publish(ctx, events.Event{
		Type:      events.EventDesignLiked,
		SubjectID: design.ID,
		ActorID:   actor.ID,
		Payload: events.DesignLikedPayload{
			UserID:    actor.ID,
			Liked:     result.Liked,
			LikeCount: result.LikeCount,
		},
	})
	return result, nil
}

// AddComment appends a comment to a template.
func (s *DesignService) AddComment(ctx context.Context, actor *domain.User, id, content string) ([]domain.DesignComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("comment content is required", nil)
	}

	design, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := &domain.DesignComment{
		DesignID: design.ID,
		UserID:   actor.ID,
		Content:  content,
	}
	if err := s.designs.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventDesignCommented,
		SubjectID: design.ID,
		ActorID:   actor.ID,
		Payload: events.DesignCommentedPayload{
			CommentID: comment.ID,
			UserID:    actor.ID,
		},
	})
	return s.designs.ListComments(ctx, design.ID)
}

func (s *DesignService) fetch(ctx context.Context, id string) (*domain.Design, error) {
	design, err := s.designs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("design", map[string]any{"design_id": id})
		}
		return nil, err
	}
	return design, nil
}

func (s *DesignService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
