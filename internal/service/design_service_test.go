package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/repository"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

func validDesignInput() DesignCreateInput {
	return DesignCreateInput{
		Title:       "Warm Minimal Living Room",
		Description: "Neutral palette with oak accents",
		Style:       "minimalist",
		RoomType:    "living",
		Budget:      "mid",
	}
}

func TestCreateDesignAppliesDefaults(t *testing.T) {
	designs := new(MockDesignRepository)
	svc := NewDesignService(designs, nil)

	designs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Design")).Return(nil)

	designer := &domain.User{ID: "designer-a", Role: domain.RoleDesigner}
	design, err := svc.Create(context.Background(), designer, validDesignInput())

	assert.NoError(t, err)
	assert.Equal(t, domain.DesignStatusPublished, design.Status)
	assert.Equal(t, "INR", design.EstimatedCost.Currency)
	assert.Equal(t, "ft", design.Dimensions.Unit)
	assert.Equal(t, 4, design.TimelineWeeks)
	assert.Equal(t, "designer-a", design.DesignerID)
}

func TestCreateDesignRejectsUnknownStyle(t *testing.T) {
	designs := new(MockDesignRepository)
	svc := NewDesignService(designs, nil)

	input := validDesignInput()
	input.Style = "brutalist"
	designer := &domain.User{ID: "designer-a", Role: domain.RoleDesigner}
	_, err := svc.Create(context.Background(), designer, input)

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	designs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateDesignRejectsNonOwner(t *testing.T) {
	designs := new(MockDesignRepository)
	svc := NewDesignService(designs, nil)

	designs.On("GetByID", mock.Anything, "design-1").Return(&domain.Design{
		ID:         "design-1",
		DesignerID: "designer-a",
	}, nil)

	intruder := &domain.User{ID: "designer-b", Role: domain.RoleDesigner}
	title := "Hijacked"
	_, err := svc.Update(context.Background(), intruder, "design-1", DesignUpdateInput{Title: &title})

	assert.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
	designs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDesignOnlyTouchesProvidedFields(t *testing.T) {
	designs := new(MockDesignRepository)
	svc := NewDesignService(designs, nil)

	designs.On("GetByID", mock.Anything, "design-1").Return(&domain.Design{
		ID:          "design-1",
		Title:       "Original",
		Description: "Original description",
		DesignerID:  "designer-a",
		Style:       "modern",
		RoomType:    "living",
	}, nil)
	designs.On("Update", mock.Anything, mock.AnythingOfType("*domain.Design")).Return(nil)

	owner := &domain.User{ID: "designer-a", Role: domain.RoleDesigner}
	title := "Refreshed"
	updated, err := svc.Update(context.Background(), owner, "design-1", DesignUpdateInput{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "Refreshed", updated.Title)
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, "modern", updated.Style)
}

func TestArchiveDesignSetsArchivedStatus(t *testing.T) {
	designs := new(MockDesignRepository)
	svc := NewDesignService(designs, nil)

	designs.On("GetByID", mock.Anything, "design-1").Return(&domain.Design{
		ID:         "design-1",
		DesignerID: "designer-a",
		Status:     domain.DesignStatusPublished,
	}, nil)
	designs.On("Update", mock.Anything, mock.AnythingOfType("*domain.Design")).Return(nil)

	owner := &domain.User{ID: "designer-a", Role: domain.RoleDesigner}
	design, err := svc.Archive(context.Background(), owner, "design-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.DesignStatusArchived, design.Status)
}

func TestToggleLikeAddsWhenAbsent(t *testing.T) {
	designs := new(MockDesignRepository)
	svc := NewDesignService(designs, nil)

	designs.On("GetByID", mock.Anything, "design-1").Return(&domain.Design{ID: "design-1"}, nil)
	designs.On("HasLiked", mock.Anything, "design-1", "user-1").Return(false, nil)
	designs.On("AddLike", mock.Anything, "design-1", "user-1").Return(true, nil)
	designs.On("CountLikes", mock.Anything, "design-1").Return(int64(3), nil)

	user := &domain.User{ID: "user-1", Role: domain.RoleUser}
	result, err := svc.ToggleLike(context.Background(), user, "design-1")

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(3), result.LikeCount)
	designs.AssertNotCalled(t, "RemoveLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLikeRemovesWhenPresent(t *testing.T) {
	designs := new(MockDesignRepository)
	svc := NewDesignService(designs, nil)

	designs.On("GetByID", mock.Anything, "design-1").Return(&domain.Design{ID: "design-1"}, nil)
	designs.On("HasLiked", mock.Anything, "design-1", "user-1").Return(true, nil)
	designs.On("RemoveLike", mock.Anything, "design-1", "user-1").Return(true, nil)
	designs.On("CountLikes", mock.Anything, "design-1").Return(int64(2), nil)

	user := &domain.User{ID: "user-1", Role: domain.RoleUser}
	result, err := svc.ToggleLike(context.Background(), user, "design-1")

	assert.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(2), result.LikeCount)
	designs.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddCommentReturnsFullThread(t *testing.T) {
	designs := new(MockDesignRepository)
	svc := NewDesignService(designs, nil)

	designs.On("GetByID", mock.Anything, "design-1").Return(&domain.Design{ID: "design-1"}, nil)
	designs.On("AddComment", mock.Anything, mock.AnythingOfType("*domain.DesignComment")).Return(nil)
	designs.On("ListComments", mock.Anything, "design-1").Return([]domain.DesignComment{
		{ID: "c1", Content: "lovely"},
		{ID: "c2", Content: "how much for a 12x10 room?"},
	}, nil)

	user := &domain.User{ID: "user-1", Role: domain.RoleUser}
	comments, err := svc.AddComment(context.Background(), user, "design-1", "how much for a 12x10 room?")

	assert.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestListDefaultsToPublished(t *testing.T) {
	designs := new(MockDesignRepository)
	svc := NewDesignService(designs, nil)

	designs.On("ListWithFilter", mock.Anything, mock.MatchedBy(func(filter repository.DesignFilter) bool {
		return filter.Status != nil && *filter.Status == domain.DesignStatusPublished
	})).Return([]domain.Design{}, nil)

	_, err := svc.List(context.Background(), DesignListInput{})

	assert.NoError(t, err)
	designs.AssertExpectations(t)
}
