package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/interior-market/internal/domain"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

func validProjectInput() ProjectCreateInput {
	return ProjectCreateInput{
		Title:       "Bedroom Makeover",
		Description: "Full bedroom renovation from the scandinavian template",
		ClientID:    "user-1",
		DesignerID:  "designer-a",
		DesignIDs:   []string{"design-1"},
		RoomDetails: domain.RoomDetails{Type: "bedroom"},
	}
}

func TestCreateProjectAppliesDefaults(t *testing.T) {
	projects := new(MockProjectRepository)
	svc := NewProjectService(projects, nil)

	projects.On("Create", mock.Anything, mock.AnythingOfType("*domain.Project")).Return(nil)

	project, err := svc.Create(context.Background(), validProjectInput())

	assert.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusPlanning, project.Status)
	assert.Equal(t, "INR", project.Budget.Currency)
	assert.NotNil(t, project.Timeline.StartDate)
	assert.NotNil(t, project.Timeline.EndDate)
	assert.True(t, project.Timeline.EndDate.After(*project.Timeline.StartDate))
}

func TestCreateProjectRequiresDesigns(t *testing.T) {
	projects := new(MockProjectRepository)
	svc := NewProjectService(projects, nil)

	input := validProjectInput()
	input.DesignIDs = nil
	_, err := svc.Create(context.Background(), input)

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	projects.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetProjectDeniesStranger(t *testing.T) {
	projects := new(MockProjectRepository)
	svc := NewProjectService(projects, nil)

	projects.On("GetByID", mock.Anything, "project-1").Return(&domain.Project{
		ID:         "project-1",
		ClientID:   "user-1",
		DesignerID: "designer-a",
	}, nil)

	stranger := &domain.User{ID: "user-2", Role: domain.RoleUser}
	_, _, err := svc.Get(context.Background(), stranger, "project-1")

	assert.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestUpdateProjectAllowsDesignerStatusChange(t *testing.T) {
	projects := new(MockProjectRepository)
	svc := NewProjectService(projects, nil)

	projects.On("GetByID", mock.Anything, "project-1").Return(&domain.Project{
		ID:         "project-1",
		ClientID:   "user-1",
		DesignerID: "designer-a",
		Status:     domain.ProjectStatusPlanning,
	}, nil)
	projects.On("Update", mock.Anything, mock.AnythingOfType("*domain.Project")).Return(nil)

	designer := &domain.User{ID: "designer-a", Role: domain.RoleDesigner}
	status := domain.ProjectStatusInProgress
	project, err := svc.Update(context.Background(), designer, "project-1", ProjectUpdateInput{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusInProgress, project.Status)
}

func TestUpdateProjectRejectsUnknownStatus(t *testing.T) {
	projects := new(MockProjectRepository)
	svc := NewProjectService(projects, nil)

	projects.On("GetByID", mock.Anything, "project-1").Return(&domain.Project{
		ID:       "project-1",
		ClientID: "user-1",
	}, nil)

	client := &domain.User{ID: "user-1", Role: domain.RoleUser}
	status := domain.ProjectStatus("paused")
	_, err := svc.Update(context.Background(), client, "project-1", ProjectUpdateInput{Status: &status})

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	projects.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListForUserDeniesOtherUsers(t *testing.T) {
	projects := new(MockProjectRepository)
	svc := NewProjectService(projects, nil)

	actor := &domain.User{ID: "user-1", Role: domain.RoleUser}
	_, err := svc.ListForUser(context.Background(), actor, "user-2")

	assert.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
	projects.AssertNotCalled(t, "ListByMember", mock.Anything, mock.Anything)
}

func TestAddProjectNoteRequiresMembership(t *testing.T) {
	projects := new(MockProjectRepository)
	svc := NewProjectService(projects, nil)

	projects.On("GetByID", mock.Anything, "project-1").Return(&domain.Project{
		ID:         "project-1",
		ClientID:   "user-1",
		DesignerID: "designer-a",
	}, nil)

	stranger := &domain.User{ID: "user-9", Role: domain.RoleUser}
	_, err := svc.AddNote(context.Background(), stranger, "project-1", "sneaky note")

	assert.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
	projects.AssertNotCalled(t, "AddNote", mock.Anything, mock.Anything)
}
