package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/repository"
	apperrors "github.com/spec-kit/interior-market/pkg/util"
)

func newTestConsultationService(consultations *MockConsultationRepository, users *MockUserRepository) *ConsultationService {
	svc := NewConsultationService(consultations, users, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func validBooking(date time.Time) ConsultationCreateInput {
	return ConsultationCreateInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9999999999",
		Budget:   "mid",
		Date:     date,
		TimeSlot: "10:00 AM",
		Message:  "living room refresh",
	}
}

func TestCreateConsultationRejectsPastDate(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	past := svc.now().Add(-time.Hour)
	_, err := svc.Create(context.Background(), "user-1", validBooking(past))

	assert.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	consultations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateConsultationRejectsDateInsideGraceBuffer(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	almostNow := svc.now().Add(30 * time.Second)
	_, err := svc.Create(context.Background(), "user-1", validBooking(almostNow))

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestCreateConsultationRejectsUnknownTimeSlot(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	input := validBooking(svc.now().Add(48 * time.Hour))
	input.TimeSlot = "06:30 AM"
	_, err := svc.Create(context.Background(), "user-1", input)

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestCreatePersistsUnassignedBooking(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	consultations.On("Create", mock.Anything, mock.AnythingOfType("*domain.Consultation")).Return(nil)

	consultation, err := svc.Create(context.Background(), "user-1", validBooking(svc.now().Add(48*time.Hour)))

	assert.NoError(t, err)
	assert.Nil(t, consultation.DesignerID)
	assert.Equal(t, domain.ConsultationStatusPending, consultation.Status)
	users.AssertNotCalled(t, "ListDesigners", mock.Anything, mock.Anything)
}

func TestCreateSucceedsWithoutAvailableDesigners(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	users.On("ListDesigners", mock.Anything, true).Return([]domain.User{}, nil)
	consultations.On("Create", mock.Anything, mock.AnythingOfType("*domain.Consultation")).Return(nil)

	consultation, err := svc.Create(context.Background(), "user-1", validBooking(svc.now().Add(48*time.Hour)))

	assert.NoError(t, err)
	assert.Nil(t, consultation.DesignerID)
	consultations.AssertExpectations(t)
}

func TestCreateAutoAssignPicksAvailableDesigner(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)
	svc.pick = func(n int) int { return 1 }

	users.On("ListDesigners", mock.Anything, true).Return([]domain.User{
		{ID: "designer-a", Role: domain.RoleDesigner, Availability: true},
		{ID: "designer-b", Role: domain.RoleDesigner, Availability: true},
		{ID: "designer-c", Role: domain.RoleDesigner, Availability: true},
	}, nil)
	consultations.On("Create", mock.Anything, mock.AnythingOfType("*domain.Consultation")).Return(nil)

	consultation, err := svc.CreateAutoAssign(context.Background(), "user-1", validBooking(svc.now().Add(48*time.Hour)))

	assert.NoError(t, err)
	assert.NotNil(t, consultation.DesignerID)
	assert.Equal(t, "designer-b", *consultation.DesignerID)
	assert.Equal(t, domain.ConsultationStatusPending, consultation.Status)
	consultations.AssertExpectations(t)
}

func TestCreateAutoAssignFailsWhenNoDesignersAvailable(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	users.On("ListDesigners", mock.Anything, true).Return([]domain.User{}, nil)

	_, err := svc.CreateAutoAssign(context.Background(), "user-1", validBooking(svc.now().Add(48*time.Hour)))

	assert.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "BUSINESS_RULE", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	consultations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateStatusAllowsAssignedDesignerTransition(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	designerID := "designer-a"
	consultations.On("GetByID", mock.Anything, "cons-1").Return(&domain.Consultation{
		ID:          "cons-1",
		RequesterID: "user-1",
		DesignerID:  &designerID,
		Status:      domain.ConsultationStatusPending,
	}, nil)
	consultations.On("Update", mock.Anything, mock.AnythingOfType("*domain.Consultation")).Return(nil)

	designer := &domain.User{ID: designerID, Role: domain.RoleDesigner}
	updated, err := svc.UpdateStatus(context.Background(), designer, "cons-1", domain.ConsultationStatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, domain.ConsultationStatusConfirmed, updated.Status)
}

func TestUpdateStatusRejectsRequester(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	designerID := "designer-a"
	consultations.On("GetByID", mock.Anything, "cons-1").Return(&domain.Consultation{
		ID:          "cons-1",
		RequesterID: "user-1",
		DesignerID:  &designerID,
		Status:      domain.ConsultationStatusPending,
	}, nil)

	requester := &domain.User{ID: "user-1", Role: domain.RoleUser}
	_, err := svc.UpdateStatus(context.Background(), requester, "cons-1", domain.ConsultationStatusConfirmed)

	assert.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
	consultations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateStatusRejectsTerminalTransition(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	designerID := "designer-a"
	consultations.On("GetByID", mock.Anything, "cons-1").Return(&domain.Consultation{
		ID:          "cons-1",
		RequesterID: "user-1",
		DesignerID:  &designerID,
		Status:      domain.ConsultationStatusCancelled,
	}, nil)

	designer := &domain.User{ID: designerID, Role: domain.RoleDesigner}
	_, err := svc.UpdateStatus(context.Background(), designer, "cons-1", domain.ConsultationStatusConfirmed)

	assert.Error(t, err)
	assert.Equal(t, "BUSINESS_RULE", apperrors.ToDomainError(err).Code)
	consultations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateRejectsMalformedProjectID(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	designerID := "designer-a"
	consultations.On("GetByID", mock.Anything, "cons-1").Return(&domain.Consultation{
		ID:          "cons-1",
		RequesterID: "user-1",
		DesignerID:  &designerID,
		Status:      domain.ConsultationStatusConfirmed,
	}, nil)

	designer := &domain.User{ID: designerID, Role: domain.RoleDesigner}
	badID := "not-a-uuid"
	_, err := svc.Update(context.Background(), designer, "cons-1", ConsultationUpdateInput{ProjectID: &badID})

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	consultations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateAcceptsWellFormedProjectID(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	designerID := "designer-a"
	consultations.On("GetByID", mock.Anything, "cons-1").Return(&domain.Consultation{
		ID:          "cons-1",
		RequesterID: "user-1",
		DesignerID:  &designerID,
		Status:      domain.ConsultationStatusConfirmed,
	}, nil)
	consultations.On("Update", mock.Anything, mock.AnythingOfType("*domain.Consultation")).Return(nil)

	designer := &domain.User{ID: designerID, Role: domain.RoleDesigner}
	projectID := "0b6f7f6e-6f64-4a35-9d08-2b9c9a3a7f11"
	updated, err := svc.Update(context.Background(), designer, "cons-1", ConsultationUpdateInput{ProjectID: &projectID})

	assert.NoError(t, err)
	assert.NotNil(t, updated.ProjectID)
	assert.Equal(t, projectID, *updated.ProjectID)
}

func TestListUpcomingBuildsBoundedFilter(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	consultations.On("ListWithFilter", mock.Anything, mock.MatchedBy(func(filter repository.ConsultationFilter) bool {
		if filter.RequesterID == nil || *filter.RequesterID != "user-1" {
			return false
		}
		if filter.DateFrom == nil || !filter.DateFrom.Equal(svc.now()) {
			return false
		}
		if filter.Limit != 5 || !filter.OrderDateAsc {
			return false
		}
		excluded := map[domain.ConsultationStatus]bool{}
		for _, status := range filter.ExcludeStatuses {
			excluded[status] = true
		}
		return len(filter.ExcludeStatuses) == 2 &&
			excluded[domain.ConsultationStatusCancelled] &&
			excluded[domain.ConsultationStatusCompleted]
	})).Return([]domain.Consultation{}, nil)

	_, err := svc.ListUpcoming(context.Background(), "user-1")

	assert.NoError(t, err)
	consultations.AssertExpectations(t)
}

func TestGetConsultationDeniesStranger(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	designerID := "designer-a"
	consultations.On("GetByID", mock.Anything, "cons-1").Return(&domain.Consultation{
		ID:          "cons-1",
		RequesterID: "user-1",
		DesignerID:  &designerID,
	}, nil)

	stranger := &domain.User{ID: "user-2", Role: domain.RoleUser}
	_, _, err := svc.Get(context.Background(), stranger, "cons-1")

	assert.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestAddNoteAllowsRequester(t *testing.T) {
	consultations := new(MockConsultationRepository)
	users := new(MockUserRepository)
	svc := newTestConsultationService(consultations, users)

	consultations.On("GetByID", mock.Anything, "cons-1").Return(&domain.Consultation{
		ID:          "cons-1",
		RequesterID: "user-1",
	}, nil)
	consultations.On("AddNote", mock.Anything, mock.AnythingOfType("*domain.ConsultationNote")).Return(nil)

	requester := &domain.User{ID: "user-1", Role: domain.RoleUser}
	note, err := svc.AddNote(context.Background(), requester, "cons-1", "  please call before visiting  ")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", note.AuthorID)
	assert.Equal(t, "please call before visiting", note.Text)
}
