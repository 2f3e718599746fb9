package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/interior-market/internal/domain"
	"github.com/spec-kit/interior-market/internal/payment"
	"github.com/spec-kit/interior-market/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListDesigners(ctx context.Context, availableOnly bool) ([]domain.User, error) {
	args := m.Called(ctx, availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockConsultationRepository is a mock implementation of ConsultationRepository.
type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) Create(ctx context.Context, consultation *domain.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

func (m *MockConsultationRepository) Update(ctx context.Context, consultation *domain.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

func (m *MockConsultationRepository) GetByID(ctx context.Context, id string) (*domain.Consultation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) ListWithFilter(ctx context.Context, filter repository.ConsultationFilter) ([]domain.Consultation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) AddNote(ctx context.Context, note *domain.ConsultationNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockConsultationRepository) ListNotes(ctx context.Context, consultationID string) ([]domain.ConsultationNote, error) {
	args := m.Called(ctx, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsultationNote), args.Error(1)
}

// MockDesignRepository is a mock implementation of DesignRepository.
type MockDesignRepository struct {
	mock.Mock
}

func (m *MockDesignRepository) Create(ctx context.Context, design *domain.Design) error {
	args := m.Called(ctx, design)
	return args.Error(0)
}

func (m *MockDesignRepository) Update(ctx context.Context, design *domain.Design) error {
	args := m.Called(ctx, design)
	return args.Error(0)
}

func (m *MockDesignRepository) GetByID(ctx context.Context, id string) (*domain.Design, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Design), args.Error(1)
}

func (m *MockDesignRepository) ListWithFilter(ctx context.Context, filter repository.DesignFilter) ([]domain.Design, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Design), args.Error(1)
}

func (m *MockDesignRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDesignRepository) AddLike(ctx context.Context, designID, userID string) (bool, error) {
	args := m.Called(ctx, designID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDesignRepository) RemoveLike(ctx context.Context, designID, userID string) (bool, error) {
	args := m.Called(ctx, designID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDesignRepository) HasLiked(ctx context.Context, designID, userID string) (bool, error) {
	args := m.Called(ctx, designID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDesignRepository) CountLikes(ctx context.Context, designID string) (int64, error) {
	args := m.Called(ctx, designID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDesignRepository) AddComment(ctx context.Context, comment *domain.DesignComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockDesignRepository) ListComments(ctx context.Context, designID string) ([]domain.DesignComment, error) {
	args := m.Called(ctx, designID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DesignComment), args.Error(1)
}

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Project, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByMember(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) AddNote(ctx context.Context, note *domain.ProjectNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockProjectRepository) ListNotes(ctx context.Context, projectID string) ([]domain.ProjectNote, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectNote), args.Error(1)
}

// MockGateway is a mock implementation of payment.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, req payment.GatewayOrderRequest) (*payment.GatewayOrder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.GatewayOrder), args.Error(1)
}

// memoryOrderStore keeps order records in a map for tests.
type memoryOrderStore struct {
	records map[string]payment.OrderRecord
}

func newMemoryOrderStore() *memoryOrderStore {
	return &memoryOrderStore{records: make(map[string]payment.OrderRecord)}
}

func (s *memoryOrderStore) Save(ctx context.Context, record *payment.OrderRecord) error {
	s.records[record.ID] = *record
	return nil
}

func (s *memoryOrderStore) Get(ctx context.Context, orderID string) (*payment.OrderRecord, error) {
	record, ok := s.records[orderID]
	if !ok {
		return nil, payment.ErrOrderNotFound
	}
	copied := record
	return &copied, nil
}
