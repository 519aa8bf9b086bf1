//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"

	"github.com/stretchr/testify/mock"
)

// MockProgramRepository is a mock implementation of ProgramRepository
type MockProgramRepository struct {
	mock.Mock
}

func (m *MockProgramRepository) Create(ctx context.Context, program *catalog.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *MockProgramRepository) List(ctx context.Context, query *catalog.ProgramQuery) ([]*catalog.Program, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Program), args.Error(1)
}

func (m *MockProgramRepository) GetByID(ctx context.Context, programID string) (*catalog.Program, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Program), args.Error(1)
}

func (m *MockProgramRepository) GetByCode(ctx context.Context, code string) (*catalog.Program, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Program), args.Error(1)
}

// MockSubjectRepository is a mock implementation of SubjectRepository
type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) Create(ctx context.Context, subject *catalog.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectRepository) List(ctx context.Context, query *catalog.SubjectQuery) ([]*catalog.Subject, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Subject), args.Error(1)
}

func (m *MockSubjectRepository) GetByID(ctx context.Context, subjectID string) (*catalog.Subject, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Subject), args.Error(1)
}

func (m *MockSubjectRepository) GetByCode(ctx context.Context, code string) (*catalog.Subject, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Subject), args.Error(1)
}

// MockInstructorRepository is a mock implementation of InstructorRepository
type MockInstructorRepository struct {
	mock.Mock
}

func (m *MockInstructorRepository) Create(ctx context.Context, instructor *catalog.Instructor) error {
	args := m.Called(ctx, instructor)
	return args.Error(0)
}

func (m *MockInstructorRepository) List(ctx context.Context, query *catalog.InstructorQuery) ([]*catalog.Instructor, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Instructor), args.Error(1)
}

func (m *MockInstructorRepository) GetByID(ctx context.Context, instructorID string) (*catalog.Instructor, error) {
	args := m.Called(ctx, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Instructor), args.Error(1)
}

func (m *MockInstructorRepository) GetByEmail(ctx context.Context, email string) (*catalog.Instructor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Instructor), args.Error(1)
}

func (m *MockInstructorRepository) GetByUserID(ctx context.Context, userID string) (*catalog.Instructor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Instructor), args.Error(1)
}

func (m *MockInstructorRepository) UpdateByID(ctx context.Context, instructor *catalog.Instructor) error {
	args := m.Called(ctx, instructor)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *accounts.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*accounts.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockTutoringRepository is a mock implementation of the tutoring Repository
type MockTutoringRepository struct {
	mock.Mock
}

func (m *MockTutoringRepository) CreateRequest(ctx context.Context, request *tutoring.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockTutoringRepository) GetRequestByID(ctx context.Context, requestID string) (*tutoring.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tutoring.Request), args.Error(1)
}

func (m *MockTutoringRepository) ListRequests(ctx context.Context, query *tutoring.RequestQuery) ([]*tutoring.Request, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tutoring.Request), args.Error(1)
}

func (m *MockTutoringRepository) TransitionRequest(ctx context.Context, requestID, from, to string) error {
	args := m.Called(ctx, requestID, from, to)
	return args.Error(0)
}

func (m *MockTutoringRepository) AcceptRequest(ctx context.Context, requestID string, session *tutoring.Session) error {
	args := m.Called(ctx, requestID, session)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of the notifications Repository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *notifications.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*notifications.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notifications.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, notificationID string) (*notifications.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID string, at time.Time) error {
	args := m.Called(ctx, notificationID, at)
	return args.Error(0)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID, notificationType, title, message string) (*notifications.Notification, error) {
	args := m.Called(ctx, userID, notificationType, title, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID string) ([]*notifications.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, notificationID string) (*notifications.Notification, error) {
	args := m.Called(ctx, userID, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Notification), args.Error(1)
}
