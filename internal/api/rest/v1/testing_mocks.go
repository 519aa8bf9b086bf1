//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"

	"github.com/stretchr/testify/mock"
)

// MockProgramService is a mock implementation of catalog.ProgramService
type MockProgramService struct {
	mock.Mock
}

func (m *MockProgramService) Register(ctx context.Context, program *catalog.Program) (*catalog.Program, error) {
	args := m.Called(ctx, program)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Program), args.Error(1)
}

func (m *MockProgramService) List(ctx context.Context, query *catalog.ProgramQuery) ([]*catalog.Program, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Program), args.Error(1)
}

func (m *MockProgramService) GetByID(ctx context.Context, programID string) (*catalog.Program, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Program), args.Error(1)
}

// MockSubjectService is a mock implementation of catalog.SubjectService
type MockSubjectService struct {
	mock.Mock
}

func (m *MockSubjectService) Register(ctx context.Context, subject *catalog.Subject) (*catalog.Subject, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Subject), args.Error(1)
}

func (m *MockSubjectService) List(ctx context.Context, query *catalog.SubjectQuery) ([]*catalog.Subject, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Subject), args.Error(1)
}

func (m *MockSubjectService) GetByID(ctx context.Context, subjectID string) (*catalog.Subject, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Subject), args.Error(1)
}

// MockInstructorService is a mock implementation of catalog.InstructorService
type MockInstructorService struct {
	mock.Mock
}

func (m *MockInstructorService) Register(ctx context.Context, instructor *catalog.Instructor) (*catalog.Instructor, error) {
	args := m.Called(ctx, instructor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Instructor), args.Error(1)
}

func (m *MockInstructorService) List(ctx context.Context, query *catalog.InstructorQuery) ([]*catalog.Instructor, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Instructor), args.Error(1)
}

func (m *MockInstructorService) GetByID(ctx context.Context, instructorID string) (*catalog.Instructor, error) {
	args := m.Called(ctx, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Instructor), args.Error(1)
}

func (m *MockInstructorService) GetByUserID(ctx context.Context, userID string) (*catalog.Instructor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Instructor), args.Error(1)
}

// MockAccountService is a mock implementation of accounts.AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, input *accounts.RegisterInput) (*accounts.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAccountService) Authenticate(ctx context.Context, email, password string) (*accounts.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAccountService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAccountService) CreateAdmin(ctx context.Context, email, password, firstName, lastName string) (*accounts.User, error) {
	args := m.Called(ctx, email, password, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

// MockSessionManager is a mock implementation of accounts.SessionManager
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Issue(user *accounts.User) (*accounts.Session, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockSessionManager) Parse(ctx context.Context, token string) (*accounts.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Claims), args.Error(1)
}

func (m *MockSessionManager) Revoke(ctx context.Context, claims *accounts.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

// MockTutoringService is a mock implementation of tutoring.TutoringService
type MockTutoringService struct {
	mock.Mock
}

func (m *MockTutoringService) Request(ctx context.Context, studentID string, input *tutoring.RequestInput) (*tutoring.Request, error) {
	args := m.Called(ctx, studentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tutoring.Request), args.Error(1)
}

func (m *MockTutoringService) ListForStudent(ctx context.Context, studentID string) ([]*tutoring.Request, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tutoring.Request), args.Error(1)
}

func (m *MockTutoringService) ListPendingForInstructor(ctx context.Context, userID string) ([]*tutoring.Request, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tutoring.Request), args.Error(1)
}

func (m *MockTutoringService) Accept(ctx context.Context, userID string, input *tutoring.AcceptInput) (*tutoring.Session, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tutoring.Session), args.Error(1)
}

func (m *MockTutoringService) Reject(ctx context.Context, userID, requestID string) (*tutoring.Request, error) {
	args := m.Called(ctx, userID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tutoring.Request), args.Error(1)
}

// MockNotificationService is a mock implementation of notifications.NotificationService
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

// testServices bundles one mock per service
type testServices struct {
	programs      *MockProgramService
	subjects      *MockSubjectService
	instructors   *MockInstructorService
	accounts      *MockAccountService
	sessions      *MockSessionManager
	tutoring      *MockTutoringService
	notifications *MockNotificationService
}

func newTestServices() *testServices {
	return &testServices{
		programs:      new(MockProgramService),
		subjects:      new(MockSubjectService),
		instructors:   new(MockInstructorService),
		accounts:      new(MockAccountService),
		sessions:      new(MockSessionManager),
		tutoring:      new(MockTutoringService),
		notifications: new(MockNotificationService),
	}
}

func (s *testServices) services() *Services {
	return &Services{
		Programs:      s.programs,
		Subjects:      s.subjects,
		Instructors:   s.instructors,
		Accounts:      s.accounts,
		Sessions:      s.sessions,
		Tutoring:      s.tutoring,
		Notifications: s.notifications,
	}
}

// withSession makes token resolve to claims for role, owned by an active user
func (s *testServices) withSession(token, userID, role string) *accounts.Claims {
	claims := &accounts.Claims{UserID: userID, Role: role, TokenID: "jti-" + token}
	s.sessions.On("Parse", mock.Anything, token).Return(claims, nil)
	s.accounts.On("GetByID", mock.Anything, userID).
		Return(&accounts.User{ID: userID, Role: role, IsActive: true}, nil).Maybe()
	return claims
}
