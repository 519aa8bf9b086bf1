//go:build integration
// +build integration

package persistence

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	ProgramRepo      catalog.ProgramRepository
	SubjectRepo      catalog.SubjectRepository
	InstructorRepo   catalog.InstructorRepository
	UserRepo         accounts.UserRepository
	TutoringRepo     tutoring.Repository
	NotificationRepo notifications.Repository
}

// SetupTestDB opens a fresh, migrated database and registers its cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		// a named shared-cache database is visible to every pooled connection
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db))

	log := testutil.SetupTestLogger(t)

	tc := &TestContext{DB: db}
	tc.ProgramRepo, err = NewGormProgramRepository(db, log)
	require.NoError(t, err)
	tc.SubjectRepo, err = NewGormSubjectRepository(db, log)
	require.NoError(t, err)
	tc.InstructorRepo, err = NewGormInstructorRepository(db, log)
	require.NoError(t, err)
	tc.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.TutoringRepo, err = NewGormTutoringRepository(db, log)
	require.NoError(t, err)
	tc.NotificationRepo, err = NewGormNotificationRepository(db, log)
	require.NoError(t, err)

	return tc
}

// NewTestProgram returns a valid program with the given code
func NewTestProgram(code string) *catalog.Program {
	return &catalog.Program{
		ID:              uuid.NewString(),
		Code:            code,
		Name:            "Programa " + code,
		Faculty:         "Ciencias Informáticas",
		DateTimeCreated: time.Now(),
	}
}

// NewTestSubject returns a valid subject of programID with the given code
func NewTestSubject(programID, code string) *catalog.Subject {
	return &catalog.Subject{
		ID:              uuid.NewString(),
		Code:            code,
		Name:            "Asignatura " + code,
		Credits:         4,
		ProgramID:       programID,
		Semester:        1,
		DateTimeCreated: time.Now(),
	}
}

// NewTestInstructor returns a valid instructor teaching subjectIDs
func NewTestInstructor(email string, subjectIDs ...string) *catalog.Instructor {
	return &catalog.Instructor{
		ID:              uuid.NewString(),
		FirstName:       "Carlos",
		LastName:        "Vera",
		Email:           email,
		Department:      "Informática",
		HourlyRate:      25,
		SubjectIDs:      subjectIDs,
		DateTimeCreated: time.Now(),
	}
}

// NewTestUser returns a valid active user with the given role
func NewTestUser(email, role string) *accounts.User {
	u := &accounts.User{
		ID:              uuid.NewString(),
		Email:           email,
		PasswordHash:    "$2a$10$abcdefghijklmnopqrstuv",
		FirstName:       "Ana",
		LastName:        "Cedeño",
		Role:            role,
		IsActive:        true,
		DateTimeCreated: time.Now(),
	}
	if role == accounts.RoleStudent {
		u.StudentCode = "E" + uuid.NewString()[:8]
	}
	return u
}

// NewTestRequest returns a pending request created at created
func NewTestRequest(studentID, instructorID, subjectID string, created time.Time) *tutoring.Request {
	return &tutoring.Request{
		ID:              uuid.NewString(),
		StudentID:       studentID,
		InstructorID:    instructorID,
		SubjectID:       subjectID,
		PreferredDate:   "2025-06-02",
		PreferredTime:   "09:00",
		Message:         "Dudas sobre el parcial",
		UrgencyLevel:    tutoring.UrgencyMedium,
		Status:          tutoring.RequestPending,
		DateTimeCreated: created,
		ExpiresAt:       created.Add(7 * 24 * time.Hour),
	}
}

// NewTestSession returns a confirmed session for request
func NewTestSession(request *tutoring.Request) *tutoring.Session {
	return &tutoring.Session{
		ID:              uuid.NewString(),
		RequestID:       request.ID,
		StudentID:       request.StudentID,
		InstructorID:    request.InstructorID,
		SubjectID:       request.SubjectID,
		Title:           "Repaso",
		Description:     request.Message,
		ScheduledDate:   request.PreferredDate,
		StartTime:       "09:00",
		EndTime:         "10:00",
		DurationMinutes: 60,
		Status:          tutoring.SessionConfirmed,
		LocationType:    tutoring.LocationVirtual,
		Price:           25,
		DateTimeCreated: time.Now(),
	}
}
