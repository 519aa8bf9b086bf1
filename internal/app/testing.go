//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/infrastructure/persistence"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestDefaultHourlyRate is the rate given to instructors registered without one
const TestDefaultHourlyRate = 25.0

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	ProgramService      catalog.ProgramService
	SubjectService      catalog.SubjectService
	InstructorService   catalog.InstructorService
	AccountService      accounts.AccountService
	TutoringService     tutoring.TutoringService
	NotificationService notifications.NotificationService

	DBContext *persistence.TestContext
}

// SetupTestServices wires every service on top of a fresh database
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	db := persistence.SetupTestDB(t, dbType)

	programService, err := NewProgramService(db.ProgramRepo, log)
	require.NoError(t, err)
	subjectService, err := NewSubjectService(db.SubjectRepo, db.ProgramRepo, log)
	require.NoError(t, err)
	instructorService, err := NewInstructorService(db.InstructorRepo, db.SubjectRepo, TestDefaultHourlyRate, log)
	require.NoError(t, err)
	accountService, err := NewAccountService(db.UserRepo, db.InstructorRepo, TestDefaultHourlyRate, log)
	require.NoError(t, err)
	notificationService, err := NewNotificationService(db.NotificationRepo, log)
	require.NoError(t, err)
	tutoringService, err := NewTutoringService(
		db.TutoringRepo,
		db.InstructorRepo,
		db.SubjectRepo,
		notificationService,
		7*24*time.Hour,
		log,
	)
	require.NoError(t, err)

	return &TestServices{
		ProgramService:      programService,
		SubjectService:      subjectService,
		InstructorService:   instructorService,
		AccountService:      accountService,
		TutoringService:     tutoringService,
		NotificationService: notificationService,
		DBContext:           db,
	}
}
