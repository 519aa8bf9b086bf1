package main

import (
	"fmt"

	v1 "github.com/OscarMeza24/SistemaDeTurorias/internal/api/rest/v1"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/app"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/infrastructure/persistence"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"gorm.io/gorm"
)

type repositories struct {
	programs      catalog.ProgramRepository
	subjects      catalog.SubjectRepository
	instructors   catalog.InstructorRepository
	users         accounts.UserRepository
	tutoring      tutoring.Repository
	notifications notifications.Repository
}

// initializeRepositories sets up the gorm repositories
func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	programRepo, err := persistence.NewGormProgramRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create program repository: %w", err)
	}

	subjectRepo, err := persistence.NewGormSubjectRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create subject repository: %w", err)
	}

	instructorRepo, err := persistence.NewGormInstructorRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create instructor repository: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	tutoringRepo, err := persistence.NewGormTutoringRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tutoring repository: %w", err)
	}

	notificationRepo, err := persistence.NewGormNotificationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}

	return &repositories{
		programs:      programRepo,
		subjects:      subjectRepo,
		instructors:   instructorRepo,
		users:         userRepo,
		tutoring:      tutoringRepo,
		notifications: notificationRepo,
	}, nil
}

// initializeApplicationServices sets up all application services. The
// session manager is filled in by the caller.
func initializeApplicationServices(repos *repositories, settings config.TutoringSettings, log logger.Logger) (*v1.Services, error) {
	programService, err := app.NewProgramService(repos.programs, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create program service: %w", err)
	}

	subjectService, err := app.NewSubjectService(repos.subjects, repos.programs, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create subject service: %w", err)
	}

	instructorService, err := app.NewInstructorService(repos.instructors, repos.subjects, settings.DefaultHourlyRate, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create instructor service: %w", err)
	}

	accountService, err := app.NewAccountService(repos.users, repos.instructors, settings.DefaultHourlyRate, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	notificationService, err := app.NewNotificationService(repos.notifications, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	tutoringService, err := app.NewTutoringService(
		repos.tutoring, repos.instructors, repos.subjects,
		notificationService, settings.RequestTTL, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tutoring service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		Programs:      programService,
		Subjects:      subjectService,
		Instructors:   instructorService,
		Accounts:      accountService,
		Tutoring:      tutoringService,
		Notifications: notificationService,
	}, nil
}
