package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// accountService implements the AccountService interface
type accountService struct {
	userRepo          accounts.UserRepository
	instructorRepo    catalog.InstructorRepository
	defaultHourlyRate float64
	hashCost          int
	logger            logger.Logger
}

// NewAccountService creates a new instance of AccountService. Teacher
// signups without an existing instructor profile get defaultHourlyRate.
func NewAccountService(userRepo accounts.UserRepository, instructorRepo catalog.InstructorRepository, defaultHourlyRate float64, logger logger.Logger) (accounts.AccountService, error) {
	return &accountService{
		userRepo:          userRepo,
		instructorRepo:    instructorRepo,
		defaultHourlyRate: defaultHourlyRate,
		hashCost:          bcrypt.DefaultCost,
		logger:            logger,
	}, nil
}

func (s *accountService) Register(ctx context.Context, input *accounts.RegisterInput) (*accounts.User, error) {
	input.Email = accounts.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user := &accounts.User{
		ID:              uuid.NewString(),
		Email:           input.Email,
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		Role:            input.Role,
		IsActive:        true,
		DateTimeCreated: time.Now(),
	}
	if input.Role == accounts.RoleStudent {
		user.StudentCode = strings.TrimSpace(input.StudentCode)
		user.ProgramID = input.ProgramID
		user.Semester = input.Semester
	}

	if err := s.create(ctx, user, input.Password); err != nil {
		return nil, err
	}

	if user.Role == accounts.RoleTeacher {
		if err := s.linkInstructor(ctx, user, input); err != nil {
			// the account is useless without its profile
			if delErr := s.userRepo.DeleteByID(ctx, user.ID); delErr != nil {
				s.logger.Error("Failed to roll back user after instructor link failure", "user_id", user.ID, "error", delErr)
			}
			return nil, err
		}
	}

	s.logger.Info("Registered user", "id", user.ID, "role", user.Role)
	return user, nil
}

func (s *accountService) create(ctx context.Context, user *accounts.User, password string) error {
	_, err := s.userRepo.GetByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return accounts.ErrEmailExists
	case !errors.Is(err, accounts.ErrNotFound):
		return fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := hashPassword(password, s.hashCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// linkInstructor attaches the teacher account to the instructor profile
// registered under the same email, or creates one.
func (s *accountService) linkInstructor(ctx context.Context, user *accounts.User, input *accounts.RegisterInput) error {
	instructor, err := s.instructorRepo.GetByEmail(ctx, user.Email)
	switch {
	case err == nil:
		if instructor.UserID != nil {
			return fmt.Errorf("instructor profile already linked: %w", accounts.ErrEmailExists)
		}
		instructor.UserID = &user.ID
		if err := s.instructorRepo.UpdateByID(ctx, instructor); err != nil {
			return fmt.Errorf("failed to link instructor profile: %w", err)
		}
		s.logger.Info("Linked instructor profile", "instructor_id", instructor.ID, "user_id", user.ID)
		return nil

	case errors.Is(err, catalog.ErrNotFound):
		instructor = &catalog.Instructor{
			ID:              uuid.NewString(),
			FirstName:       user.FirstName,
			LastName:        user.LastName,
			Email:           user.Email,
			Department:      strings.TrimSpace(input.Department),
			Specialization:  strings.TrimSpace(input.Specialization),
			Bio:             strings.TrimSpace(input.Bio),
			ExperienceYears: input.ExperienceYears,
			HourlyRate:      s.defaultHourlyRate,
			UserID:          &user.ID,
			DateTimeCreated: time.Now(),
		}
		if err := s.instructorRepo.Create(ctx, instructor); err != nil {
			return fmt.Errorf("failed to create instructor profile: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("failed to look up instructor profile: %w", err)
	}
}

func (s *accountService) Authenticate(ctx context.Context, email, password string) (*accounts.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, accounts.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, accounts.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !checkPassword(user.PasswordHash, password) {
		s.logger.Warn("Rejected login", "user_id", user.ID)
		return nil, accounts.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, accounts.ErrInactiveUser
	}

	return user, nil
}

func (s *accountService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *accountService) CreateAdmin(ctx context.Context, email, password, firstName, lastName string) (*accounts.User, error) {
	if len(password) < 8 || len(password) > validators.MaxPasswordBytes {
		return nil, fmt.Errorf("admin password must be 8 to 72 bytes: %w", accounts.ErrInvalidCredentials)
	}

	user := &accounts.User{
		ID:              uuid.NewString(),
		Email:           accounts.NormalizeEmail(email),
		FirstName:       strings.TrimSpace(firstName),
		LastName:        strings.TrimSpace(lastName),
		Role:            accounts.RoleAdmin,
		IsActive:        true,
		DateTimeCreated: time.Now(),
	}
	// PasswordHash is filled in by create; validate everything else first
	user.PasswordHash = "-"
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.create(ctx, user, password); err != nil {
		return nil, err
	}

	s.logger.Info("Created administrator", "id", user.ID)
	return user, nil
}
