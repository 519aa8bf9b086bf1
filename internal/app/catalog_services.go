package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/google/uuid"
)

// programService implements the ProgramService interface
type programService struct {
	programRepo catalog.ProgramRepository
	logger      logger.Logger
}

// NewProgramService creates a new instance of ProgramService
func NewProgramService(programRepo catalog.ProgramRepository, logger logger.Logger) (catalog.ProgramService, error) {
	return &programService{
		programRepo: programRepo,
		logger:      logger,
	}, nil
}

func (s *programService) Register(ctx context.Context, program *catalog.Program) (*catalog.Program, error) {
	program.ID = uuid.NewString()
	program.Code = normalizeCode(program.Code)
	program.DateTimeCreated = time.Now()

	if err := program.Validate(); err != nil {
		return nil, err
	}
	if err := ensureFree(s.programRepo.GetByCode(ctx, program.Code)); err != nil {
		return nil, fmt.Errorf("program code %s: %w", program.Code, err)
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, fmt.Errorf("failed to register program: %w", err)
	}

	s.logger.Info("Registered program", "id", program.ID, "code", program.Code)
	return program, nil
}

func (s *programService) List(ctx context.Context, query *catalog.ProgramQuery) ([]*catalog.Program, error) {
	programs, err := s.programRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	return programs, nil
}

func (s *programService) GetByID(ctx context.Context, programID string) (*catalog.Program, error) {
	return s.programRepo.GetByID(ctx, programID)
}

// subjectService implements the SubjectService interface
type subjectService struct {
	subjectRepo catalog.SubjectRepository
	programRepo catalog.ProgramRepository
	logger      logger.Logger
}

// NewSubjectService creates a new instance of SubjectService
func NewSubjectService(subjectRepo catalog.SubjectRepository, programRepo catalog.ProgramRepository, logger logger.Logger) (catalog.SubjectService, error) {
	return &subjectService{
		subjectRepo: subjectRepo,
		programRepo: programRepo,
		logger:      logger,
	}, nil
}

func (s *subjectService) Register(ctx context.Context, subject *catalog.Subject) (*catalog.Subject, error) {
	subject.ID = uuid.NewString()
	subject.Code = normalizeCode(subject.Code)
	subject.DateTimeCreated = time.Now()

	if err := subject.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.programRepo.GetByID(ctx, subject.ProgramID); err != nil {
		return nil, fmt.Errorf("subject program: %w", err)
	}
	if err := ensureFree(s.subjectRepo.GetByCode(ctx, subject.Code)); err != nil {
		return nil, fmt.Errorf("subject code %s: %w", subject.Code, err)
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to register subject: %w", err)
	}

	s.logger.Info("Registered subject", "id", subject.ID, "code", subject.Code, "program_id", subject.ProgramID)
	return subject, nil
}

func (s *subjectService) List(ctx context.Context, query *catalog.SubjectQuery) ([]*catalog.Subject, error) {
	subjects, err := s.subjectRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	return subjects, nil
}

func (s *subjectService) GetByID(ctx context.Context, subjectID string) (*catalog.Subject, error) {
	return s.subjectRepo.GetByID(ctx, subjectID)
}

// instructorService implements the InstructorService interface
type instructorService struct {
	instructorRepo    catalog.InstructorRepository
	subjectRepo       catalog.SubjectRepository
	defaultHourlyRate float64
	logger            logger.Logger
}

// NewInstructorService creates a new instance of InstructorService.
// Instructors registered without a rate get defaultHourlyRate.
func NewInstructorService(instructorRepo catalog.InstructorRepository, subjectRepo catalog.SubjectRepository, defaultHourlyRate float64, logger logger.Logger) (catalog.InstructorService, error) {
	return &instructorService{
		instructorRepo:    instructorRepo,
		subjectRepo:       subjectRepo,
		defaultHourlyRate: defaultHourlyRate,
		logger:            logger,
	}, nil
}

func (s *instructorService) Register(ctx context.Context, instructor *catalog.Instructor) (*catalog.Instructor, error) {
	instructor.ID = uuid.NewString()
	instructor.Email = strings.ToLower(strings.TrimSpace(instructor.Email))
	instructor.DateTimeCreated = time.Now()
	if instructor.HourlyRate == 0 {
		instructor.HourlyRate = s.defaultHourlyRate
	}

	if err := instructor.Validate(); err != nil {
		return nil, err
	}
	if err := ensureFree(s.instructorRepo.GetByEmail(ctx, instructor.Email)); err != nil {
		return nil, fmt.Errorf("instructor email %s: %w", instructor.Email, err)
	}
	for _, subjectID := range instructor.SubjectIDs {
		if _, err := s.subjectRepo.GetByID(ctx, subjectID); err != nil {
			return nil, fmt.Errorf("instructor subject: %w", err)
		}
	}

	if err := s.instructorRepo.Create(ctx, instructor); err != nil {
		return nil, fmt.Errorf("failed to register instructor: %w", err)
	}

	s.logger.Info("Registered instructor", "id", instructor.ID, "subjects", len(instructor.SubjectIDs))
	return instructor, nil
}

func (s *instructorService) List(ctx context.Context, query *catalog.InstructorQuery) ([]*catalog.Instructor, error) {
	instructors, err := s.instructorRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructors: %w", err)
	}
	return instructors, nil
}

func (s *instructorService) GetByID(ctx context.Context, instructorID string) (*catalog.Instructor, error) {
	return s.instructorRepo.GetByID(ctx, instructorID)
}

func (s *instructorService) GetByUserID(ctx context.Context, userID string) (*catalog.Instructor, error) {
	return s.instructorRepo.GetByUserID(ctx, userID)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ensureFree turns the result of a unique-key lookup into ErrConflict when
// an entry was found, and nil when the key is unused.
func ensureFree[T any](existing *T, err error) error {
	switch {
	case err == nil && existing != nil:
		return catalog.ErrConflict
	case err == nil, errors.Is(err, catalog.ErrNotFound):
		return nil
	default:
		return err
	}
}
