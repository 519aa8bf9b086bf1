package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// tutoringService implements the TutoringService interface
type tutoringService struct {
	repo           tutoring.Repository
	instructorRepo catalog.InstructorRepository
	subjectRepo    catalog.SubjectRepository
	notifier       notifications.NotificationService
	sanitizer      *bluemonday.Policy
	requestTTL     time.Duration
	logger         logger.Logger
	now            func() time.Time
}

// NewTutoringService creates a new instance of TutoringService. Requests
// expire requestTTL after they are filed.
func NewTutoringService(
	repo tutoring.Repository,
	instructorRepo catalog.InstructorRepository,
	subjectRepo catalog.SubjectRepository,
	notifier notifications.NotificationService,
	requestTTL time.Duration,
	logger logger.Logger,
) (tutoring.TutoringService, error) {
	if requestTTL <= 0 {
		return nil, fmt.Errorf("request TTL must be positive, got %s", requestTTL)
	}

	return &tutoringService{
		repo:           repo,
		instructorRepo: instructorRepo,
		subjectRepo:    subjectRepo,
		notifier:       notifier,
		sanitizer:      bluemonday.StrictPolicy(),
		requestTTL:     requestTTL,
		logger:         logger,
		now:            time.Now,
	}, nil
}

func (s *tutoringService) Request(ctx context.Context, studentID string, input *tutoring.RequestInput) (*tutoring.Request, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	subject, err := s.subjectRepo.GetByID(ctx, input.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("requested subject: %w", err)
	}
	instructor, err := s.instructorRepo.GetByID(ctx, input.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("requested instructor: %w", err)
	}
	if !instructor.Teaches(subject.ID) {
		return nil, fmt.Errorf("%s / %s: %w", instructor.FullName(), subject.Code, tutoring.ErrSubjectNotTaught)
	}

	urgency := input.UrgencyLevel
	if urgency == "" {
		urgency = tutoring.UrgencyMedium
	}

	now := s.now()
	request := &tutoring.Request{
		ID:              uuid.NewString(),
		StudentID:       studentID,
		InstructorID:    instructor.ID,
		SubjectID:       subject.ID,
		PreferredDate:   input.PreferredDate,
		PreferredTime:   input.PreferredTime,
		Message:         s.sanitize(input.Message),
		UrgencyLevel:    urgency,
		Status:          tutoring.RequestPending,
		DateTimeCreated: now,
		ExpiresAt:       now.Add(s.requestTTL),
	}

	if err := s.repo.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to file tutoring request: %w", err)
	}

	if instructor.UserID != nil {
		s.notify(ctx, *instructor.UserID, notifications.TypeTutoringRequest,
			"Nueva solicitud de tutoría",
			fmt.Sprintf("Solicitud de tutoría de %s para el %s a las %s (urgencia: %s)",
				subject.Name, request.PreferredDate, request.PreferredTime, request.UrgencyLevel))
	}

	s.logger.Info("Filed tutoring request", "id", request.ID, "student_id", studentID, "instructor_id", instructor.ID)
	return request, nil
}

func (s *tutoringService) ListForStudent(ctx context.Context, studentID string) ([]*tutoring.Request, error) {
	requests, err := s.repo.ListRequests(ctx, &tutoring.RequestQuery{StudentID: studentID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tutoring requests: %w", err)
	}
	return requests, nil
}

// ListPendingForInstructor omits pending requests already past their expiry.
func (s *tutoringService) ListPendingForInstructor(ctx context.Context, userID string) ([]*tutoring.Request, error) {
	instructor, err := s.instructorFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.ListRequests(ctx, &tutoring.RequestQuery{
		InstructorID: instructor.ID,
		Status:       tutoring.RequestPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tutoring requests: %w", err)
	}

	now := s.now()
	live := make([]*tutoring.Request, 0, len(requests))
	for _, r := range requests {
		if !r.IsExpired(now) {
			live = append(live, r)
		}
	}
	return live, nil
}

func (s *tutoringService) Accept(ctx context.Context, userID string, input *tutoring.AcceptInput) (*tutoring.Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	request, err := s.pendingRequestOf(ctx, userID, input.RequestID)
	if err != nil {
		return nil, err
	}

	description := s.sanitize(input.Description)
	if description == "" {
		description = request.Message
	}
	locationType := input.LocationType
	if locationType == "" {
		locationType = tutoring.LocationVirtual
	}

	session := &tutoring.Session{
		ID:              uuid.NewString(),
		RequestID:       request.ID,
		StudentID:       request.StudentID,
		InstructorID:    request.InstructorID,
		SubjectID:       request.SubjectID,
		Title:           s.sanitize(input.Title),
		Description:     description,
		ScheduledDate:   input.ScheduledDate,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DurationMinutes: input.DurationMinutes,
		Status:          tutoring.SessionConfirmed,
		LocationType:    locationType,
		LocationDetails: s.sanitize(input.LocationDetails),
		Price:           input.Price,
		DateTimeCreated: s.now(),
	}

	if err := s.repo.AcceptRequest(ctx, request.ID, session); err != nil {
		return nil, fmt.Errorf("failed to accept tutoring request: %w", err)
	}

	s.notify(ctx, request.StudentID, notifications.TypeTutoringAccepted,
		"Tutoría confirmada",
		fmt.Sprintf("Tu tutoría \"%s\" quedó agendada para el %s de %s a %s",
			session.Title, session.ScheduledDate, session.StartTime, session.EndTime))

	s.logger.Info("Accepted tutoring request", "id", request.ID, "session_id", session.ID)
	return session, nil
}

func (s *tutoringService) Reject(ctx context.Context, userID, requestID string) (*tutoring.Request, error) {
	request, err := s.pendingRequestOf(ctx, userID, requestID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.TransitionRequest(ctx, request.ID, tutoring.RequestPending, tutoring.RequestRejected); err != nil {
		return nil, fmt.Errorf("failed to reject tutoring request: %w", err)
	}
	request.Status = tutoring.RequestRejected

	s.notify(ctx, request.StudentID, notifications.TypeTutoringRejected,
		"Solicitud de tutoría rechazada",
		fmt.Sprintf("Tu solicitud para el %s a las %s fue rechazada", request.PreferredDate, request.PreferredTime))

	s.logger.Info("Rejected tutoring request", "id", request.ID)
	return request, nil
}

// pendingRequestOf loads requestID and checks that userID owns the addressed
// instructor profile and that the request can still be answered. An expired
// request is persisted as such before ErrExpired is returned.
func (s *tutoringService) pendingRequestOf(ctx context.Context, userID, requestID string) (*tutoring.Request, error) {
	instructor, err := s.instructorFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	request, err := s.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.InstructorID != instructor.ID {
		return nil, tutoring.ErrForbidden
	}
	if request.Status != tutoring.RequestPending {
		return nil, fmt.Errorf("tutoring request is %s: %w", request.Status, tutoring.ErrInvalidState)
	}

	if request.IsExpired(s.now()) {
		err := s.repo.TransitionRequest(ctx, request.ID, tutoring.RequestPending, tutoring.RequestExpired)
		if err != nil && !errors.Is(err, tutoring.ErrInvalidState) {
			s.logger.Error("Failed to mark tutoring request expired", "id", request.ID, "error", err)
		}
		return nil, tutoring.ErrExpired
	}

	return request, nil
}

func (s *tutoringService) instructorFor(ctx context.Context, userID string) (*catalog.Instructor, error) {
	instructor, err := s.instructorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, fmt.Errorf("no instructor profile for user %s: %w", userID, tutoring.ErrForbidden)
		}
		return nil, err
	}
	return instructor, nil
}

func (s *tutoringService) sanitize(text string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(text))
}

// notify is best effort: the workflow step already succeeded.
func (s *tutoringService) notify(ctx context.Context, userID, notificationType, title, message string) {
	if _, err := s.notifier.Notify(ctx, userID, notificationType, title, message); err != nil {
		s.logger.Warn("Failed to deliver notification", "user_id", userID, "type", notificationType, "error", err)
	}
}
