package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/infrastructure/persistence/models"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTutoringRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTutoringRepository creates a new GORM-based tutoring Repository implementation
func NewGormTutoringRepository(db *gorm.DB, logger logger.Logger) (tutoring.Repository, error) {
	return &gormTutoringRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTutoringRepository) CreateRequest(ctx context.Context, request *tutoring.Request) error {
	if err := request.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TutoringRequestModel{}
	model.FromDomain(request)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tutoring request: %w", err)
	}

	r.logger.Info("Created tutoring request", "id", request.ID, "instructor_id", request.InstructorID)
	return nil
}

func (r *gormTutoringRepository) GetRequestByID(ctx context.Context, requestID string) (*tutoring.Request, error) {
	var model models.TutoringRequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", requestID).First(&model).Error; err != nil {
		return nil, notFound(err, "tutoring request", requestID, tutoring.ErrNotFound)
	}
	return model.ToDomain(), nil
}

// ListRequests returns matching requests, newest first.
func (r *gormTutoringRepository) ListRequests(ctx context.Context, query *tutoring.RequestQuery) ([]*tutoring.Request, error) {
	var modelList []*models.TutoringRequestModel
	dbQuery := r.db.WithContext(ctx).Model(&models.TutoringRequestModel{})

	if query.StudentID != "" {
		dbQuery = dbQuery.Where("student_id = ?", query.StudentID)
	}
	if query.InstructorID != "" {
		dbQuery = dbQuery.Where("instructor_id = ?", query.InstructorID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	if err := dbQuery.Order("date_time_created desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tutoring requests: %w", err)
	}

	requests := make([]*tutoring.Request, len(modelList))
	for i, model := range modelList {
		requests[i] = model.ToDomain()
	}
	return requests, nil
}

func (r *gormTutoringRepository) TransitionRequest(ctx context.Context, requestID, from, to string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return transition(tx, requestID, from, to)
	})
	if err != nil {
		return err
	}

	r.logger.Info("Moved tutoring request", "id", requestID, "from", from, "to", to)
	return nil
}

// AcceptRequest flips the request to accepted and stores its session in one transaction.
func (r *gormTutoringRepository) AcceptRequest(ctx context.Context, requestID string, session *tutoring.Session) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TutoringSessionModel{}
	model.FromDomain(session)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := transition(tx, requestID, tutoring.RequestPending, tutoring.RequestAccepted); err != nil {
			return err
		}
		if err := tx.Create(model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("session for request %s: %w", requestID, tutoring.ErrInvalidState)
			}
			return fmt.Errorf("failed to create tutoring session: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Accepted tutoring request", "id", requestID, "session_id", session.ID)
	return nil
}

// transition is a compare-and-set on the request status. A miss is reported as
// ErrNotFound when the row is absent and ErrInvalidState otherwise.
func transition(tx *gorm.DB, requestID, from, to string) error {
	result := tx.Model(&models.TutoringRequestModel{}).
		Where("id = ? AND status = ?", requestID, from).
		Update("status", to)
	if result.Error != nil {
		return fmt.Errorf("failed to update tutoring request: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.TutoringRequestModel{}).Where("id = ?", requestID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to fetch tutoring request: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("tutoring request %s: %w", requestID, tutoring.ErrNotFound)
	}
	return fmt.Errorf("tutoring request %s: %w", requestID, tutoring.ErrInvalidState)
}
