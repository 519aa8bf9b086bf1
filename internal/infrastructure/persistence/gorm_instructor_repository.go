package persistence

import (
	"context"
	"fmt"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/infrastructure/persistence/models"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormInstructorRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormInstructorRepository creates a new GORM-based InstructorRepository implementation
func NewGormInstructorRepository(db *gorm.DB, logger logger.Logger) (catalog.InstructorRepository, error) {
	return &gormInstructorRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Create stores the instructor together with its instructor_subjects rows.
func (r *gormInstructorRepository) Create(ctx context.Context, instructor *catalog.Instructor) error {
	if err := instructor.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.InstructorModel{}
	model.FromDomain(instructor)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return duplicated(err, "instructor", catalog.ErrConflict)
	}

	r.logger.Info("Created instructor", "id", instructor.ID, "subjects", len(instructor.SubjectIDs))
	return nil
}

func (r *gormInstructorRepository) List(ctx context.Context, query *catalog.InstructorQuery) ([]*catalog.Instructor, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.InstructorModel
	dbQuery := r.db.WithContext(ctx).Model(&models.InstructorModel{}).Preload("Subjects")

	if query.Name != "" {
		pattern := "%" + query.Name + "%"
		dbQuery = dbQuery.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern)
	}
	if query.Department != "" {
		dbQuery = dbQuery.Where("department = ?", query.Department)
	}
	if query.SubjectID != "" {
		teaching := r.db.Model(&models.InstructorSubjectModel{}).
			Select("instructor_id").
			Where("subject_id = ?", query.SubjectID)
		dbQuery = dbQuery.Where("id IN (?)", teaching)
	}

	if query.SortBy != "" {
		dbQuery = dbQuery.Order(orderClause(query.SortBy, query.SortOrder))
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch instructors: %w", err)
	}

	instructors := make([]*catalog.Instructor, len(modelList))
	for i, model := range modelList {
		instructors[i] = model.ToDomain()
	}
	return instructors, nil
}

func (r *gormInstructorRepository) GetByID(ctx context.Context, instructorID string) (*catalog.Instructor, error) {
	return r.first(ctx, "id = ?", instructorID)
}

func (r *gormInstructorRepository) GetByEmail(ctx context.Context, email string) (*catalog.Instructor, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *gormInstructorRepository) GetByUserID(ctx context.Context, userID string) (*catalog.Instructor, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *gormInstructorRepository) first(ctx context.Context, cond string, value string) (*catalog.Instructor, error) {
	var model models.InstructorModel
	if err := r.db.WithContext(ctx).Preload("Subjects").Where(cond, value).First(&model).Error; err != nil {
		return nil, notFound(err, "instructor", value, catalog.ErrNotFound)
	}
	return model.ToDomain(), nil
}

// UpdateByID overwrites every column and replaces the subject list.
func (r *gormInstructorRepository) UpdateByID(ctx context.Context, instructor *catalog.Instructor) error {
	if err := instructor.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.InstructorModel{}
	model.FromDomain(instructor)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.InstructorModel{}).
			Where("id = ?", instructor.ID).
			Select("*").
			Omit("ID", "Subjects").
			Updates(model)
		if result.Error != nil {
			return duplicated(result.Error, "instructor", catalog.ErrConflict)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("instructor %s: %w", instructor.ID, catalog.ErrNotFound)
		}

		if err := tx.Where("instructor_id = ?", instructor.ID).
			Delete(&models.InstructorSubjectModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear instructor subjects: %w", err)
		}
		if len(model.Subjects) > 0 {
			if err := tx.Create(&model.Subjects).Error; err != nil {
				return fmt.Errorf("failed to store instructor subjects: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated instructor", "id", instructor.ID)
	return nil
}
