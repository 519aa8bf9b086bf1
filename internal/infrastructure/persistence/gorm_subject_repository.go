package persistence

import (
	"context"
	"fmt"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/infrastructure/persistence/models"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSubjectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSubjectRepository creates a new GORM-based SubjectRepository implementation
func NewGormSubjectRepository(db *gorm.DB, logger logger.Logger) (catalog.SubjectRepository, error) {
	return &gormSubjectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSubjectRepository) Create(ctx context.Context, subject *catalog.Subject) error {
	if err := subject.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SubjectModel{}
	model.FromDomain(subject)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return duplicated(err, "subject", catalog.ErrConflict)
	}

	r.logger.Info("Created subject", "id", subject.ID, "code", subject.Code)
	return nil
}

func (r *gormSubjectRepository) List(ctx context.Context, query *catalog.SubjectQuery) ([]*catalog.Subject, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.SubjectModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SubjectModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.Code != "" {
		dbQuery = dbQuery.Where("code = ?", query.Code)
	}
	if query.ProgramID != "" {
		dbQuery = dbQuery.Where("program_id = ?", query.ProgramID)
	}
	if query.Semester > 0 {
		dbQuery = dbQuery.Where("semester = ?", query.Semester)
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
		return nil, fmt.Errorf("failed to fetch subjects: %w", err)
	}

	subjects := make([]*catalog.Subject, len(modelList))
	for i, model := range modelList {
		subjects[i] = model.ToDomain()
	}
	return subjects, nil
}

func (r *gormSubjectRepository) GetByID(ctx context.Context, subjectID string) (*catalog.Subject, error) {
	var model models.SubjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", subjectID).First(&model).Error; err != nil {
		return nil, notFound(err, "subject", subjectID, catalog.ErrNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormSubjectRepository) GetByCode(ctx context.Context, code string) (*catalog.Subject, error) {
	var model models.SubjectModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		return nil, notFound(err, "subject", code, catalog.ErrNotFound)
	}
	return model.ToDomain(), nil
}
