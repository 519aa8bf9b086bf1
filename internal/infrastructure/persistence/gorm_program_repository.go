package persistence

import (
	"context"
	"fmt"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/infrastructure/persistence/models"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProgramRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProgramRepository creates a new GORM-based ProgramRepository implementation
func NewGormProgramRepository(db *gorm.DB, logger logger.Logger) (catalog.ProgramRepository, error) {
	return &gormProgramRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProgramRepository) Create(ctx context.Context, program *catalog.Program) error {
	if err := program.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProgramModel{}
	model.FromDomain(program)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return duplicated(err, "program", catalog.ErrConflict)
	}

	r.logger.Info("Created program", "id", program.ID, "code", program.Code)
	return nil
}

func (r *gormProgramRepository) List(ctx context.Context, query *catalog.ProgramQuery) ([]*catalog.Program, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ProgramModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ProgramModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.Code != "" {
		dbQuery = dbQuery.Where("code = ?", query.Code)
	}
	if query.Faculty != "" {
		dbQuery = dbQuery.Where("faculty = ?", query.Faculty)
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
		return nil, fmt.Errorf("failed to fetch programs: %w", err)
	}

	programs := make([]*catalog.Program, len(modelList))
	for i, model := range modelList {
		programs[i] = model.ToDomain()
	}
	return programs, nil
}

func (r *gormProgramRepository) GetByID(ctx context.Context, programID string) (*catalog.Program, error) {
	var model models.ProgramModel
	if err := r.db.WithContext(ctx).Where("id = ?", programID).First(&model).Error; err != nil {
		return nil, notFound(err, "program", programID, catalog.ErrNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormProgramRepository) GetByCode(ctx context.Context, code string) (*catalog.Program, error) {
	var model models.ProgramModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		return nil, notFound(err, "program", code, catalog.ErrNotFound)
	}
	return model.ToDomain(), nil
}
