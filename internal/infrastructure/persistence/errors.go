package persistence

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// notFound maps gorm.ErrRecordNotFound onto the domain's not-found error.
func notFound(err error, entity, id string, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", entity, id, domainErr)
	}
	return fmt.Errorf("failed to fetch %s: %w", entity, err)
}

// duplicated maps a unique constraint violation onto the domain's conflict error.
func duplicated(err error, entity string, domainErr error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", entity, domainErr)
	}
	return fmt.Errorf("failed to create %s: %w", entity, err)
}

func orderClause(sortBy, sortOrder string) string {
	if sortOrder == "" {
		sortOrder = "asc"
	}
	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}
