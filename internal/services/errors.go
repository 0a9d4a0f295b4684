package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"qtravel/internal/sqlerr"
	"qtravel/pkg/utils"
)

// translateStorageError turns gorm and driver errors into the sentinels
// understood by utils.HandleServiceError.
func translateStorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrNotFound
	}

	e := sqlerr.Classify(err)
	if e == nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	switch e.Code {
	case sqlerr.UniqueViolation:
		return fmt.Errorf("%w: %s", utils.ErrAlreadyExists, sqlerr.UserMessage(e))
	case sqlerr.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", utils.ErrReferenceMissing, sqlerr.UserMessage(e))
	case sqlerr.CheckViolation, sqlerr.NotNullViolation:
		return fmt.Errorf("%w: %s", utils.ErrConstraintViolated, sqlerr.UserMessage(e))
	default:
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
}

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, utils.ErrNotFound)
}

// deleteError reports a missing row as "<entity> record not found".
func deleteError(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	return translateStorageError(err)
}
