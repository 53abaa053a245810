package service

import (
	"errors"
	"fmt"
	"foodgram/internal/domainerr"

	"gorm.io/gorm"
)

// notFoundOr translates a missing row into a NotFound domain error and wraps
// anything else as an infrastructure failure.
func notFoundOr(err error, entityName string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerr.NotFound(entityName, id)
	}
	return fmt.Errorf("load %s %v: %w", entityName, id, err)
}
