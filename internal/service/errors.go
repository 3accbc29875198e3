package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStore      = errors.New("store failure")
	ErrRender     = errors.New("render failed")
	ErrMail       = errors.New("mail delivery failed")
)

// Kind names used by the HTTP and CLI surfaces.
const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindConflict   = "conflict"
	KindStore      = "store"
	KindRender     = "render"
	KindMail       = "mail"
	KindInternal   = "internal"
)

// KindOf classifies err by the sentinel it wraps.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrStore):
		return KindStore
	case errors.Is(err, ErrRender):
		return KindRender
	case errors.Is(err, ErrMail):
		return KindMail
	default:
		return KindInternal
	}
}

// storeError maps a repository error onto the service sentinels.
func storeError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s: %w", ErrConflict, op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	default:
		return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
	}
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func conflictError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func formatID(id int64) string {
	return fmt.Sprintf("#%d", id)
}
