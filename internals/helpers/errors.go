package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnauthorized
	KindForbidden
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation_failed"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

func (k ErrorKind) Status() int {
	switch k {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindValidation:
		return fiber.StatusUnprocessableEntity
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// AppError is the only error shape handlers hand to WriteError. Message is
// what the client sees; Err stays server side.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Status() int { return e.Kind.Status() }

func NotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

func Conflict(message string, err error) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Err: err}
}

func ValidationFailed(message string, err error) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Err: err}
}

func Unauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// PostgreSQL SQLSTATE codes we classify.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgInvalidTextRepr     = "22P02"
	pgStringTooLong       = "22001"
	pgInvalidEnumValue    = "22023"
)

// FromDBError classifies a storage error. fallback is the client message
// for anything that ends up Internal; resource names the not-found message.
//
// Foreign-key violations stay Internal: a dangling reference on insert is
// reported as a server failure, not a missing resource.
func FromDBError(err error, resource, fallback string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(resource)
	}

	switch sqlState(err) {
	case pgUniqueViolation:
		return Conflict(resource+" already exists", err)
	case pgNotNullViolation, pgCheckViolation, pgInvalidTextRepr, pgStringTooLong, pgInvalidEnumValue:
		return ValidationFailed("Invalid "+lowerFirst(resource)+" data", err)
	case pgForeignKeyViolation:
		return Internal(fallback, err)
	}
	return Internal(fallback, err)
}

func sqlState(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// WriteError renders any handler error as {error: message} with the status
// of its kind. Internal causes are logged, never returned.
func WriteError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return JsonError(c, fe.Code, fe.Message)
		}
		appErr = Internal(fiber.ErrInternalServerError.Message, err)
	}

	if appErr.Kind == KindInternal && log != nil {
		log.Error(appErr.Message,
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(appErr.Err),
		)
	}
	return JsonError(c, appErr.Status(), appErr.Message)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
