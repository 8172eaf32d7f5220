// Package apperror defines a centralized system for application-specific errors.
// Every controller failure is normalized into an *AppError carrying a category
// (which decides the HTTP status code), a resource-scoped Code from that
// controller's closed error set, and a user-facing message. Storage-layer errors
// never reach the route layer verbatim.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an application error. The category, not the code,
// decides the HTTP status of the response.
type ErrorType int

const (
	// UnknownError is the catch-all for unexpected failures.
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database.
	DatabaseError
	// ConfigError represents an error related to application configuration.
	ConfigError
	// AuthError represents an authentication error (missing/invalid credentials).
	AuthError
	// ForbiddenError represents an authorization error (authenticated but not allowed).
	ForbiddenError
	// NotFoundError represents a resource not found error.
	NotFoundError
	// ValidationError represents an input validation error.
	ValidationError
	// BadRequestError represents a generic bad request.
	BadRequestError
	// InternalError represents a generic internal server error.
	InternalError
	// MigrationError represents an error during database migrations.
	MigrationError
	// ConflictError represents a conflict, e.g. a duplicate username.
	ConflictError
)

// AppError is the application's error type. It wraps an optional underlying
// error for debugging while exposing only Message to clients.
type AppError struct {
	Type    ErrorType
	Code    string // resource-scoped discriminator, e.g. "POST_NOT_FOUND"
	Message string
	Err     error // underlying error, never serialized
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error so errors.Is / errors.As can walk the chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithCode tags the error with a resource-scoped code and returns it.
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// StatusCode returns the HTTP status code appropriate for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case DatabaseError:
		return http.StatusInternalServerError
	case ConfigError:
		return http.StatusInternalServerError
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	case InternalError:
		return http.StatusInternalServerError
	case MigrationError:
		return http.StatusInternalServerError
	case ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError of an arbitrary type.
func NewAppError(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlying,
	}
}

// NewDatabaseError creates a new DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return NewAppError(DatabaseError, message, underlying)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, underlying error) *AppError {
	return NewAppError(ConfigError, message, underlying)
}

// NewAuthError creates a new AuthError (401).
func NewAuthError(message string, underlying error) *AppError {
	return NewAppError(AuthError, message, underlying)
}

// NewForbiddenError creates a new ForbiddenError (403).
func NewForbiddenError(message string, underlying error) *AppError {
	return NewAppError(ForbiddenError, message, underlying)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return NewAppError(NotFoundError, message, underlying)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return NewAppError(ValidationError, message, underlying)
}

// NewBadRequestError creates a new BadRequestError.
func NewBadRequestError(message string, underlying error) *AppError {
	return NewAppError(BadRequestError, message, underlying)
}

// NewInternalError creates a new InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return NewAppError(InternalError, message, underlying)
}

// NewMigrationError creates a new MigrationError.
func NewMigrationError(message string, underlying error) *AppError {
	return NewAppError(MigrationError, message, underlying)
}

// NewConflictError creates a new ConflictError.
func NewConflictError(message string, underlying error) *AppError {
	return NewAppError(ConflictError, message, underlying)
}

// ErrorResponse is the JSON body sent to clients for any failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"A description of the error"`
}

// ToResponse converts an AppError to the client-facing response payload.
// Only the Message is exposed; the underlying error stays server-side.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// FromError attempts to convert a generic error to an *AppError.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// CodeOf returns the resource-scoped code of an error, or "" if it has none.
func CodeOf(err error) string {
	if ae, ok := FromError(err); ok {
		return ae.Code
	}
	return ""
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError checks if an error is an AuthError.
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsForbidden checks if an error is a ForbiddenError.
func IsForbidden(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ForbiddenError
}

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
