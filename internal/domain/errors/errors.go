package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error kinds. Causes are attached with NewDatabaseError / NewFeedError,
// and errors.Is(err, ErrX) keeps working through the wrapper.
var (
	// ErrConfiguration is returned for invalid or incomplete configuration.
	ErrConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_INVALID",
		"invalid configuration",
		"",
	)

	// ErrConnection is fatal: the database could not be reached. No retry is attempted.
	ErrConnection = NewBaseError(
		http.StatusServiceUnavailable,
		"DATABASE_CONNECTION_FAILED",
		"database connection failed",
		"",
	)

	// ErrQuery is returned when a read statement fails.
	ErrQuery = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_QUERY_FAILED",
		"database query failed",
		"",
	)

	// ErrInsert is returned when a write statement fails and was rolled back.
	ErrInsert = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_INSERT_FAILED",
		"database write failed",
		"",
	)

	// ErrFeedParse is returned when a feed file is missing or is not valid JSON.
	ErrFeedParse = NewBaseError(
		http.StatusUnprocessableEntity,
		"FEED_PARSE_FAILED",
		"product feed could not be parsed",
		"",
	)

	// ErrRecordInvalid marks a single malformed feed record or table row that was skipped.
	ErrRecordInvalid = NewBaseError(
		http.StatusBadRequest,
		"RECORD_INVALID",
		"record is invalid",
		"",
	)

	// ErrProductNotFound is returned when a SKU is unknown.
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	// ErrRefreshInProgress is returned when a refresh is requested while one is running.
	ErrRefreshInProgress = NewBaseError(
		http.StatusConflict,
		"REFRESH_IN_PROGRESS",
		"a catalog refresh is already running",
		"",
	)
)

// DatabaseError carries a driver error together with its kind (ErrConnection, ErrQuery or ErrInsert).
type DatabaseError struct {
	kind    *BaseError
	err     error
	details string
}

// NewDatabaseError wraps err as a database error of the given kind.
func NewDatabaseError(kind *BaseError, err error, details string) *DatabaseError {
	return &DatabaseError{
		kind:    kind,
		err:     errors.WithStack(err),
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseError) Error() string {
	return e.kind.message + ": " + e.err.Error()
}

// Unwrap exposes both the kind and the driver error to errors.Is / errors.As.
func (e *DatabaseError) Unwrap() []error {
	return []error{e.kind, e.err}
}

// HTTPCode returns the HTTP status code
func (e *DatabaseError) HTTPCode() int {
	return e.kind.httpCode
}

// ErrorCode returns the business error code
func (e *DatabaseError) ErrorCode() string {
	return e.kind.errorCode
}

// Message returns the user-friendly error message
func (e *DatabaseError) Message() string {
	return e.kind.message
}

// Details returns the statement or operation that failed.
func (e *DatabaseError) Details() string {
	return e.details
}

// FeedError describes a feed-level or record-level parse failure.
type FeedError struct {
	kind  *BaseError
	err   error
	field string
}

// NewFeedError wraps err as a feed error. field names the offending record or attribute, if any.
func NewFeedError(kind *BaseError, err error, field string) *FeedError {
	return &FeedError{
		kind:  kind,
		err:   err,
		field: field,
	}
}

// Error implements the error interface
func (e *FeedError) Error() string {
	if e.field == "" {
		return e.kind.message + ": " + e.err.Error()
	}

	return e.kind.message + " (" + e.field + "): " + e.err.Error()
}

// Unwrap exposes both the kind and the cause.
func (e *FeedError) Unwrap() []error {
	return []error{e.kind, e.err}
}

// HTTPCode returns the HTTP status code
func (e *FeedError) HTTPCode() int {
	return e.kind.httpCode
}

// ErrorCode returns the business error code
func (e *FeedError) ErrorCode() string {
	return e.kind.errorCode
}

// Message returns the user-friendly error message
func (e *FeedError) Message() string {
	return e.kind.message
}

// Details returns the offending field.
func (e *FeedError) Details() string {
	return e.field
}
