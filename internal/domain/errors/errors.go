package errors

import (
	"fmt"
	"net/http"

	"wearsync/internal/errors"
)

// Kind classifies a failure so callers can branch on it without inspecting concrete types.
type Kind string

const (
	KindUnknown        Kind = ""
	KindValidation     Kind = "VALIDATION"
	KindStateMismatch  Kind = "STATE_MISMATCH"
	KindMalformedState Kind = "MALFORMED_STATE"
	KindExchange       Kind = "EXCHANGE"
	KindRefresh        Kind = "REFRESH"
	KindProviderAPI    Kind = "PROVIDER_API"
	KindCrypto         Kind = "CRYPTO"
	KindNotConnected   Kind = "NOT_CONNECTED"
	KindStorage        Kind = "STORAGE"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// KindOf returns the kind of the first AppError in err's tree.
func KindOf(err error) Kind {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindUnknown
}

// HTTPStatusOf returns the status of the first AppError in err's tree, or 500.
func HTTPStatusOf(err error) int {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewValidationError reports missing or malformed caller input.
func NewValidationError(message string) *BaseError {
	return NewBaseError(KindValidation, http.StatusBadRequest, "VALIDATION_FAILED", message, "")
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
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

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches copies made by WithDetails against their origin.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.kind == e.kind && t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrMissingUserID = NewValidationError("missing user_id")

	ErrMissingPKCECookie = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PKCE_COOKIE_MISSING",
		"missing PKCE cookie from /auth/fitbit/start",
		"",
	)

	ErrPendingAuthorizationExpired = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PKCE_EXPIRED",
		"authorization attempt expired, start again",
		"",
	)

	ErrStateMismatch = NewBaseError(
		KindStateMismatch,
		http.StatusBadRequest,
		"STATE_MISMATCH",
		"state mismatch",
		"",
	)

	ErrMalformedState = NewBaseError(
		KindMalformedState,
		http.StatusBadRequest,
		"STATE_MALFORMED",
		"bad state format (no user_id)",
		"",
	)

	ErrNotConnected = NewBaseError(
		KindNotConnected,
		http.StatusNotFound,
		"NOT_CONNECTED",
		"no fitbit connection",
		"",
	)
)

// ProviderError is a non-success answer from the wearable provider.
// Status is zero when the request never produced a response.
type ProviderError struct {
	kind   Kind
	Status int
	Body   string
	cause  error
}

// NewExchangeError reports a failed authorization code exchange.
func NewExchangeError(status int, body string, cause error) *ProviderError {
	return &ProviderError{kind: KindExchange, Status: status, Body: body, cause: cause}
}

// NewRefreshError reports a failed token refresh.
func NewRefreshError(status int, body string, cause error) *ProviderError {
	return &ProviderError{kind: KindRefresh, Status: status, Body: body, cause: cause}
}

// NewProviderAPIError reports a failed data call.
func NewProviderAPIError(status int, body string, cause error) *ProviderError {
	return &ProviderError{kind: KindProviderAPI, Status: status, Body: body, cause: cause}
}

func (e *ProviderError) Error() string {
	msg := e.Message()
	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}

	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.cause
}

func (e *ProviderError) Kind() Kind {
	return e.kind
}

func (e *ProviderError) HTTPCode() int {
	switch e.kind {
	case KindExchange:
		return http.StatusBadRequest
	case KindRefresh:
		return http.StatusUnauthorized
	default:
		if e.Status >= http.StatusBadRequest && e.Status <= 599 {
			return e.Status
		}

		return http.StatusBadGateway
	}
}

func (e *ProviderError) ErrorCode() string {
	switch e.kind {
	case KindExchange:
		return "TOKEN_EXCHANGE_FAILED"
	case KindRefresh:
		return "TOKEN_REFRESH_FAILED"
	default:
		return "PROVIDER_API_ERROR"
	}
}

func (e *ProviderError) Message() string {
	switch e.kind {
	case KindExchange:
		return fmt.Sprintf("token exchange failed %d: %s", e.Status, e.Body)
	case KindRefresh:
		return "token refresh failed: " + e.Body
	default:
		return "Fitbit API error: " + e.Body
	}
}

func (e *ProviderError) Details() string {
	return e.Body
}

// CryptoError means stored secrets could not be sealed or opened.
type CryptoError struct {
	op  string
	err error
}

// NewCryptoError creates a crypto failure for the given operation.
func NewCryptoError(op string, err error) AppError {
	return &CryptoError{op: op, err: err}
}

func (e *CryptoError) Error() string {
	return errors.Wrapf(e.err, "crypto %s failed", e.op).Error()
}

func (e *CryptoError) Unwrap() error {
	return e.err
}

func (e *CryptoError) Kind() Kind {
	return KindCrypto
}

func (e *CryptoError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *CryptoError) ErrorCode() string {
	return "CRYPTO_FAILED"
}

func (e *CryptoError) Message() string {
	return "stored credentials could not be read"
}

func (e *CryptoError) Details() string {
	return e.op
}

// StorageError represents a persistence failure, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a persistence-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
}

func (e *StorageError) Unwrap() error {
	return e.err
}

func (e *StorageError) Kind() Kind {
	return KindStorage
}

func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *StorageError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *StorageError) Message() string {
	return "database error while saving wearable data"
}

func (e *StorageError) Details() string {
	return e.details
}
