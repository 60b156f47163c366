package errors

import (
	"net/http"

	"lapak/internal/errors"
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

// Is matches errors by business code, so a WithDetails-derived error still
// satisfies errors.Is against its base sentinel.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Pengguna tidak ditemukan",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email ini sudah terdaftar",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Gagal membuat akun pengguna",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Gagal memperbarui akun pengguna",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email atau kata sandi salah",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Gagal memproses kata sandi",
		"",
	)

	// Onboarding-related errors
	ErrStepLocked = NewBaseError(
		http.StatusConflict,
		"STEP_LOCKED",
		"Selesaikan langkah saat ini terlebih dahulu",
		"",
	)

	ErrOnboardingCompleted = NewBaseError(
		http.StatusConflict,
		"ONBOARDING_COMPLETED",
		"Proses onboarding sudah selesai",
		"",
	)

	ErrUnsavedDrafts = NewBaseError(
		http.StatusConflict,
		"UNSAVED_DRAFTS",
		"Ada perubahan yang belum disimpan",
		"",
	)

	ErrEmptyKnowledgeBase = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_KNOWLEDGE_BASE",
		"Tambahkan minimal satu sumber pengetahuan terlebih dahulu",
		"",
	)

	ErrStatusTrackerFailed = NewBaseError(
		http.StatusBadGateway,
		"STATUS_TRACKER_FAILED",
		"Gagal menyimpan progres onboarding",
		"",
	)

	// Knowledge-base errors
	ErrEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTRY_NOT_FOUND",
		"Sumber pengetahuan tidak ditemukan",
		"",
	)

	ErrPromptGenerationFailed = NewBaseError(
		http.StatusBadGateway,
		"PROMPT_GENERATION_FAILED",
		"Gagal menghasilkan system prompt, silakan coba lagi",
		"",
	)

	ErrDocumentUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"DOCUMENT_UPLOAD_FAILED",
		"Gagal mengunggah dokumen",
		"",
	)

	// Feature-selection errors
	ErrFeatureLocked = NewBaseError(
		http.StatusBadRequest,
		"FEATURE_LOCKED",
		"Fitur ini belum dapat diaktifkan",
		"",
	)

	// Business-profile errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profil bisnis tidak ditemukan",
		"",
	)

	ErrProfileIncomplete = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_INCOMPLETE",
		"Lengkapi data profil bisnis terlebih dahulu",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Data yang dikirim tidak valid",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Transaksi basis data gagal",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Terjadi kesalahan pada sistem",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Akses ditolak",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Sumber daya tidak ditemukan",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Eksekusi basis data gagal"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
