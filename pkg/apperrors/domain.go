package apperrors

import "net/http"

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus rejects a status value outside the allowed set.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrExternalService reports a failure of an upstream dependency.
func ErrExternalService(err error, domain string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, "Upstream service unavailable", http.StatusServiceUnavailable)
}

// Predefined errors for frequent static conditions.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"Already applied for this job",
	http.StatusConflict,
)

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"Not authorized to manage this job",
	http.StatusForbidden,
)

var ErrNotApplicationOwner = New(
	CodeForbidden,
	"application",
	"Not authorized to manage this application",
	http.StatusForbidden,
)

var ErrCannotDeleteAdmin = New(
	CodeForbidden,
	"admin",
	"Cannot delete admin users",
	http.StatusForbidden,
)

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
