package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Sign-in and account-creation failures map to a closed set of codes so the
// dashboard can show a stable message per kind.
const (
	CodeEmailAlreadyInUse   = "EMAIL_ALREADY_IN_USE"
	CodeInvalidEmail        = "INVALID_EMAIL"
	CodeOperationNotAllowed = "OPERATION_NOT_ALLOWED"
	CodeWeakPassword        = "WEAK_PASSWORD"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeUserDisabled        = "USER_DISABLED"
)

func EmailAlreadyInUse(err error) *AppError {
	return &AppError{
		Code:    CodeEmailAlreadyInUse,
		Message: "This email is already in use",
		Status:  http.StatusConflict,
		Err:     err,
	}
}

func InvalidEmail(err error) *AppError {
	return &AppError{
		Code:    CodeInvalidEmail,
		Message: "The email address is not valid",
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func OperationNotAllowed(err error) *AppError {
	return &AppError{
		Code:    CodeOperationNotAllowed,
		Message: "Email/password accounts are not enabled",
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func WeakPassword(err error) *AppError {
	return &AppError{
		Code:    CodeWeakPassword,
		Message: "The password is too weak",
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func InvalidCredentials(err error) *AppError {
	return &AppError{
		Code:    CodeInvalidCredentials,
		Message: "Invalid email or password",
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func UserDisabled(err error) *AppError {
	return &AppError{
		Code:    CodeUserDisabled,
		Message: "This account has been disabled",
		Status:  http.StatusForbidden,
		Err:     err,
	}
}
