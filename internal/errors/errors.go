package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested draft was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyDrafting indicates the participant already occupies an active draft
	CodeAlreadyDrafting Code = "already_drafting"

	// CodeAlreadyJoined indicates the participant is already in this draft
	CodeAlreadyJoined Code = "already_joined"

	// CodeAlreadyStarted indicates the draft has already started
	CodeAlreadyStarted Code = "already_started"

	// CodeNotEnrolled indicates the participant has no active draft
	CodeNotEnrolled Code = "not_enrolled"

	// CodePermissionDenied indicates the caller does not have permission
	CodePermissionDenied Code = "permission_denied"

	// CodeNoOpenPack indicates the player has no open pack to pick from
	CodeNoOpenPack Code = "no_open_pack"

	// CodeCardNotInPack indicates the card code is not in the open pack
	CodeCardNotInPack Code = "card_not_in_pack"

	// CodeCatalogUnavailable indicates card data could not be loaded
	CodeCatalogUnavailable Code = "catalog_unavailable"

	// CodeNotificationFailed indicates a message could not be delivered
	CodeNotificationFailed Code = "notification_failed"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	// Otherwise, create unknown error
	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyDrafting creates an already drafting error
func AlreadyDrafting(message string) *Error {
	return New(CodeAlreadyDrafting, message)
}

// AlreadyDraftingf creates a formatted already drafting error
func AlreadyDraftingf(format string, args ...any) *Error {
	return Newf(CodeAlreadyDrafting, format, args...)
}

// AlreadyJoined creates an already joined error
func AlreadyJoined(message string) *Error {
	return New(CodeAlreadyJoined, message)
}

// AlreadyStarted creates an already started error
func AlreadyStarted(message string) *Error {
	return New(CodeAlreadyStarted, message)
}

// AlreadyStartedf creates a formatted already started error
func AlreadyStartedf(format string, args ...any) *Error {
	return Newf(CodeAlreadyStarted, format, args...)
}

// NotEnrolled creates a not enrolled error
func NotEnrolled(message string) *Error {
	return New(CodeNotEnrolled, message)
}

// PermissionDenied creates a permission denied error
func PermissionDenied(message string) *Error {
	return New(CodePermissionDenied, message)
}

// NoOpenPack creates a no open pack error
func NoOpenPack(message string) *Error {
	return New(CodeNoOpenPack, message)
}

// CardNotInPack creates a card not in pack error
func CardNotInPack(message string) *Error {
	return New(CodeCardNotInPack, message)
}

// CardNotInPackf creates a formatted card not in pack error
func CardNotInPackf(format string, args ...any) *Error {
	return Newf(CodeCardNotInPack, format, args...)
}

// CatalogUnavailable creates a catalog unavailable error
func CatalogUnavailable(message string) *Error {
	return New(CodeCatalogUnavailable, message)
}

// NotificationFailed creates a notification failed error
func NotificationFailed(message string) *Error {
	return New(CodeNotificationFailed, message)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsAlreadyDrafting checks if the error is an already drafting error
func IsAlreadyDrafting(err error) bool {
	return Is(err, CodeAlreadyDrafting)
}

// IsAlreadyJoined checks if the error is an already joined error
func IsAlreadyJoined(err error) bool {
	return Is(err, CodeAlreadyJoined)
}

// IsAlreadyStarted checks if the error is an already started error
func IsAlreadyStarted(err error) bool {
	return Is(err, CodeAlreadyStarted)
}

// IsNotEnrolled checks if the error is a not enrolled error
func IsNotEnrolled(err error) bool {
	return Is(err, CodeNotEnrolled)
}

// IsPermissionDenied checks if the error is a permission denied error
func IsPermissionDenied(err error) bool {
	return Is(err, CodePermissionDenied)
}

// IsNoOpenPack checks if the error is a no open pack error
func IsNoOpenPack(err error) bool {
	return Is(err, CodeNoOpenPack)
}

// IsCardNotInPack checks if the error is a card not in pack error
func IsCardNotInPack(err error) bool {
	return Is(err, CodeCardNotInPack)
}

// IsCatalogUnavailable checks if the error is a catalog unavailable error
func IsCatalogUnavailable(err error) bool {
	return Is(err, CodeCatalogUnavailable)
}

// IsNotificationFailed checks if the error is a notification failed error
func IsNotificationFailed(err error) bool {
	return Is(err, CodeNotificationFailed)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// GetCode returns the error code, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
