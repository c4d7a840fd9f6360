package errors

import "errors"

// Kind classifies a client-side failure so callers can decide whether to
// surface it, retry it, or ignore it.
type Kind int

const (
	// KindValidation is a client-side input failure; the request was never sent.
	KindValidation Kind = iota
	// KindNetwork is a transport failure (timeout, refused connection).
	KindNetwork
	// KindServer is a non-2xx response from the API.
	KindServer
	// KindNotFound means the target no longer exists server-side; safe to
	// treat as already resolved.
	KindNotFound
	// KindDuplicateAction is a no-op the client rejects before any network
	// call (renaming a list to its own name, re-adding a member).
	KindDuplicateAction
)

// AppError is the error type crossing the command boundary. Message is
// user-presentable; for server failures it carries the API's message field.
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// New creates an AppError with an explicit kind
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Helper constructors per kind
func Validation(msg string) *AppError {
	return New(KindValidation, msg)
}

func Network(msg string) *AppError {
	return New(KindNetwork, msg)
}

func Server(msg string) *AppError {
	return New(KindServer, msg)
}

func NotFound(msg string) *AppError {
	return New(KindNotFound, msg)
}

func DuplicateAction(msg string) *AppError {
	return New(KindDuplicateAction, msg)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
