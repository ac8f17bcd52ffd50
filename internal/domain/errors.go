package domain

import (
	"errors"
	"fmt"
)

// ErrorKind identifies one member of the closed set of failures the todo
// service reports. Every error that leaves the application layer carries
// exactly one kind.
type ErrorKind int

const (
	// KindUnclassified is any failure that is not one of the kinds below
	KindUnclassified ErrorKind = iota
	// KindInvalidIdentifier - identifier fails format validation
	KindInvalidIdentifier
	// KindItemNotFound - identifier is well formed but no record matches
	KindItemNotFound
	// KindDuplicateItem - the (title, description) unique index rejected a write
	KindDuplicateItem
	// KindInvalidPaginationParameter - page or limit is not positive
	KindInvalidPaginationParameter
	// KindPathNotFound - no route matches the request
	KindPathNotFound
	// KindValidation - request payload fails schema checks
	KindValidation
)

var defaultMessages = map[ErrorKind]string{
	KindUnclassified:               "Internal Server Error",
	KindInvalidIdentifier:          "Invalid ObjectId!",
	KindItemNotFound:               "Item not found!",
	KindDuplicateItem:              "Duplicate item error, unique index check failed",
	KindInvalidPaginationParameter: "Invalid pagination parameters",
	KindPathNotFound:               "Requested path not found!",
	KindValidation:                 "validation failed",
}

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "InvalidIdentifier"
	case KindItemNotFound:
		return "ItemNotFound"
	case KindDuplicateItem:
		return "DuplicateItem"
	case KindInvalidPaginationParameter:
		return "InvalidPaginationParameter"
	case KindPathNotFound:
		return "PathNotFound"
	case KindValidation:
		return "Validation"
	default:
		return "Unclassified"
	}
}

// FieldError describes one schema violation of a request payload.
type FieldError struct {
	InstancePath string            `json:"instancePath"`
	Params       map[string]string `json:"params"`
	Message      string            `json:"message"`
}

// Error is the typed failure returned by the application layer.
type Error struct {
	Kind    ErrorKind
	Message string
	Details []FieldError
	Err     error
}

// Sentinels for errors.Is. Matching is by kind, so any *Error of the same
// kind satisfies errors.Is against them.
var (
	ErrInvalidIdentifier          = &Error{Kind: KindInvalidIdentifier}
	ErrItemNotFound               = &Error{Kind: KindItemNotFound}
	ErrDuplicateItem              = &Error{Kind: KindDuplicateItem}
	ErrInvalidPaginationParameter = &Error{Kind: KindInvalidPaginationParameter}
	ErrPathNotFound               = &Error{Kind: KindPathNotFound}
	ErrValidation                 = &Error{Kind: KindValidation}
	ErrUnclassified               = &Error{Kind: KindUnclassified}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = defaultMessages[e.Kind]
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// PublicMessage is the message that may be shown to a client. Unclassified
// errors never expose their cause.
func (e *Error) PublicMessage() string {
	if e.Kind == KindUnclassified || e.Message == "" {
		return defaultMessages[e.Kind]
	}
	return e.Message
}

func newError(kind ErrorKind, message string) *Error {
	if message == "" {
		message = defaultMessages[kind]
	}
	return &Error{Kind: kind, Message: message}
}

// NewInvalidIdentifierError func
func NewInvalidIdentifierError(message string) *Error {
	return newError(KindInvalidIdentifier, message)
}

// NewItemNotFoundError func
func NewItemNotFoundError(message string) *Error {
	return newError(KindItemNotFound, message)
}

// NewDuplicateItemError func
func NewDuplicateItemError(message string) *Error {
	return newError(KindDuplicateItem, message)
}

// NewInvalidPaginationParameterError func
func NewInvalidPaginationParameterError(message string) *Error {
	return newError(KindInvalidPaginationParameter, message)
}

// NewPathNotFoundError func
func NewPathNotFoundError(message string) *Error {
	return newError(KindPathNotFound, message)
}

// NewValidationError func
func NewValidationError(message string, details []FieldError) *Error {
	e := newError(KindValidation, message)
	e.Details = details
	return e
}

// NewUnclassifiedError wraps err as an unclassified failure.
func NewUnclassifiedError(err error) *Error {
	e := newError(KindUnclassified, "")
	e.Err = err
	return e
}

// AsError returns err as an *Error, classifying anything foreign as
// KindUnclassified. It returns nil for a nil err.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return NewUnclassifiedError(err)
}
