package evict

import (
	"errors"
	"fmt"
)

// ErrorCode classifies engine failures.
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	// ErrCodeConstruction: a page or page set violates its domain constraints.
	ErrCodeConstruction
	// ErrCodeEmptyInput: a selector was given no pages to choose from.
	ErrCodeEmptyInput
	// ErrCodeUnknownPolicy: a policy name did not parse.
	ErrCodeUnknownPolicy
)

const (
	opNewPage    = "new-page"
	opNewPageSet = "new-page-set"
)

// Error carries the failing operation and, for selectors, the page set size.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Size    int
}

// Sentinels for errors.Is. Only the code is compared.
var (
	ErrConstruction  = &Error{Code: ErrCodeConstruction, Message: "invalid page data"}
	ErrEmptyInput    = &Error{Code: ErrCodeEmptyInput, Message: "empty page set"}
	ErrUnknownPolicy = &Error{Code: ErrCodeUnknownPolicy, Message: "unknown policy"}
)

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Message
	}
	if e.Code == ErrCodeEmptyInput {
		return fmt.Sprintf("%s: %s (size %d)", e.Op, e.Message, e.Size)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newConstructionError(op, msg string) *Error {
	return &Error{Code: ErrCodeConstruction, Op: op, Message: msg}
}

func newEmptyInputError(p Policy, size int) *Error {
	return &Error{
		Code:    ErrCodeEmptyInput,
		Op:      p.String(),
		Message: "no page to evict",
		Size:    size,
	}
}

// GetErrorCode returns the code of an engine error, or ErrCodeUnknown.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeUnknown
}
