package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers, one per error kind in the classification core's error
// taxonomy. Callers match against these with errors.Is; they are never
// returned bare, always wrapped in a *ClassificationError so structured
// context travels with them.
var (
	ErrInput     = errors.New("input error")
	ErrParse     = errors.New("parse error")
	ErrSchema    = errors.New("schema error")
	ErrModel     = errors.New("model error")
	ErrData      = errors.New("data error")
	ErrCancelled = errors.New("cancelled")
	ErrTimeout   = errors.New("timeout")
	ErrRegistry  = errors.New("registry error")
)

// Specific registry/model conditions, distinguished by Code on the wrapping
// ClassificationError so callers can branch without string matching.
const (
	CodeEmptyInput              = "empty_input"
	CodeUnparseable             = "unparseable"
	CodeUnknownCategory         = "unknown_category"
	CodeAlreadyExists           = "already_exists"
	CodeInvalidDefinition       = "invalid_definition"
	CodeNotFound                = "not_found"
	CodeSameCategory            = "same_category"
	CodeInvalidName             = "invalid_name"
	CodeModelNotLoaded          = "model_not_loaded"
	CodeIncompatibleFormat      = "incompatible_format"
	CodeCorruptModel            = "corrupt_model"
	CodeModelValidationFailed   = "model_validation_failed"
	CodeSchemaMismatch          = "schema_mismatch"
	CodeInferenceFailed         = "inference_failed"
	CodeEmptyDataset             = "empty_dataset"
	CodePartiallyCompleted      = "partially_completed"
)

// ClassificationError is the structured error type returned by every public
// operation in this module. It satisfies errors.Is against the Marker
// sentinel and errors.Unwrap against Cause.
type ClassificationError struct {
	Marker    error
	Component string
	Operation string
	Message   string
	Code      string
	Hint      string
	Cause     error
}

func (e *ClassificationError) Error() string {
	if e == nil {
		return ""
	}
	detail := buildDetail(e.Component, e.Operation, e.Message)
	if detail == "" {
		detail = "classification failure"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", detail, e.Cause)
	}
	return detail
}

func (e *ClassificationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func (e *ClassificationError) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	if e.Marker != nil && errors.Is(e.Marker, target) {
		return true
	}
	return errors.Is(e.Cause, target)
}

func buildDetail(component, operation, message string) string {
	var b strings.Builder
	if component != "" {
		b.WriteString(component)
	}
	if operation != "" {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(operation)
	}
	if message != "" {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(message)
	}
	return b.String()
}

// New builds a ClassificationError tagged with marker, for callers that want
// the structured fields without a separate Wrap call.
func New(marker error, component, operation, code, message string) *ClassificationError {
	return &ClassificationError{Marker: marker, Component: component, Operation: operation, Code: code, Message: message}
}

// Wrap attaches component/operation context and a Cause to marker, mirroring
// the taxonomy's "fatal to the caller, not the component" propagation rule.
func Wrap(marker error, component, operation, message string, cause error) *ClassificationError {
	return &ClassificationError{Marker: marker, Component: component, Operation: operation, Message: message, Cause: cause}
}

// WrapCode is Wrap plus a Code discriminator for conditions that need it
// (e.g. distinguishing ErrModel's several failure modes).
func WrapCode(marker error, component, operation, code, message string, cause error) *ClassificationError {
	return &ClassificationError{Marker: marker, Component: component, Operation: operation, Code: code, Message: message, Cause: cause}
}

// Details is a flat snapshot of a ClassificationError suitable for structured
// logging call sites that don't want to import this package's types directly.
type Details struct {
	Component string
	Operation string
	Message   string
	Code      string
	Hint      string
	Cause     error
}

// Explain extracts structured details from err when it is (or wraps) a
// *ClassificationError; otherwise it returns a best-effort Details with just
// the error text.
func Explain(err error) Details {
	var ce *ClassificationError
	if errors.As(err, &ce) && ce != nil {
		return Details{
			Component: ce.Component,
			Operation: ce.Operation,
			Message:   strings.TrimSpace(ce.Message),
			Code:      strings.TrimSpace(ce.Code),
			Hint:      strings.TrimSpace(ce.Hint),
			Cause:     ce.Cause,
		}
	}
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Details{Message: msg, Cause: err}
}

// Code returns the Code field of err's ClassificationError, or "" if err is
// not one.
func Code(err error) string {
	var ce *ClassificationError
	if errors.As(err, &ce) && ce != nil {
		return ce.Code
	}
	return ""
}
