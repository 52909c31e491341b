package errors

import (
	"errors"
	"fmt"
)

// Stage names the pipeline step an error belongs to.
type Stage string

const (
	StageConfig  Stage = "config"
	StageNames   Stage = "names"
	StageCourses Stage = "courses"
	StageReport  Stage = "report"
	StageMetrics Stage = "metrics"
	StageUnknown Stage = "unknown"
)

// Error represents a typed run failure tied to the stage that raised it.
type Error struct {
	Code    string `json:"code"`
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code, so wrapped copies still match the
// predefined values below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, stage Stage, message string) *Error {
	return &Error{Code: code, Stage: stage, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, stage Stage, message string) *Error {
	return &Error{Code: code, Stage: stage, Message: message, Err: err}
}

// Predefined errors for the I/O-level failures that abort a run.
var (
	ErrInvalidConfig     = New("INVALID_CONFIG", StageConfig, "invalid configuration")
	ErrNamesUnreadable   = New("NAMES_UNREADABLE", StageNames, "name directory could not be read")
	ErrCoursesUnreadable = New("COURSES_UNREADABLE", StageCourses, "course grades could not be read")
	ErrReportUnwritable  = New("REPORT_UNWRITABLE", StageReport, "report could not be written")
	ErrMetricsUnwritable = New("METRICS_UNWRITABLE", StageMetrics, "metrics could not be written")
	ErrInternal          = New("INTERNAL_ERROR", StageUnknown, "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Stage, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
