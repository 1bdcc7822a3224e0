// Package errors provides the error and warning system used across featselect.
// Every aggregation failure is a caller contract violation, never a transient
// condition, so the types here are structured for inspection rather than retry.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("featselect-Warning: %v\n", w)
	}
	// zerolog sink, wired lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the process-wide warning handler.
// Warnings are advisory (for example an importance vector that cannot be
// normalized); callers that want silence can install a no-op handler:
//
//	errors.SetWarningHandler(func(w error) {})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc routes warnings through a zerolog-backed sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the zerolog sink when one is configured,
// falling back to the plain handler otherwise.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// UndefinedMetricWarning is raised when an aggregate value is ill-defined for
// the given input and a conventional fallback value is used instead.
// Example: a fold whose model-native importances sum to zero cannot be
// normalized, so the fold is kept with all-zero weights.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // value substituted under this condition
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning creates a new UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// EmptyInputError is returned when a reduction receives zero data points for
// some key, e.g. a method with no cross-validation folds.
type EmptyInputError struct {
	Op  string
	Key string
}

func (e *EmptyInputError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("featselect: %s: no input data for %q", e.Op, e.Key)
	}
	return fmt.Sprintf("featselect: %s: no input data", e.Op)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *EmptyInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("key", e.Key).
		Str("type", "EmptyInputError")
}

// NewEmptyInputError creates a new EmptyInputError with a stack trace attached.
func NewEmptyInputError(op, key string) error {
	err := &EmptyInputError{Op: op, Key: key}
	return errors.WithStack(err)
}

// MethodNotFoundError is returned when a lookup by feature-selection method
// (and optionally importance kind) finds no records in an aggregate.
type MethodNotFoundError struct {
	Method string
	Kind   string
}

func (e *MethodNotFoundError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("featselect: no records for method %q with importance kind %q", e.Method, e.Kind)
	}
	return fmt.Sprintf("featselect: no records for method %q", e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *MethodNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("method", e.Method).
		Str("kind", e.Kind).
		Str("type", "MethodNotFoundError")
}

// NewMethodNotFoundError creates a new MethodNotFoundError with a stack trace attached.
func NewMethodNotFoundError(method, kind string) error {
	err := &MethodNotFoundError{Method: method, Kind: kind}
	return errors.WithStack(err)
}

// EmptyCollectionError is returned when an operation needs more inputs than it
// was given, e.g. overlap coefficients requested over fewer than two gene lists.
type EmptyCollectionError struct {
	Op   string
	Need int
	Got  int
}

func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("featselect: %s: need at least %d inputs, got %d", e.Op, e.Need, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *EmptyCollectionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("need", e.Need).
		Int("got", e.Got).
		Str("type", "EmptyCollectionError")
}

// NewEmptyCollectionError creates a new EmptyCollectionError with a stack trace attached.
func NewEmptyCollectionError(op string, need, got int) error {
	err := &EmptyCollectionError{Op: op, Need: need, Got: got}
	return errors.WithStack(err)
}

// DimensionError is returned when input dimensions differ from what the
// operation expects, e.g. misaligned identifier namespaces in a gene list.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows/entries, 1 for columns/namespaces
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("featselect: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError is returned when a caller-supplied parameter fails
// validation, e.g. a non-positive top-N count.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("featselect: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError is returned for generally inappropriate argument values.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("featselect: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Sentinel errors
//
// ===========================================================================

var (
	// ErrNotImplemented signals an unimplemented feature.
	ErrNotImplemented = New("not implemented")

	// ErrEmptyData signals empty input data.
	ErrEmptyData = New("empty data")
)
