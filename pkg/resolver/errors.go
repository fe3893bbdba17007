// Package resolver implements the Resolver (spec §4.4): it takes a
// loaded schema and a prepared SemConv Registry, expands every attribute
// and metric reference on every signal, applies version rewrites, and
// emits a self-contained Resolved Schema.
package resolver

import (
	"errors"
	"fmt"
)

// InvalidSchemaError wraps a YAML parse failure or an unknown-field
// rejection, carrying a source position when the parser supplied one
// (spec §7; zero Line means no position is known).
type InvalidSchemaError struct {
	PathOrURL string
	Line      int
	Column    int
	Cause     error
}

func (e *InvalidSchemaError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: invalid schema: %v", e.PathOrURL, e.Line, e.Column, e.Cause)
	}
	return fmt.Sprintf("%s: invalid schema: %v", e.PathOrURL, e.Cause)
}
func (e *InvalidSchemaError) Unwrap() error { return e.Cause }

// ParentSchemaError preserves a parent-load failure as a distinct case
// from a same-shaped failure on the schema itself (spec §7).
type ParentSchemaError struct {
	Cause error
}

func (e *ParentSchemaError) Error() string { return fmt.Sprintf("parent schema: %v", e.Cause) }
func (e *ParentSchemaError) Unwrap() error { return e.Cause }

// SemConvError covers a semconv file that is missing, fails to parse, or
// fails registry-level validation outside the more specific cases below.
type SemConvError struct {
	Message string
}

func (e *SemConvError) Error() string { return e.Message }

// FailToResolveAttributeError is raised when materializing an attribute
// (ref chase, type conversion, etc.) fails for a reason not covered by a
// more specific error.
type FailToResolveAttributeError struct {
	ID    string
	Cause error
}

func (e *FailToResolveAttributeError) Error() string {
	return fmt.Sprintf("failed to resolve attribute %q: %v", e.ID, e.Cause)
}
func (e *FailToResolveAttributeError) Unwrap() error { return e.Cause }

// FailToResolveMetricError is raised when a univariate metric Ref names a
// metric absent from the registry.
type FailToResolveMetricError struct {
	Ref string
}

func (e *FailToResolveMetricError) Error() string {
	return fmt.Sprintf("failed to resolve metric ref %q", e.Ref)
}

// IncompatibleMetricAttributesError is raised when a metric group's
// attributes cannot be reconciled with a referenced metric's attributes.
type IncompatibleMetricAttributesError struct {
	MetricGroupRef string
	MetricRef      string
	Cause          error
}

func (e *IncompatibleMetricAttributesError) Error() string {
	return fmt.Sprintf("metric group %q incompatible with metric %q: %v", e.MetricGroupRef, e.MetricRef, e.Cause)
}
func (e *IncompatibleMetricAttributesError) Unwrap() error { return e.Cause }

// AggregateError collects per-file errors from the parallel semconv-load
// phase (spec §7: "the driver aggregates per-file errors ... continuing
// to drain the worker pool so all errors are collected").
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string { return errors.Join(e.Errors...).Error() }
func (e *AggregateError) Unwrap() []error { return e.Errors }

// NewAggregateError returns nil if errs is empty, so callers can always
// write `if err := NewAggregateError(errs); err != nil`.
func NewAggregateError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &AggregateError{Errors: errs}
}
