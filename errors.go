package safecast

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInfeasible indicates that a source value cannot be converted to the
// requested target type.
//
// Every [*CastError] matches it through [errors.Is].
var ErrInfeasible = errors.New("safecast: conversion infeasible")

// CastError reports a failed fallible conversion. Source and Target hold the
// Go type names of the pair involved.
type CastError struct {
	Source string
	Target string

	// Err is the underlying cause reported by the declaration, if any.
	Err error
}

// NewCastError returns a [*CastError] for the pair (S, T) wrapping cause,
// which may be nil.
func NewCastError[S, T any](cause error) *CastError {
	return &CastError{
		Source: TypeName[S](),
		Target: TypeName[T](),
		Err:    cause,
	}
}

// Error implements the error interface.
func (e *CastError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("safecast: cannot cast %s to %s: %v", e.Source, e.Target, e.Err)
	}

	return fmt.Sprintf("safecast: cannot cast %s to %s", e.Source, e.Target)
}

// Is reports whether target is [ErrInfeasible].
func (e *CastError) Is(target error) bool {
	return target == ErrInfeasible
}

// Unwrap returns the underlying cause.
func (e *CastError) Unwrap() error {
	return e.Err
}

// TypeName returns the Go name of T as printed by %T, e.g. "int32" or
// "time.Duration". Interface types are named too.
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
