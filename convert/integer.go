package convert

import (
	"go.dw1.io/safecast"
	"go.dw1.io/safemath"
)

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// Exact converts between integer types, rejecting any value that the target
// type cannot represent exactly.
//
// It implements [safecast.TryCaster] for every pair of integer types,
// including uintptr and named types such as `type Port uint16`. The predicate
// and the conversion share one code path, so they always agree.
type Exact[S, T Integer] struct{}

var _ safecast.TryCaster[int32, uint16] = Exact[int32, uint16]{}

// CanCast reports whether v fits in T.
func (e Exact[S, T]) CanCast(v S) bool {
	_, err := e.Convert(v)
	return err == nil
}

// OptCast returns v as a T, or ok == false if it does not fit.
func (e Exact[S, T]) OptCast(v S) (T, bool) {
	to, err := e.Convert(v)
	return to, err == nil
}

// Convert is like OptCast but returns the safemath error describing why v
// does not fit, e.g. [safemath.ErrTruncation].
func (Exact[S, T]) Convert(v S) (T, error) {
	return safemath.Convert[T, S](v)
}

// toInt converts to the integer type I using safemath to avoid
// overflow/underflow and then re-types the result as T (which is the caller's
// type parameter).
func toInt[T any, I Integer](v any) (T, error) {
	converted, err := safemath.ConvertAny[I](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}

// isSigned reports whether the integer type I can hold negative values.
func isSigned[I Integer]() bool {
	var v I
	v--

	return v < 0
}
