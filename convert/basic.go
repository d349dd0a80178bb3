package convert

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"
	"go.dw1.io/safecast"
	"go.dw1.io/safemath"
)

// Basic is an alias for [cast.Basic].
type Basic = cast.Basic

// IntersectionType is a type constraint that matches types that are both
// [cast.Basic] and [safemath.Integer].
type IntersectionType interface {
	cast.Basic
	safemath.Integer
}

// Type is a constraint that matches every target type supported by [Loose]
// declarations and [To].
type Type interface {
	Basic | Integer
}

// Loose converts values of S into the basic type T the way [cast] does:
// numeric strings parse into numbers, numbers format into strings, and so
// on. Integer targets only accept values they can hold exactly after the
// fractional part of a float is dropped; anything out of range is rejected
// rather than wrapped.
type Loose[S any, T Type] struct{}

var (
	_ safecast.TryCaster[string, int]        = Loose[string, int]{}
	_ safecast.TryCaster[any, time.Duration] = Loose[any, time.Duration]{}
)

// CanCast reports whether v converts to T.
func (l Loose[S, T]) CanCast(v S) bool {
	_, err := l.Convert(v)
	return err == nil
}

// OptCast returns v as a T, or ok == false if it does not convert.
func (l Loose[S, T]) OptCast(v S) (T, bool) {
	to, err := l.Convert(v)
	return to, err == nil
}

// Convert is like OptCast but returns the underlying cast or safemath error.
func (Loose[S, T]) Convert(v S) (T, error) {
	return convert[T](v)
}

// Format renders basic values as strings. It is infallible for every type in
// [Basic].
type Format[S Basic] struct{}

var _ safecast.Caster[float64, string] = Format[float64]{}

// Cast implements [safecast.Caster].
func (Format[S]) Cast(v S) string {
	return cast.ToString(v)
}

// convert converts v to type T.
func convert[T Type](v any) (T, error) {
	var zero T

	switch t := any(zero).(type) {
	case int:
		return toIntOrBase[T, int](v)
	case int8:
		return toIntOrBase[T, int8](v)
	case int16:
		return toIntOrBase[T, int16](v)
	case int32:
		return toIntOrBase[T, int32](v)
	case int64:
		return toIntOrBase[T, int64](v)
	case uint:
		return toIntOrBase[T, uint](v)
	case uint8:
		return toIntOrBase[T, uint8](v)
	case uint16:
		return toIntOrBase[T, uint16](v)
	case uint32:
		return toIntOrBase[T, uint32](v)
	case uint64:
		return toIntOrBase[T, uint64](v)
	case uintptr:
		if !isIntVal(v) {
			return zero, fmt.Errorf("unsupported conversion to %T from %T", t, v)
		}

		return toInt[T, uintptr](v)
	case string:
		return toBase[T, string](v)
	case bool:
		return toBase[T, bool](v)
	case float32:
		return toBase[T, float32](v)
	case float64:
		return toBase[T, float64](v)
	case time.Time:
		return toBase[T, time.Time](v)
	case time.Duration:
		return toBase[T, time.Duration](v)
	default:
		return zero, fmt.Errorf("unsupported conversion to %T from %T", t, v)
	}
}

// toBase converts to the basic type B using spf13/cast and re-types the
// result as T (which is the caller's type parameter).
func toBase[T any, B Basic](v any) (T, error) {
	converted, err := cast.ToE[B](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// toIntOrBase converts v to the integer type I. If v is an integer, it uses
// safemath. Otherwise it parses v into the widest integer of I's signedness
// with cast.ToE and narrows that with safemath, so out-of-range input is an
// error instead of a wrapped value.
func toIntOrBase[T any, I IntersectionType](v any) (T, error) {
	if isIntVal(v) {
		return toInt[T, I](v)
	}

	var zero T

	signed := isSigned[I]()
	if err := checkFloatRange[I](v, signed); err != nil {
		return zero, err
	}

	var (
		wide any
		err  error
	)
	if signed {
		wide, err = cast.ToE[int64](v)
	} else {
		wide, err = cast.ToE[uint64](v)
	}
	if err != nil {
		return zero, err
	}

	return toInt[T, I](wide)
}

// checkFloatRange rejects float inputs that do not fit in a 64-bit integer
// of the given signedness, since converting those is implementation-defined.
// NaN is rejected too.
func checkFloatRange[I Integer](v any, signed bool) error {
	var f float64
	switch x := v.(type) {
	case float32:
		f = float64(x)
	case float64:
		f = x
	default:
		return nil
	}

	var ok bool
	if signed {
		ok = f >= math.MinInt64 && f < math.MaxInt64
	} else {
		ok = f > -1 && f < math.MaxUint64
	}

	if !ok {
		var to I
		return fmt.Errorf("%w: %v overflows %T", safemath.ErrTruncation, v, to)
	}

	return nil
}
