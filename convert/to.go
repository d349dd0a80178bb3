package convert

import (
	"fmt"

	"go.dw1.io/safecast"
)

// To converts v to type T.
//
// Failures are reported as a [*safecast.CastError] naming the dynamic type of
// v and T, wrapping the cast or safemath error that caused them.
func To[T Type](v any) (T, error) {
	to, err := convert[T](v)
	if err != nil {
		return to, &safecast.CastError{
			Source: fmt.Sprintf("%T", v),
			Target: safecast.TypeName[T](),
			Err:    err,
		}
	}

	return to, nil
}

// ToMust converts v to type T and panics on error.
func ToMust[T Type](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}
