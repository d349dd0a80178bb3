package safecast

// Caster declares that every value of S can be converted into a T.
//
// Cast must not fail or panic for any value of S. Conversions that can fail
// belong in a [TryCaster] instead; the protocol has no guard against a Caster
// that breaks this promise.
type Caster[S, T any] interface {
	Cast(S) T
}

// CastFunc adapts an ordinary function to a [Caster].
type CastFunc[S, T any] func(S) T

// Cast calls f(v).
func (f CastFunc[S, T]) Cast(v S) T {
	return f(v)
}

// Cast converts v into a T using the declaration c.
func Cast[S, T any](c Caster[S, T], v S) T {
	return c.Cast(v)
}

// Infallible returns the [TryCaster] derived from c: its predicate accepts
// every value and its conversion always succeeds.
//
// It lets code written against [TryCaster] consume infallible declarations
// without a second, hand-written declaration for the same pair.
func Infallible[S, T any](c Caster[S, T]) TryCaster[S, T] {
	return infallible[S, T]{c: c}
}

type infallible[S, T any] struct {
	c Caster[S, T]
}

func (infallible[S, T]) CanCast(S) bool {
	return true
}

func (i infallible[S, T]) OptCast(v S) (T, bool) {
	return i.c.Cast(v), true
}

// Compose chains two infallible declarations into one from A to C.
func Compose[A, B, C any](ab Caster[A, B], bc Caster[B, C]) Caster[A, C] {
	return CastFunc[A, C](func(v A) C {
		return bc.Cast(ab.Cast(v))
	})
}
