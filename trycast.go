package safecast

// TryCaster declares that some values of S can be converted into a T.
//
// Implementations must keep the two methods consistent: CanCast(v) reports
// true exactly when OptCast(v) returns ok. CanCast receives a copy of the
// value and must be free of side effects. The protocol cannot check the
// invariant; a declaration that breaks it gets unspecified results from the
// derived operations.
type TryCaster[S, T any] interface {
	// CanCast reports whether v can be converted.
	CanCast(v S) bool

	// OptCast converts v, or returns ok == false if v cannot be converted.
	OptCast(v S) (T, bool)
}

// TryCastFuncs adapts a predicate and a conversion function to a
// [TryCaster]. Both fields must be set.
type TryCastFuncs[S, T any] struct {
	Can func(S) bool
	Opt func(S) (T, bool)
}

// CanCast calls f.Can(v).
func (f TryCastFuncs[S, T]) CanCast(v S) bool {
	return f.Can(v)
}

// OptCast calls f.Opt(v).
func (f TryCastFuncs[S, T]) OptCast(v S) (T, bool) {
	return f.Opt(v)
}

// CanCast reports whether v can be converted by c.
func CanCast[S, T any](c TryCaster[S, T], v S) bool {
	return c.CanCast(v)
}

// Matches is [CanCast] under the name used at pattern-matching call sites,
// where several declarations are probed against one value in turn.
func Matches[S, T any](c TryCaster[S, T], v S) bool {
	return c.CanCast(v)
}

// OptCast converts v using c. ok is false if v cannot be converted.
func OptCast[S, T any](c TryCaster[S, T], v S) (T, bool) {
	return c.OptCast(v)
}

// TryCast converts v using c.
//
// The caller does not need to consult [CanCast] first. When v cannot be
// converted TryCast returns a [*CastError] naming S and T, which matches
// [ErrInfeasible].
func TryCast[S, T any](c TryCaster[S, T], v S) (T, error) {
	if to, ok := c.OptCast(v); ok {
		return to, nil
	}

	var zero T
	return zero, NewCastError[S, T](nil)
}

// TryCastWith is like [TryCast] but builds the error by calling onErr with
// the rejected value. onErr is not called on success. A nil onErr behaves
// like [TryCast].
func TryCastWith[S, T any](c TryCaster[S, T], v S, onErr func(S) error) (T, error) {
	if onErr == nil {
		return TryCast(c, v)
	}

	if to, ok := c.OptCast(v); ok {
		return to, nil
	}

	var zero T
	return zero, onErr(v)
}

// MustCast is like [TryCast] but panics if v cannot be converted.
func MustCast[S, T any](c TryCaster[S, T], v S) T {
	to, err := TryCast(c, v)
	if err != nil {
		panic(err)
	}

	return to
}
