package safecast

// Variant declares that P is one alternative of the closed sum type U.
//
// Each method returns ok == false when u currently holds a different
// alternative. Absence is the only failure signal; a well-formed U always
// holds exactly one alternative. A nil U, or a sealed interface holding a
// typed nil pointer, is malformed and matches no alternative.
type Variant[U, P any] interface {
	// AsVariant returns a pointer to the payload held by u. The pointer is a
	// borrowed view and callers must not write through it; use AsVariantMut
	// for in-place updates.
	AsVariant(u U) (*P, bool)

	// AsVariantMut returns a pointer to the payload stored in *u. Writes
	// through it update *u in place.
	AsVariantMut(u *U) (*P, bool)

	// IntoVariant returns a copy of the payload held by u.
	IntoVariant(u U) (P, bool)
}

// AsVariant returns a borrowed pointer to u's payload if u holds the
// alternative declared by v.
func AsVariant[U, P any](v Variant[U, P], u U) (*P, bool) {
	return v.AsVariant(u)
}

// AsVariantMut returns a pointer to the payload stored in *u if it holds the
// alternative declared by v.
func AsVariantMut[U, P any](v Variant[U, P], u *U) (*P, bool) {
	return v.AsVariantMut(u)
}

// IntoVariant returns u's payload if u holds the alternative declared by v.
// On mismatch it returns the zero P; u itself is left with the caller.
func IntoVariant[U, P any](v Variant[U, P], u U) (P, bool) {
	return v.IntoVariant(u)
}

// Case is the [Variant] declaration for sum types written as a sealed
// interface U whose alternative for payload P is the pointer type *P:
//
//	type Baz interface{ isBaz() }
//
//	type Foo struct{ N int }
//	type Bar struct{ S string }
//
//	func (*Foo) isBaz() {}
//	func (*Bar) isBaz() {}
//
//	var (
//		FooCase = safecast.NewCase(func(f *Foo) Baz { return f })
//		BarCase = safecast.NewCase(func(b *Bar) Baz { return b })
//	)
//
// A nil *P stored in U does not match.
type Case[U, P any] struct {
	wrap func(*P) U
}

// NewCase returns the [Case] for payload P of the sum type U. wrap converts
// a *P into U and is normally the identity function; writing it lets the
// compiler check that *P really is an alternative of U.
func NewCase[U, P any](wrap func(*P) U) Case[U, P] {
	return Case[U, P]{wrap: wrap}
}

// Wrap returns the sum value holding a copy of p.
func (c Case[U, P]) Wrap(p P) U {
	return c.wrap(&p)
}

// Cast implements [Caster], so a Case is also the infallible declaration
// from the payload type into the sum type.
func (c Case[U, P]) Cast(p P) U {
	return c.Wrap(p)
}

// AsVariant implements [Variant].
func (Case[U, P]) AsVariant(u U) (*P, bool) {
	p, ok := any(u).(*P)
	if !ok || p == nil {
		return nil, false
	}

	return p, true
}

// AsVariantMut implements [Variant].
func (c Case[U, P]) AsVariantMut(u *U) (*P, bool) {
	if u == nil {
		return nil, false
	}

	return c.AsVariant(*u)
}

// IntoVariant implements [Variant].
func (c Case[U, P]) IntoVariant(u U) (P, bool) {
	p, ok := c.AsVariant(u)
	if !ok {
		var zero P
		return zero, false
	}

	return *p, true
}
