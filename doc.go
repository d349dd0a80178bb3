// Package safecast defines a small protocol for converting between Go types.
//
// A conversion is declared once per ordered (source, target) pair by a value
// that implements one of three capabilities:
//
//   - [Caster] for conversions that always succeed.
//   - [TryCaster] for conversions that only succeed for some source values. It
//     exposes a cheap feasibility predicate next to the conversion itself, and
//     [CanCast], [OptCast], [TryCast] and [TryCastWith] are derived from those
//     two primitives.
//   - [Variant] for extracting one alternative out of a closed sum type, by
//     shared pointer, by mutable pointer, or by value.
//
// Declarations are usually zero-size struct types, so the pair is resolved at
// compile time from the declaration's type parameters:
//
//	type int32ToUint16 struct{}
//
//	func (int32ToUint16) CanCast(v int32) bool { return v >= 0 && v <= math.MaxUint16 }
//
//	func (d int32ToUint16) OptCast(v int32) (uint16, bool) {
//		if !d.CanCast(v) {
//			return 0, false
//		}
//		return uint16(v), true
//	}
//
//	n, err := safecast.TryCast(int32ToUint16{}, -5) // err matches ErrInfeasible
//
// Failure is always reported as an explicit (value, ok) pair or a
// [*CastError]; nothing in this package panics on an infeasible value except
// [MustCast], and nothing logs or retries.
//
// Concrete declarations for integers and basic types live in package convert.
// Package registry resolves declarations by type pair at run time for callers
// that cannot name the declaration statically.
package safecast
