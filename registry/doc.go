// Package registry resolves [safecast] declarations by (source, target) type
// pair at run time.
//
// Most code should hold the declaration value and call the generic
// operations of package safecast directly; the compiler then proves that a
// declaration exists for the pair. A Registry is for call sites that only
// learn which pair they need at run time, such as plugin hosts or generic
// adapters. That flexibility has a cost: asking for a pair nobody declared is
// a run-time [ErrNotRegistered] instead of a compile error.
//
// The set of declarations is fixed when the Registry is built:
//
//	r, err := registry.New(
//		registry.With(convert.Exact[int32, uint16]{}),
//		registry.WithCaster(convert.Format[int]{}),
//	)
//	if err != nil {
//		// duplicate or nil declaration
//	}
//	port, err := registry.TryCast[int32, uint16](r, 8080)
//
// A Registry is immutable after [New] and safe for concurrent use.
package registry
