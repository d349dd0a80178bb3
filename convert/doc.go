// Package convert provides ready-made [safecast] declarations for integers
// and other basic types.
//
// Integer conversions go through [safemath] so that overflows, underflows and
// silent truncation are reported instead of wrapping around. Everything else
// uses [cast] for flexible parsing and formatting.
//
// The declarations are zero-size values and are used with the generic
// operations of package safecast:
//
//	n, err := safecast.TryCast(convert.Exact[int32, uint16]{}, -5)
//	d, err := safecast.TryCast(convert.Loose[string, time.Duration]{}, "1m30s")
//	s := safecast.Cast(convert.Format[float64]{}, 2.5)
//
// [To] and [ToMust] convert from an untyped value when the source type is only
// known at run time.
package convert
