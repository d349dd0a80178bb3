package registry

import (
	"fmt"

	"go.dw1.io/safecast"
)

type options struct {
	entries map[Pair]any
}

// Option configures a [Registry] built by [New].
type Option func(*options) error

// With declares c as the conversion for the pair (S, T).
func With[S, T any](c safecast.TryCaster[S, T]) Option {
	return func(o *options) error {
		p := PairOf[S, T]()
		if c == nil {
			return fmt.Errorf("%w: %s", ErrNilDeclaration, p)
		}

		return o.add(p, c)
	}
}

// WithCaster declares the infallible conversion c for the pair (S, T). It is
// stored as [safecast.Infallible](c), so lookups always report it feasible.
func WithCaster[S, T any](c safecast.Caster[S, T]) Option {
	return func(o *options) error {
		p := PairOf[S, T]()
		if c == nil {
			return fmt.Errorf("%w: %s", ErrNilDeclaration, p)
		}

		return o.add(p, safecast.Infallible(c))
	}
}

func (o *options) add(p Pair, c any) error {
	if _, ok := o.entries[p]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, p)
	}

	o.entries[p] = c

	return nil
}
