package registry

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.dw1.io/safecast"
)

// Pair identifies an ordered (source, target) type pair.
type Pair struct {
	Source reflect.Type
	Target reflect.Type
}

// PairOf returns the Pair for S and T.
func PairOf[S, T any]() Pair {
	return Pair{
		Source: reflect.TypeFor[S](),
		Target: reflect.TypeFor[T](),
	}
}

// String returns "source -> target".
func (p Pair) String() string {
	return p.Source.String() + " -> " + p.Target.String()
}

// Registry maps type pairs to their declarations.
type Registry struct {
	entries map[Pair]any
}

// New builds a Registry from the declarations given as options.
//
// Nil options are skipped. All option errors are joined and returned
// together; the Registry is only returned when there are none.
func New(opts ...Option) (*Registry, error) {
	o := options{entries: make(map[Pair]any)}

	var errs []error
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&o); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Registry{entries: o.entries}, nil
}

// Len returns the number of declared pairs. A nil Registry is empty.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.entries)
}

// Pairs returns the declared pairs sorted by their string form.
func (r *Registry) Pairs() []Pair {
	if r == nil {
		return nil
	}

	pairs := lo.Keys(r.entries)
	slices.SortFunc(pairs, func(a, b Pair) int {
		return strings.Compare(a.String(), b.String())
	})

	return pairs
}

// Has reports whether r holds a declaration for (S, T).
func Has[S, T any](r *Registry) bool {
	_, err := Lookup[S, T](r)
	return err == nil
}

// Lookup returns the declaration for (S, T).
//
// The error wraps [ErrNotRegistered] if there is none. A nil Registry holds
// no declarations.
func Lookup[S, T any](r *Registry) (safecast.TryCaster[S, T], error) {
	p := PairOf[S, T]()

	if r != nil {
		if c, ok := r.entries[p].(safecast.TryCaster[S, T]); ok {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotRegistered, p)
}

// CanCast reports whether v can be converted to T. It returns false when no
// declaration exists for (S, T).
func CanCast[S, T any](r *Registry, v S) bool {
	c, err := Lookup[S, T](r)
	if err != nil {
		return false
	}

	return safecast.CanCast(c, v)
}

// OptCast converts v to T. ok is false when v cannot be converted or no
// declaration exists for (S, T).
func OptCast[S, T any](r *Registry, v S) (T, bool) {
	c, err := Lookup[S, T](r)
	if err != nil {
		var zero T
		return zero, false
	}

	return safecast.OptCast(c, v)
}

// TryCast converts v to T.
//
// The error wraps [ErrNotRegistered] when no declaration exists for (S, T),
// and is a [*safecast.CastError] when the declaration rejects v.
func TryCast[S, T any](r *Registry, v S) (T, error) {
	c, err := Lookup[S, T](r)
	if err != nil {
		var zero T
		return zero, err
	}

	return safecast.TryCast(c, v)
}
