package registry

import "errors"

// ErrNotRegistered indicates that no declaration exists for the requested
// type pair.
var ErrNotRegistered = errors.New("registry: no declaration for type pair")

// ErrDuplicate indicates that a second declaration was given for a type pair
// that already has one.
//
// It is returned by [New].
var ErrDuplicate = errors.New("registry: duplicate declaration for type pair")

// ErrNilDeclaration indicates that a nil declaration was given to [With] or
// [WithCaster].
//
// It is returned by [New].
var ErrNilDeclaration = errors.New("registry: nil declaration")
