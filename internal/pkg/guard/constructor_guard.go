// Package guard enforces that value objects, commands and queries are only
// created through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is not a valid instance.
// The constructor sets it; Validate on a zero value fails.
//
// Example usage:
//
//	var ErrRankNotConstructed = errors.New("Rank must be created via NewRank")
//
//	type Rank struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRank(v int) (Rank, error) {
//	    if v <= 0 {
//	        return Rank{}, errors.New("rank must be positive")
//	    }
//	    return Rank{value: v, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Rank) Validate() error {
//	    return r.guard.Validate(ErrRankNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owning object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. A zero-value guard yields err,
// or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
