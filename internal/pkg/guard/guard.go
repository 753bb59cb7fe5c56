// Package guard marks value objects and entities as built by their constructors.
//
// Embed a ConstructorGuard in a struct and set it with NewConstructorGuard inside the
// constructor; Validate then tells a constructed value from a zero value.
//
//	type Menu struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (m Menu) Validate() error {
//	    return m.guard.Validate(ErrMenuIsNotConstructed)
//	}
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
