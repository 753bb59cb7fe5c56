// Package errs holds the typed errors shared by the domain, the repositories and the
// HTTP adapter.
//
// Every type unwraps to one sentinel so callers branch with errors.Is:
//
//	ErrValueIsRequired     a mandatory field (restaurant name, bag capacity) is empty
//	ErrValueIsInvalid      a field has the wrong shape (phone, email, currency code)
//	ErrValueIsOutOfRange   a number is outside its bounds (latitude, prep minutes)
//	ErrObjectNotFound      a lookup by id has no row
//	ErrObjectAlreadyExists a unique key (order number, slug) is taken
//
// The HTTP layer maps the first three to 400, not found to 404 and already exists to 409.
// Command handlers that generate keys retry on ErrObjectAlreadyExists.
package errs
