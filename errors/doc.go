/*
Package errors implements the error model shared by every quorum extension.

Each failure returned from a handler should wrap one of the registered root
errors. A root error carries an ABCI code, so that a client can tell the kind
of a failure without parsing the message.

Declare package specific errors with Register during program initialization:

	var ErrGroupMismatch = errors.Register(1033, "group mismatch")

Create runtime instances with Wrap or with the root error helpers:

	errors.Wrap(errors.ErrNotFound, "group")
	errors.ErrInvalidInput.Newf("payload too long: %d", n)

The first wrap attaches a stack trace. Use %+v to print it.
*/
package errors
