/*
Package quorum defines the interfaces shared by every part of the
application: handlers and decorators, messages and transactions, the key
value store and the context helpers. Implementations live in the
subpackages.

Context is a context.Context. Every value that the framework exposes through
the context comes with a pair of functions

	WithXYZ(Context, T) Context
	GetXYZ(Context) (T, bool)

WithXYZ panics if the value was set before, so that a lower level component
cannot overwrite what the application declared (height, chain ID).
*/
package quorum
