package sigs

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/x"
)

type contextKey int

const (
	contextKeySigners contextKey = iota
)

// withSigners is private, only this package can authenticate signers.
func withSigners(ctx quorum.Context, signers []quorum.Condition) quorum.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate gives access to the signers verified by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the conditions of everyone who signed the
// transaction. May be empty.
func (Authenticate) GetConditions(ctx quorum.Context) []quorum.Condition {
	val, _ := ctx.Value(contextKeySigners).([]quorum.Condition)
	return val
}

// HasAddress returns true if the address signed the transaction.
func (a Authenticate) HasAddress(ctx quorum.Context, addr quorum.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
