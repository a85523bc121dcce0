package quorumtest

import (
	"context"
	"fmt"

	"github.com/iov-one/quorum"
)

// Auth is a mock implementing the x.Authenticator interface. It
// authenticates all declared signers, regardless of the context.
type Auth struct {
	// Signer is a convenience attribute for a single signer.
	Signer quorum.Condition
	// Signers represents an authentication of many signers.
	Signers []quorum.Condition
}

func (a *Auth) GetConditions(quorum.Context) []quorum.Condition {
	if a.Signer != nil {
		return append(append([]quorum.Condition{}, a.Signers...), a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx quorum.Context, addr quorum.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing the x.Authenticator interface, that keeps
// the conditions in the context.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context.
	Key string
}

// SetConditions returns a context authenticating given conditions.
func (a *CtxAuth) SetConditions(ctx quorum.Context, conds ...quorum.Condition) quorum.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx quorum.Context) []quorum.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]quorum.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []quorum.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx quorum.Context, addr quorum.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
