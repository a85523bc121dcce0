package x

import (
	"context"

	"github.com/iov-one/quorum"
)

type accountsKey struct{}

// WithAccounts declares the accounts that a dispatched call may operate on.
// A nested declaration replaces the outer one.
func WithAccounts(ctx quorum.Context, accounts []quorum.Address) quorum.Context {
	return context.WithValue(ctx, accountsKey{}, accounts)
}

// Accounts returns the accounts declared for the call. The second value is
// false when the call was not given a resource context.
func Accounts(ctx quorum.Context) ([]quorum.Address, bool) {
	accounts, ok := ctx.Value(accountsKey{}).([]quorum.Address)
	return accounts, ok
}

// HasAccount returns true if no resource context was declared or the address
// is one of the declared accounts.
func HasAccount(ctx quorum.Context, addr quorum.Address) bool {
	accounts, ok := Accounts(ctx)
	if !ok {
		return true
	}
	for _, a := range accounts {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}
