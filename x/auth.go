package x

import (
	"github.com/iov-one/quorum"
)

// Authenticator extracts authentication information from the context. It is
// passed to handler constructors, so that any authentication system can be
// plugged in.
type Authenticator interface {
	// GetConditions reveals all conditions fulfilled.
	GetConditions(quorum.Context) []quorum.Condition
	// HasAddress checks if any condition matches this address.
	HasAddress(quorum.Context, quorum.Address) bool
}

// MultiAuth chains together many authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines the conditions of all authenticators.
func (m MultiAuth) GetConditions(ctx quorum.Context) []quorum.Condition {
	var res []quorum.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress returns true if any authenticator supports the address.
func (m MultiAuth) HasAddress(ctx quorum.Context, addr quorum.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses returns the addresses of all authenticated conditions.
func GetAddresses(ctx quorum.Context, auth Authenticator) []quorum.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]quorum.Address, len(conds))
	for i, c := range conds {
		addrs[i] = c.Address()
	}
	return addrs
}

// MainSigner returns the first authenticated condition or nil.
func MainSigner(ctx quorum.Context, auth Authenticator) quorum.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasNAddresses returns true if at least n of the required addresses are
// authenticated.
func HasNAddresses(ctx quorum.Context, auth Authenticator, required []quorum.Address, n int) bool {
	if n <= 0 {
		return true
	}
	for _, r := range required {
		if auth.HasAddress(ctx, r) {
			n--
			if n == 0 {
				return true
			}
		}
	}
	return false
}

// HasAllAddresses returns true if all required addresses are authenticated.
func HasAllAddresses(ctx quorum.Context, auth Authenticator, required []quorum.Address) bool {
	return HasNAddresses(ctx, auth, required, len(required))
}
