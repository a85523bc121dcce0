package utils

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Recovery is a decorator to recover from panics in transactions, so we can
// log them as errors.
type Recovery struct{}

var _ quorum.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors.
func (Recovery) Check(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx, next quorum.Checker) (_ *quorum.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors.
func (Recovery) Deliver(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx, next quorum.Deliverer) (_ *quorum.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
