package sigs

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const signatureVerifyCost = 500

// verifierCacheSize is the number of verified signatures remembered.
const verifierCacheSize = 4096

// RegisterQuery will register this bucket as "/auth".
func RegisterQuery(qr quorum.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures and adds them to the context.
type Decorator struct {
	allowMissingSigs bool
	verifier         *Verifier
}

var _ quorum.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator, which appends the
// chain ID before checking the signature, and requires at least one
// signature to be present.
func NewDecorator() Decorator {
	return Decorator{
		verifier: NewVerifier(verifierCacheSize),
	}
}

// AllowMissingSigs allows us to pass along items with no signatures.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check verifies signatures before calling down the stack.
func (d Decorator) Check(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx, next quorum.Checker) (*quorum.CheckResult, error) {
	ctx, n, err := d.authenticate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	// Only valid signatures are charged.
	res.GasAllocated += int64(n * signatureVerifyCost)
	return res, nil
}

// Deliver verifies signatures before calling down the stack.
func (d Decorator) Deliver(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx, next quorum.Deliverer) (*quorum.DeliverResult, error) {
	ctx, _, err := d.authenticate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) authenticate(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx) (quorum.Context, int, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return ctx, 0, nil
	}
	signers, err := VerifyTxSignatures(store, stx, quorum.GetChainID(ctx), d.verifier)
	if err != nil {
		return nil, 0, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, 0, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), len(signers), nil
}
