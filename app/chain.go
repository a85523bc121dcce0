package app

import (
	"reflect"

	"github.com/iov-one/quorum"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler.
type Decorators struct {
	chain []quorum.Decorator
}

/*
ChainDecorators takes a chain of decorators, and upon adding a final Handler
(often a Router), returns a Handler that will execute this whole stack.

	app.ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		sigs.NewDecorator(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(
		router,
	)
*/
func ChainDecorators(chain ...quorum.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain.
func (d Decorators) Chain(chain ...quorum.Decorator) Decorators {
	chain = cutoffNil(chain)
	newChain := append(append([]quorum.Decorator{}, d.chain...), chain...)
	return Decorators{newChain}
}

// cutoffNil removes all nil values from given slice, in place.
func cutoffNil(ds []quorum.Decorator) []quorum.Decorator {
	var cutoff int
	for i := 0; i < len(ds); i++ {
		ds[i-cutoff] = ds[i]
		if ds[i] == nil || (reflect.ValueOf(ds[i]).Kind() == reflect.Ptr && reflect.ValueOf(ds[i]).IsNil()) {
			cutoff++
		}
	}
	return ds[:len(ds)-cutoff]
}

// WithHandler resolves the stack and returns a Handler that passes through
// the chain of decorators before calling the final Handler.
func (d Decorators) WithHandler(h quorum.Handler) quorum.Handler {
	// The first decorator is the outermost one.
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step executes one decorator around a specific Handler.
type step struct {
	d    quorum.Decorator
	next quorum.Handler
}

var _ quorum.Handler = step{}

func (s step) Check(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

func (s step) Deliver(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
