package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/store/iavl"
	"github.com/iov-one/quorum/x"
	"github.com/iov-one/quorum/x/asset"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/iov-one/quorum/x/utils"
)

// Name is reported by the abci Info call.
const Name = "quorum"

// Authenticator returns the authentication of this application: public key
// signatures.
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// Chain returns the chain of decorators run before every handler.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// On CheckTx, bad transactions do not affect the state.
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// On DeliverTx, a failing message still increments the nonces.
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns the router of all messages. Executed multisig proposals
// are delivered through the same router.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	sigs.RegisterRoutes(r, authFn)
	asset.RegisterRoutes(r, authFn)
	multisig.RegisterRoutes(r, authFn, DecodeMsg, multisig.HandlerAsExecutor(r))
	return r
}

// QueryRouter returns the query router, serving "/", "/auth", "/groups",
// "/proposals", "/assets" and "/holdings".
func QueryRouter() quorum.QueryRouter {
	r := quorum.NewQueryRouter()
	r.RegisterAll(
		store.RegisterQuery,
		sigs.RegisterQuery,
		multisig.RegisterQuery,
		asset.RegisterQuery,
	)
	return r
}

// Initializers returns the initializer of every extension with a genesis
// section.
func Initializers() quorum.Initializer {
	return app.ChainInitializers(
		&multisig.Initializer{},
		&asset.Initializer{},
	)
}

// Stack wires the router with the decorator chain.
func Stack() quorum.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Application constructs the ABCI application. An empty dbPath keeps the
// state in memory.
func Application(h quorum.Handler, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	sa := app.NewStoreApp(Name, kv, QueryRouter(), context.Background())
	sa.WithInit(Initializers())
	return app.NewBaseApp(sa, TxDecoder, h, debug), nil
}

// CommitKVStore returns an initialized store that persists the data to the
// named path.
func CommitKVStore(dbPath string) (quorum.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid database name: %s", dbPath)
	}
	// Some callers add a ".db" suffix, which the backend adds itself.
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path)), nil
}
