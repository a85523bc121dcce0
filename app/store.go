package app

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp contains a data store and all info needed to perform queries and
// handshakes.
//
// It should be embedded in another struct for CheckTx, DeliverTx and
// initializing state from the genesis. Errors on ABCI steps that do not take
// user input (InitChain, Commit) are handled as panics, because there is no
// way to recover from them gracefully.
type StoreApp struct {
	logger log.Logger

	// name is what is returned from abci.Info
	name string

	store *CommitStore

	initializer quorum.Initializer
	queryRouter quorum.QueryRouter

	// chainID is loaded from the database on start and saved once on
	// InitChain.
	chainID string

	// baseContext contains information valid for the lifetime of this
	// app (chain ID, logger).
	baseContext quorum.Context

	// blockContext contains information valid for the current block
	// (height, time). Reset on BeginBlock.
	blockContext quorum.Context
}

// NewStoreApp initializes this app into a ready state with some defaults.
// It panics if unable to load the state from the given store.
func NewStoreApp(name string, store quorum.CommitKVStore,
	queryRouter quorum.QueryRouter, baseContext quorum.Context) *StoreApp {
	s := &StoreApp{
		name:        name,
		store:       NewCommitStore(store),
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	s.chainID = mustLoadChainID(s.DeliverStore())
	if s.chainID != "" {
		s.baseContext = quorum.WithChainID(s.baseContext, s.chainID)
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.blockContext = quorum.WithHeight(s.baseContext, info.Version)
	return s
}

// GetChainID returns the current chain id. Empty before InitChain.
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit sets the initializer called on InitChain.
func (s *StoreApp) WithInit(init quorum.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// parseAppState is called from InitChain, the first time the chain starts,
// and not on restarts.
func (s *StoreApp) parseAppState(data []byte, chainID string) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrInvalidState, "app state previously loaded for chain: %s", s.chainID)
	}
	if len(data) == 0 {
		return errors.Wrap(errors.ErrInvalidState, "app_state not set in genesis.json, please initialize application before launching the blockchain")
	}

	var appState quorum.Options
	if err := json.Unmarshal(data, &appState); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	if err := s.storeChainID(chainID); err != nil {
		return err
	}
	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(appState, s.DeliverStore())
}

func (s *StoreApp) storeChainID(chainID string) error {
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = quorum.WithChainID(s.baseContext, chainID)
	return nil
}

// WithLogger sets the logger on the StoreApp and the base context.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.baseContext = quorum.WithLogger(s.baseContext, logger)
	s.logger = logger
	return s
}

// Logger returns the application base logger.
func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext returns the context of the current block.
func (s *StoreApp) BlockContext() quorum.Context {
	return s.blockContext
}

// DeliverStore returns the current DeliverTx cache.
func (s *StoreApp) DeliverStore() quorum.CacheableKVStore {
	return s.store.DeliverStore()
}

// CheckStore returns the current CheckTx cache.
func (s *StoreApp) CheckStore() quorum.CacheableKVStore {
	return s.store.CheckStore()
}

// Info implements abci.Application. It returns the height and hash, as well
// as the abci name.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced",
		"height", info.Version,
		"hash", fmt.Sprintf("%X", info.Hash))

	return abci.ResponseInfo{
		Data:             s.name,
		Version:          quorum.Version(),
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

// SetOption is not supported.
func (s *StoreApp) SetOption(res abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

/*
Query gets data from the app store. The request path may be "/",
"/<bucket>" or "/<bucket>/<index>", optionally followed by "?prefix" to
make a prefix query.

Key and Value of the response are always serialized ResultSet objects, able
to hold 0 to N values. They are always of the same size.
*/
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod, err := quorum.ParseQueryPath(req.Path)
	if err != nil {
		return queryError(err)
	}
	qh := s.queryRouter.Handler(path)
	if qh == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "unexpected query path: %v", req.Path))
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		return queryError(err)
	}
	// Only the latest committed state can be queried.
	db := s.store.committed.CacheWrap()
	defer db.Discard()

	models, err := qh.Query(db, mod, req.Data)
	if err != nil {
		return queryError(err)
	}

	res := abci.ResponseQuery{Height: info.Version}
	if res.Key, err = ResultsFromKeys(models).Marshal(); err != nil {
		return queryError(err)
	}
	if res.Value, err = ResultsFromValues(models).Marshal(); err != nil {
		return queryError(err)
	}
	return res
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{
		Code: code,
		Log:  log,
	}
}

// Commit implements abci.Application.
func (s *StoreApp) Commit() abci.ResponseCommit {
	commitID, err := s.store.Commit()
	if err != nil {
		panic(err)
	}

	s.logger.Debug("Commit synced",
		"height", commitID.Version,
		"hash", fmt.Sprintf("%X", commitID.Hash),
	)
	return abci.ResponseCommit{Data: commitID.Hash}
}

// InitChain implements abci.Application. The genesis app state is passed to
// the initializer.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.parseAppState(req.AppStateBytes, req.ChainId); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

// BeginBlock sets up the block context.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := quorum.WithHeight(s.baseContext, req.Header.Height)
	ctx = quorum.WithBlockTime(ctx, req.Header.Time)
	s.blockContext = ctx
	return abci.ResponseBeginBlock{}
}

// EndBlock implements abci.Application. The validator set never changes.
func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}
