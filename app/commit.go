package app

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// CommitStore handles loading from a CommitKVStore, maintaining different
// cache wraps for Deliver and Check, and returning useful state info.
type CommitStore struct {
	committed quorum.CommitKVStore
	deliver   quorum.KVCacheWrap
	check     quorum.KVCacheWrap
}

// NewCommitStore loads the CommitKVStore from disk or panics. It sets up
// the deliver and check caches.
func NewCommitStore(store quorum.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(err)
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
		check:     store.CacheWrap(),
	}
}

// CommitInfo returns the current height and hash.
func (cs *CommitStore) CommitInfo() (quorum.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit flushes deliver to the underlying store and persists it. It then
// creates new deliver and check caches.
func (cs *CommitStore) Commit() (quorum.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return quorum.CommitID{}, err
	}
	cs.check.Discard()

	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}

	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return res, nil
}

// CheckStore returns the store that must be used during the checking phase.
func (cs *CommitStore) CheckStore() quorum.CacheableKVStore {
	return cs.check
}

// DeliverStore returns the store that must be used during the delivery
// phase.
func (cs *CommitStore) DeliverStore() quorum.CacheableKVStore {
	return cs.deliver
}

// _q: is a prefix for the application internal data.
const chainIDKey = "_q:chainID"

// mustLoadChainID returns the stored chain id, if any. It panics on a
// database error.
func mustLoadChainID(kv quorum.ReadOnlyKVStore) string {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		panic(err)
	}
	return string(v)
}

// saveChainID stores the chain id. It fails if the chain id is already set
// or not valid.
func saveChainID(kv quorum.KVStore, chainID string) error {
	if !quorum.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInvalidInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrUnauthorized, "cannot modify chain id after genesis init")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
