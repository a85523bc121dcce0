// Package iavl provides a persistent, versioned CommitKVStore backed by an
// iavl merkle tree.
package iavl

import (
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const (
	// DefaultCacheSize is the number of tree nodes kept in memory.
	DefaultCacheSize = 10000

	// DefaultHistory is the number of versions kept on disk. Older
	// versions are pruned on commit. Zero keeps all versions.
	DefaultHistory = 0
)

// CommitStore manages an iavl committed state.
type CommitStore struct {
	tree       *iavl.MutableTree
	numHistory int64
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a store persisted in a goleveldb database with
// given name, inside of the dir directory.
func NewCommitStore(dir, name string) *CommitStore {
	db := dbm.NewDB(name, dbm.GoLevelDBBackend, dir)
	return newCommitStore(db, DefaultCacheSize, DefaultHistory)
}

// MockCommitStore creates a store backed by an in memory database, for tests.
func MockCommitStore() *CommitStore {
	return newCommitStore(dbm.NewMemDB(), DefaultCacheSize, DefaultHistory)
}

func newCommitStore(db dbm.DB, cacheSize int, history int64) *CommitStore {
	return &CommitStore{
		tree:       iavl.NewMutableTree(db, cacheSize),
		numHistory: history,
	}
}

// Get returns the value at the last committed state.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit persists the working tree as the next version.
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if s.numHistory > 0 && version > s.numHistory {
		toRelease := version - s.numHistory
		if s.tree.VersionExists(toRelease) {
			if err := s.tree.DeleteVersion(toRelease); err != nil {
				return store.CommitID{}, errors.Wrapf(errors.ErrDatabase, "cannot prune version %d: %s", toRelease, err)
			}
		}
	}
	return store.CommitID{Version: version, Hash: hash}, nil
}

// LoadLatestVersion loads the latest persisted version.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns the version and hash of the last commit.
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap returns a btree cache whose writes are applied to the working
// tree. They become persistent on the next Commit.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(&treeAdapter{tree: s.tree}, nil)
}

// treeAdapter exposes the working tree as a KVStore.
type treeAdapter struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = (*treeAdapter)(nil)

func (a *treeAdapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

func (a *treeAdapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

func (a *treeAdapter) Set(key, value []byte) error {
	a.tree.Set(key, value)
	return nil
}

func (a *treeAdapter) Delete(key []byte) error {
	a.tree.Remove(key)
	return nil
}

func (a *treeAdapter) Iterator(start, end []byte) (store.Iterator, error) {
	return a.iterate(start, end, true), nil
}

func (a *treeAdapter) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return a.iterate(start, end, false), nil
}

// iterate loads the whole range, so that writes done while iterating do not
// modify the result.
func (a *treeAdapter) iterate(start, end []byte, ascending bool) store.Iterator {
	var res []store.Model
	a.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res)
}
