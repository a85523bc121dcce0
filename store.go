package quorum

// ReadOnlyKVStore is the read side of a key value store.
type ReadOnlyKVStore interface {
	// Get returns nil if the key does not exist.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Nil start or end means unbounded.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. End is
	// exclusive.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is the write side of a key value store.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the store every handler operates on.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
}

// Iterator allows to access a range of items.
//
//	it, err := store.Iterator(start, end)
//	...
//	defer it.Release()
//	for {
//		key, value, err := it.Next()
//		if errors.ErrIteratorDone.Is(err) {
//			break
//		}
//		...
//	}
type Iterator interface {
	// Next returns the next key value pair or ErrIteratorDone.
	Next() (key, value []byte, err error)

	// Release frees the iterator. It is safe to call it many times.
	Release()
}

// CacheableKVStore is a KVStore that supports cache wrapping.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch pad of uncommitted writes, visible to all reads
// done through it. Call Write to apply the writes to the parent store or
// Discard to drop them.
type KVCacheWrap interface {
	CacheableKVStore

	Write() error
	Discard()
}

// CommitKVStore is a store that persists versions.
type CommitKVStore interface {
	// Get returns the value at the last committed state.
	Get(key []byte) ([]byte, error)

	// CacheWrap returns a scratch pad to perform actions.
	CacheWrap() KVCacheWrap

	// Commit persists the next version and returns its information.
	Commit() (CommitID, error)

	// LoadLatestVersion loads the latest persisted version.
	LoadLatestVersion() error

	// LatestVersion returns the information of the latest persisted
	// version.
	LatestVersion() (CommitID, error)
}

// CommitID contains the tree version number and its merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
