package store

import "github.com/iov-one/quorum"

// Shorter names of the storage types declared in the root package.

type (
	ReadOnlyKVStore  = quorum.ReadOnlyKVStore
	KVStore          = quorum.KVStore
	Iterator         = quorum.Iterator
	CacheableKVStore = quorum.CacheableKVStore
	KVCacheWrap      = quorum.KVCacheWrap
	CommitKVStore    = quorum.CommitKVStore
	CommitID         = quorum.CommitID
	Model            = quorum.Model
)
