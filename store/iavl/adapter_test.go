package iavl

import (
	"testing"

	"github.com/iov-one/quorum/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitStore(t *testing.T) {
	db := MockCommitStore()
	require.NoError(t, db.LoadLatestVersion())

	id, err := db.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(0), id.Version)

	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("group:1"), []byte("a")))
	require.NoError(t, cache.Set([]byte("group:2"), []byte("b")))

	// Nothing is visible before the cache is written and committed.
	val, err := db.Get([]byte("group:1"))
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, cache.Write())
	first, err := db.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Version)
	assert.NotEmpty(t, first.Hash)

	val, err = db.Get([]byte("group:1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), val)

	cache = db.CacheWrap()
	require.NoError(t, cache.Delete([]byte("group:1")))
	require.NoError(t, cache.Set([]byte("group:3"), []byte("c")))

	it, err := cache.Iterator([]byte("group:"), store.PrefixEnd([]byte("group:")))
	require.NoError(t, err)
	models, err := store.ReadAll(it)
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, []byte("group:2"), models[0].Key)
	assert.Equal(t, []byte("group:3"), models[1].Key)

	require.NoError(t, cache.Write())
	second, err := db.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Version)
	assert.NotEqual(t, first.Hash, second.Hash)

	latest, err := db.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, second, latest)
}

func TestHistoryPruning(t *testing.T) {
	db := MockCommitStore()
	db.numHistory = 2
	require.NoError(t, db.LoadLatestVersion())

	for i := 0; i < 4; i++ {
		cache := db.CacheWrap()
		require.NoError(t, cache.Set([]byte("counter"), []byte{byte(i)}))
		require.NoError(t, cache.Write())
		_, err := db.Commit()
		require.NoError(t, err)
	}
	assert.False(t, db.tree.VersionExists(1))
	assert.False(t, db.tree.VersionExists(2))
	assert.True(t, db.tree.VersionExists(4))
}
