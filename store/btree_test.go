package store

import (
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestCacheWrapReadsAndWrites(t *testing.T) {
	base := MemStore()
	assert.Nil(t, base.Set([]byte("a"), []byte("1")))
	assert.Nil(t, base.Set([]byte("b"), []byte("2")))

	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("c"), []byte("3")))
	assert.Nil(t, cache.Delete([]byte("a")))

	val, err := cache.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Nil(t, val)
	ok, err := cache.Has([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	// Parent is not modified before write.
	val, err = base.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), val)
	ok, err = base.Has([]byte("c"))
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	assert.Nil(t, cache.Write())

	val, err = base.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Nil(t, val)
	val, err = base.Get([]byte("c"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("3"), val)
}

func TestCacheWrapDiscard(t *testing.T) {
	base := MemStore()
	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("key"), []byte("value")))
	cache.Discard()

	val, err := cache.Get([]byte("key"))
	assert.Nil(t, err)
	assert.Nil(t, val)

	assert.Nil(t, cache.Write())
	ok, err := base.Has([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, false, ok)
}

func TestEmptyKeyIsRejected(t *testing.T) {
	db := MemStore()
	if err := db.Set(nil, []byte("x")); !errors.ErrInvalidInput.Is(err) {
		t.Fatalf("want invalid input, got %+v", err)
	}
	if err := db.Delete([]byte{}); !errors.ErrInvalidInput.Is(err) {
		t.Fatalf("want invalid input, got %+v", err)
	}
}

func TestIteratorMerge(t *testing.T) {
	base := MemStore()
	for _, k := range []string{"a", "c", "e", "g"} {
		assert.Nil(t, base.Set([]byte(k), []byte("parent-"+k)))
	}
	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("b"), []byte("cache-b")))
	assert.Nil(t, cache.Set([]byte("c"), []byte("cache-c")))
	assert.Nil(t, cache.Delete([]byte("e")))
	assert.Nil(t, cache.Set([]byte("h"), []byte("cache-h")))

	cases := map[string]struct {
		start, end []byte
		reverse    bool
		wantKeys   []string
		wantValues []string
	}{
		"full range": {
			wantKeys:   []string{"a", "b", "c", "g", "h"},
			wantValues: []string{"parent-a", "cache-b", "cache-c", "parent-g", "cache-h"},
		},
		"bounded range": {
			start:      []byte("b"),
			end:        []byte("g"),
			wantKeys:   []string{"b", "c"},
			wantValues: []string{"cache-b", "cache-c"},
		},
		"reverse full range": {
			reverse:    true,
			wantKeys:   []string{"h", "g", "c", "b", "a"},
			wantValues: []string{"cache-h", "parent-g", "cache-c", "cache-b", "parent-a"},
		},
		"reverse from start": {
			start:      []byte("c"),
			reverse:    true,
			wantKeys:   []string{"h", "g", "c"},
			wantValues: []string{"cache-h", "parent-g", "cache-c"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var (
				it  Iterator
				err error
			)
			if tc.reverse {
				it, err = cache.ReverseIterator(tc.start, tc.end)
			} else {
				it, err = cache.Iterator(tc.start, tc.end)
			}
			assert.Nil(t, err)
			models, err := ReadAll(it)
			assert.Nil(t, err)

			var keys, values []string
			for _, m := range models {
				keys = append(keys, string(m.Key))
				values = append(values, string(m.Value))
			}
			assert.Equal(t, tc.wantKeys, keys)
			assert.Equal(t, tc.wantValues, values)
		})
	}
}

func TestNestedCacheWrap(t *testing.T) {
	base := MemStore()
	outer := base.CacheWrap()
	assert.Nil(t, outer.Set([]byte("x"), []byte("1")))

	inner := outer.CacheWrap()
	assert.Nil(t, inner.Set([]byte("y"), []byte("2")))
	inner.Discard()

	inner = outer.CacheWrap()
	assert.Nil(t, inner.Set([]byte("z"), []byte("3")))
	assert.Nil(t, inner.Write())

	it, err := outer.Iterator(nil, nil)
	assert.Nil(t, err)
	models, err := ReadAll(it)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(models))
	assert.Equal(t, []byte("x"), models[0].Key)
	assert.Equal(t, []byte("z"), models[1].Key)
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("ab"), PrefixEnd([]byte("aa")))
	assert.Equal(t, []byte{0x01}, PrefixEnd([]byte{0x00, 0xff}))
	assert.Nil(t, PrefixEnd([]byte{0xff, 0xff}))
}
